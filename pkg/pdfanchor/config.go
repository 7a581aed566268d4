package pdfanchor

// Strategy selects which matching variant resolves the query to a box.
type Strategy string

const (
	// StrategyForward is the primary word-box strategy: forward positional
	// scan over the word corpus with a fuzzy fallback, box from the union
	// of matched word boxes. Ties resolve to the first occurrence.
	StrategyForward Strategy = "forward"

	// StrategyLegacy is the marked-text strategy: backward scan over the
	// marker-annotated corpus string, box derived from structural line
	// markers. Ties resolve to the last occurrence.
	StrategyLegacy Strategy = "legacy"
)

// AnnotationType selects the visual form of the drawn annotation.
type AnnotationType string

const (
	Rectangle     AnnotationType = "rectangle"
	Highlight     AnnotationType = "highlight"
	Underline     AnnotationType = "underline"
	Strikethrough AnnotationType = "strikethrough"
)

// Style holds resolved drawing parameters for an annotation.
type Style struct {
	BorderColor RGB
	FillColor   RGB
	Opacity     float64
	BorderWidth float64
}

// AnnotationConfig holds user options for locating and drawing an annotation
type AnnotationConfig struct {
	Type      AnnotationType // Visual form of the annotation
	Strategy  Strategy       // Matching strategy
	Style     Style          // Drawing style
	LayerName string         // Base name of annotation layer (page number will be appended)
	Page      int            // Page to annotate (1-based)
	Debug     bool           // Draw a visible outline around the computed box
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() AnnotationConfig {
	return AnnotationConfig{
		Type:      Rectangle,
		Strategy:  StrategyForward,
		Style:     StyleFor(Rectangle),
		LayerName: "Annotations", // Will be formatted as "Annotations (Page X)" in the final PDF
		Page:      1,
		Debug:     false,
	}
}

// StyleFor returns the preset style for an annotation type.
func StyleFor(t AnnotationType) Style {
	switch t {
	case Highlight:
		return Style{
			BorderColor: namedColors["yellow"],
			FillColor:   namedColors["yellow"],
			Opacity:     0.3,
			BorderWidth: 0.0,
		}
	case Underline:
		return Style{
			BorderColor: namedColors["blue"],
			FillColor:   namedColors["blue"],
			Opacity:     1.0,
			BorderWidth: 2.0,
		}
	case Strikethrough:
		return Style{
			BorderColor: namedColors["gray"],
			FillColor:   namedColors["gray"],
			Opacity:     1.0,
			BorderWidth: 2.0,
		}
	default:
		return Style{
			BorderColor: namedColors["red"],
			FillColor:   namedColors["red"],
			Opacity:     0.1,
			BorderWidth: 2.0,
		}
	}
}
