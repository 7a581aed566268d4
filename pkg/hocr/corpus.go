package hocr

import (
	"strconv"
	"strings"
)

// ParagraphMarker is the structural token emitted once per paragraph in
// marked text.
const ParagraphMarker = "[[PARAGRAPH]]"

// LineMarker renders the structural token for a line, carrying the line's
// bbox coordinates verbatim: "[[LINE x1 y1 x2 y2]]".
func LineMarker(b BoundingBox) string {
	var builder strings.Builder
	builder.WriteString("[[LINE")
	for _, v := range []float64{b.X1, b.Y1, b.X2, b.Y2} {
		builder.WriteString(" ")
		builder.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	builder.WriteString("]]")
	return builder.String()
}

// Words flattens the page into its ordered word corpus: paragraphs in
// markup encounter order, lines within each paragraph, words within each
// line, then any words sitting directly under the paragraph. This order is
// the coordinate system every downstream alignment index relies on.
func (p *Page) Words() []Word {
	var words []Word
	for _, para := range p.Paragraphs {
		for _, line := range para.Lines {
			words = append(words, line.Words...)
		}
		words = append(words, para.Words...)
	}
	return words
}

// MarkedText renders the page as a single space-separated string that
// interleaves structural break tokens with word text:
// "[[PARAGRAPH]]" once per paragraph, "[[LINE x1 y1 x2 y2]]" once per line
// that carries a bbox, and each word's cleaned text after its enclosing
// line marker.
func (p *Page) MarkedText() string {
	var parts []string
	for _, para := range p.Paragraphs {
		parts = append(parts, ParagraphMarker)
		for _, line := range para.Lines {
			if line.BBox.Valid() {
				parts = append(parts, LineMarker(line.BBox))
			}
			for _, word := range line.Words {
				parts = append(parts, word.Text)
			}
		}
		for _, word := range para.Words {
			parts = append(parts, word.Text)
		}
	}
	return strings.Join(parts, " ")
}

// Text extracts all text from a document, with lines separated by
// newlines and pages separated by double newlines.
func (d *Document) Text() string {
	var builder strings.Builder

	for _, page := range d.Pages {
		for _, para := range page.Paragraphs {
			for _, line := range para.Lines {
				for _, word := range line.Words {
					builder.WriteString(word.Text)
					builder.WriteString(" ")
				}
				builder.WriteString("\n")
			}
			if len(para.Words) > 0 {
				for _, word := range para.Words {
					builder.WriteString(word.Text)
					builder.WriteString(" ")
				}
				builder.WriteString("\n")
			}
		}
		builder.WriteString("\n\n")
	}

	return builder.String()
}
