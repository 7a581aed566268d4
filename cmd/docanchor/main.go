// docanchor is a command-line tool for locating text inside hOCR documents
// and anchoring it to PDF page coordinates.
//
// Given an hOCR file and a search phrase, the tool finds the closest match
// in the recognized text and reports the bounding box of the matched region.
// When an input PDF is provided, it draws the match as an annotation
// (rectangle, highlight, underline, or strikethrough) on a toggleable layer
// of the output PDF.
//
// Usage:
//
//	docanchor -hocr document.hocr -query "text to find" [options]
//
// Required flags:
//
//	-hocr string      Path to hOCR file
//	-query string     Text to locate
//
// Annotation options:
//
//	-pdf string       Path to the PDF to annotate
//	-output string    Output PDF path (required with -pdf)
//	-type string      Annotation type: rectangle, highlight, underline, strikethrough (default rectangle)
//	-style string     Path to a YAML style file overriding the type's preset
//	-page int         Page to search and annotate (default 1)
//
// Matching options:
//
//	-strategy string  Matching strategy: forward or legacy (default forward)
//
// Debug options:
//
//	-debug            Draw a visible outline around the computed box
//	-overwrite        Overwrite the output PDF if it exists
//
// Style file format:
//
//	border_color: "#ff0000"
//	fill_color: "yellow"
//	opacity: 0.3
//	border_width: 2
//
// Examples:
//
// Print the match and its box:
//
//	docanchor -hocr page.hocr -query "total amount due"
//
// Highlight the match in a PDF:
//
//	docanchor -hocr page.hocr -query "total amount due" -pdf invoice.pdf -output invoice_marked.pdf -type highlight
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hallgrim/docanchor/pkg/pdfanchor"
)

type yamlStyle struct {
	BorderColor string  `yaml:"border_color"`
	FillColor   string  `yaml:"fill_color"`
	Opacity     float64 `yaml:"opacity"`
	BorderWidth float64 `yaml:"border_width"`
}

// loadStyle reads a YAML style file and applies it on top of the preset
// style for the chosen annotation type.
func loadStyle(path string, base pdfanchor.Style) (pdfanchor.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	var ys yamlStyle
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return base, err
	}

	style := base
	if ys.BorderColor != "" {
		rgb, err := pdfanchor.ParseColor(ys.BorderColor)
		if err != nil {
			return base, err
		}
		style.BorderColor = rgb
	}
	if ys.FillColor != "" {
		rgb, err := pdfanchor.ParseColor(ys.FillColor)
		if err != nil {
			return base, err
		}
		style.FillColor = rgb
	}
	if ys.Opacity > 0 {
		style.Opacity = ys.Opacity
	}
	if ys.BorderWidth > 0 {
		style.BorderWidth = ys.BorderWidth
	}
	return style, nil
}

func main() {
	hocrPath := flag.String("hocr", "", "Path to an hOCR file")
	query := flag.String("query", "", "Text to locate")
	pdfPath := flag.String("pdf", "", "Path to the PDF to annotate")
	outputPath := flag.String("output", "", "Output PDF path")
	annType := flag.String("type", string(pdfanchor.Rectangle), "Annotation type: rectangle, highlight, underline, strikethrough")
	stylePath := flag.String("style", "", "Path to a YAML style file")
	pageNum := flag.Int("page", 1, "Page to search and annotate (1-based index)")
	strategy := flag.String("strategy", string(pdfanchor.StrategyForward), "Matching strategy: forward or legacy")
	debug := flag.Bool("debug", false, "Draw a visible outline around the computed box")
	overwriteOutput := flag.Bool("overwrite", false, "Overwrite the output PDF if it already exists")
	flag.Parse()

	if *hocrPath == "" {
		fmt.Println("Error: Must provide -hocr path")
		os.Exit(1)
	}
	if *query == "" {
		fmt.Println("Error: Must provide -query text")
		os.Exit(1)
	}
	if *pdfPath != "" && *outputPath == "" {
		fmt.Println("Error: Must provide -output when -pdf is set")
		os.Exit(1)
	}

	switch pdfanchor.Strategy(*strategy) {
	case pdfanchor.StrategyForward, pdfanchor.StrategyLegacy:
	default:
		fmt.Printf("Error: Unknown strategy %q\n", *strategy)
		os.Exit(1)
	}

	// Build the AnnotationConfig
	config := pdfanchor.DefaultConfig()
	config.Type = pdfanchor.AnnotationType(*annType)
	config.Strategy = pdfanchor.Strategy(*strategy)
	config.Style = pdfanchor.StyleFor(config.Type)
	config.Page = *pageNum
	config.Debug = *debug

	if *stylePath != "" {
		style, err := loadStyle(*stylePath, config.Style)
		if err != nil {
			fmt.Printf("Failed to load style file: %v\n", err)
			os.Exit(1)
		}
		config.Style = style
	}

	hocrData, err := os.ReadFile(*hocrPath)
	if err != nil {
		fmt.Printf("Failed to read hOCR file: %v\n", err)
		os.Exit(1)
	}

	if *pdfPath == "" {
		// Locate-only mode: print the match and its source-space box
		anchor, err := pdfanchor.Locate(hocrData, *query, config.Strategy, config.Page)
		if err != nil {
			fmt.Printf("Error locating query: %v\n", err)
			os.Exit(1)
		}
		if anchor == nil {
			fmt.Println("No match found")
			os.Exit(1)
		}

		fmt.Printf("Matched %q with similarity %.3f\n", anchor.Match.Text, anchor.Match.Similarity)
		fmt.Printf("Word range: [%d, %d) of %d corpus words\n",
			anchor.Match.Start, anchor.Match.End, anchor.Match.Diagnostics.CorpusWords)
		if anchor.SourceBox.Degenerate() {
			fmt.Println("No usable bounding box for this match")
			os.Exit(1)
		}
		fmt.Printf("Source box: [%.0f %.0f %.0f %.0f]\n",
			anchor.SourceBox.X1, anchor.SourceBox.Y1, anchor.SourceBox.X2, anchor.SourceBox.Y2)
		return
	}

	if _, err := os.Stat(*outputPath); err == nil {
		if !*overwriteOutput {
			fmt.Printf("Output file %s already exists. Use -overwrite to overwrite.\n", *outputPath)
			os.Exit(1)
		}
		os.Remove(*outputPath)
	}

	pdfData, err := os.ReadFile(*pdfPath)
	if err != nil {
		fmt.Printf("Failed to read input PDF: %v\n", err)
		os.Exit(1)
	}

	finalPDF, anchor, err := pdfanchor.AnnotateSearch(pdfData, hocrData, *query, config)
	if err != nil {
		fmt.Printf("Error annotating PDF: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputPath, finalPDF, 0666); err != nil {
		fmt.Printf("Failed to write output PDF: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Annotated %q (similarity %.3f) in %s\n", anchor.Match.Text, anchor.Match.Similarity, *outputPath)
}
