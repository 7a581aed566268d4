// Package pdfanchor locates a text query inside an hOCR document and anchors
// it to a rectangle in PDF page coordinates, optionally drawing the result
// as an annotation over the original PDF.
//
// The pipeline composes strictly left to right: the hOCR markup is parsed
// into a word corpus once per document, the query is aligned against that
// corpus once per search, and the matched boxes are transformed into PDF
// space once per successful match. All of it is pure computation over
// immutable inputs, so independent documents and queries can be processed
// concurrently without coordination.
//
// Key Functions:
//
// - Locate: Finds a query in hOCR data and returns its source-space anchor
// - ComputeTransform, CoordinateTransform.MapToPDF: Convert hOCR pixel boxes to PDF rectangles
// - AnnotateSearch: End-to-end search-and-annotate over an existing PDF
package pdfanchor

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	"github.com/hallgrim/docanchor/pkg/hocr"
	"github.com/hallgrim/docanchor/pkg/textmatch"
)

// Anchor is a located query: the matched word range plus the pixel-space
// box it occupies on the source page.
type Anchor struct {
	PageIndex int              // 0-based index of the page within the document
	PageBox   hocr.BoundingBox // Source page bounds
	SourceBox hocr.BoundingBox // Matched region in source pixel space
	Match     textmatch.Result // Matched range and similarity
}

// Locate finds the best match for a query on one page of an hOCR document
// and resolves it to a source-space bounding box.
//
// A nil anchor with a nil error means the query produced no match, which is
// a normal outcome. With StrategyLegacy the anchor's SourceBox can be the
// all-zero sentinel, or an inverted box when the match had no in-span line
// markers; callers drawing boxes must reject anything Degenerate.
func Locate(hocrData []byte, query string, strategy Strategy, pageNum int) (*Anchor, error) {
	doc, err := hocr.ParseDocument(hocrData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR data: %w", err)
	}
	return LocateInDocument(&doc, query, strategy, pageNum)
}

// LocateInDocument is Locate over an already-parsed document, for callers
// running many queries against the same corpus.
func LocateInDocument(doc *hocr.Document, query string, strategy Strategy, pageNum int) (*Anchor, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	if pageNum > len(doc.Pages) {
		return nil, fmt.Errorf("page %d out of range: document has %d pages", pageNum, len(doc.Pages))
	}
	page := &doc.Pages[pageNum-1]

	anchor := Anchor{
		PageIndex: pageNum - 1,
		PageBox:   page.BBox,
	}

	switch strategy {
	case StrategyLegacy:
		result := textmatch.AlignMarked(page.MarkedText(), query)
		if result == nil {
			return nil, nil
		}
		anchor.Match = result.Result
		anchor.SourceBox = result.Box
	default:
		words := page.Words()
		result := textmatch.AlignWords(words, query)
		if result == nil {
			return nil, nil
		}
		box, ok := UnionBox(words[result.Start:result.End])
		if !ok {
			return nil, nil
		}
		anchor.Match = *result
		anchor.SourceBox = box
	}

	return &anchor, nil
}

// AnnotateSearch locates a query in hOCR data and draws the resulting
// annotation over the corresponding page of an existing PDF. The PDF pages
// are imported at the hOCR page dimensions, so the annotation rectangle is
// computed through the full coordinate transform.
func AnnotateSearch(pdfData, hocrData []byte, query string, config AnnotationConfig) ([]byte, *Anchor, error) {
	if len(pdfData) == 0 {
		return nil, nil, fmt.Errorf("input PDF data is empty")
	}
	if query == "" {
		return nil, nil, fmt.Errorf("query is empty")
	}

	doc, err := hocr.ParseDocument(hocrData)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse hOCR data: %w", err)
	}

	anchor, err := LocateInDocument(&doc, query, config.Strategy, config.Page)
	if err != nil {
		return nil, nil, err
	}
	if anchor == nil {
		return nil, nil, fmt.Errorf("no match found for query %q", query)
	}
	if anchor.SourceBox.Degenerate() {
		return nil, anchor, fmt.Errorf("match for query %q has no usable bounding box", query)
	}

	out, err := annotateExistingPDF(pdfData, doc, *anchor, config)
	if err != nil {
		return nil, anchor, err
	}
	return out, anchor, nil
}

// annotateExistingPDF imports pages from an existing PDF and overlays the
// annotation on the anchored page.
func annotateExistingPDF(pdfData []byte, doc hocr.Document, anchor Anchor, config AnnotationConfig) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(pdfData))

	for i, page := range doc.Pages {
		pageWidth, pageHeight := page.BBox.X2, page.BBox.Y2
		if pageWidth <= 0 || pageHeight <= 0 {
			return nil, fmt.Errorf("page %d has no usable page bbox", i+1)
		}

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: pageWidth, Ht: pageHeight})

		tpl := importer.ImportPageFromStream(pdf, &rs, i+1, "/MediaBox")
		importer.UseImportedTemplate(pdf, tpl, 0, 0, pageWidth, 0)

		if i != anchor.PageIndex {
			continue
		}

		transform := ComputeTransform(pageWidth, pageHeight, page.BBox.X2, page.BBox.Y2)
		rect := transform.MapToPDF(anchor.SourceBox)
		drawAnnotation(pdf, rect, transform.PageHeight, config, i+1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
