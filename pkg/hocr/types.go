package hocr

import "strings"

// Document represents a parsed hOCR document
type Document struct {
	Title       string            // Document title
	Description string            // Document description
	Language    string            // Document language
	Metadata    map[string]string // Additional metadata
	Pages       []Page            // Pages in the document
}

// Page is one page of recognized text
// Corresponds to hOCR element with class: 'ocr_page'
type Page struct {
	ID         string      // Unique identifier
	Title      string      // Original title attribute
	PageNumber int         // Page number in document
	ImageName  string      // Source image filename
	Lang       string      // Language code for this page
	BBox       BoundingBox // Page coordinates
	Paragraphs []Paragraph // Paragraphs in reading order
}

// Class assign 'ocr_page' to 'Page' struct
func (Page) Class() string { return "ocr_page" }

// Paragraph represents a paragraph of text
// Corresponds to hOCR element with class: 'ocr_par'
type Paragraph struct {
	ID    string      // Unique identifier
	Lang  string      // Language code
	BBox  BoundingBox // Paragraph coordinates
	Lines []Line      // Text lines in this paragraph
	Words []Word      // Words directly under paragraph (no line parent)
}

// Class assign 'ocr_par' to 'Paragraph' struct
func (Paragraph) Class() string { return "ocr_par" }

// Line represents a line of text
// Corresponds to hOCR element with class: 'ocr_line'
type Line struct {
	ID    string      // Unique identifier
	BBox  BoundingBox // Line coordinates
	Words []Word      // Words in this line
}

// Class assign 'ocr_line' to 'Line' struct
func (Line) Class() string { return "ocr_line" }

// Word is a recognized word with bounding box
// Corresponds to hOCR element with class: 'ocrx_word'
type Word struct {
	ID         string      // Unique identifier
	Text       string      // Text content with nested markup stripped
	Normalized string      // Lower-cased form used for matching
	BBox       BoundingBox // Word coordinates
	Confidence float64     // Recognition confidence (0-100)
}

// Class assign 'ocrx_word' to 'Word' struct
func (Word) Class() string { return "ocrx_word" }

// BoundingBox represents a rectangle in the document
// Used to store hOCR 'bbox' property values
type BoundingBox struct {
	X1 float64 // Left coordinate
	Y1 float64 // Top coordinate
	X2 float64 // Right coordinate
	Y2 float64 // Bottom coordinate
}

// NewBoundingBox creates a bounding box from x1, y1, x2, y2 coordinates
// as found in hOCR 'bbox' properties. x1, y1 is the top-left corner and
// x2, y2 the bottom-right corner, in a top-down pixel coordinate system.
func NewBoundingBox(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{
		X1: x1,
		Y1: y1,
		X2: x2,
		Y2: y2,
	}
}

// Valid reports whether the box satisfies the word-box invariants:
// non-negative coordinates and strictly positive width and height.
func (b BoundingBox) Valid() bool {
	return b.X1 >= 0 && b.Y1 >= 0 && b.X2 > b.X1 && b.Y2 > b.Y1
}

// IsZero reports whether the box is the all-zero sentinel used by the
// legacy matching path to signal "no usable box".
func (b BoundingBox) IsZero() bool {
	return b.X1 == 0 && b.Y1 == 0 && b.X2 == 0 && b.Y2 == 0
}

// Degenerate reports whether the box cannot describe a real region: the
// all-zero sentinel or inverted edges. Marker-derived boxes from the legacy
// matching path can come out inverted when a match has no in-span markers,
// so consumers drawing boxes must check this, not just IsZero.
func (b BoundingBox) Degenerate() bool {
	return b.IsZero() || b.X2 < b.X1 || b.Y2 < b.Y1
}

// normalizeWord produces the lower-cased matching form of a word's text.
func normalizeWord(text string) string {
	return strings.ToLower(text)
}
