package pdfanchor

import (
	"github.com/hallgrim/docanchor/pkg/hocr"
)

// CoordinateTransform holds the parameters mapping hOCR pixel space to PDF
// page space. OffsetX/OffsetY are reserved for translation and are not
// applied by MapToPDF; callers wanting translation adjust the result.
type CoordinateTransform struct {
	ScaleX     float64
	ScaleY     float64
	OffsetX    float64
	OffsetY    float64
	PageHeight float64
}

// Rect is a rectangle in PDF page space, with the origin at the bottom-left
// corner of the page.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ComputeTransform derives the transform for a PDF page of the given size
// from an hOCR page of the given size.
func ComputeTransform(pdfWidth, pdfHeight, hocrWidth, hocrHeight float64) CoordinateTransform {
	return CoordinateTransform{
		ScaleX:     pdfWidth / hocrWidth,
		ScaleY:     pdfHeight / hocrHeight,
		PageHeight: pdfHeight,
	}
}

// MapToPDF converts a source-space bounding box into a PDF-space rectangle.
//
// hOCR coordinates grow downward from a top-left origin while PDF
// coordinates grow upward from a bottom-left origin, so the vertical flip
// anchors on the box's bottom edge (y2), not its top.
func (t CoordinateTransform) MapToPDF(b hocr.BoundingBox) Rect {
	return Rect{
		X:      b.X1 * t.ScaleX,
		Y:      t.PageHeight - b.Y2*t.ScaleY,
		Width:  (b.X2 - b.X1) * t.ScaleX,
		Height: (b.Y2 - b.Y1) * t.ScaleY,
	}
}

// UnionBox computes the smallest box containing every word box in the set.
// Reports false for an empty set.
func UnionBox(words []hocr.Word) (hocr.BoundingBox, bool) {
	if len(words) == 0 {
		return hocr.BoundingBox{}, false
	}

	union := words[0].BBox
	for _, w := range words[1:] {
		if w.BBox.X1 < union.X1 {
			union.X1 = w.BBox.X1
		}
		if w.BBox.Y1 < union.Y1 {
			union.Y1 = w.BBox.Y1
		}
		if w.BBox.X2 > union.X2 {
			union.X2 = w.BBox.X2
		}
		if w.BBox.Y2 > union.Y2 {
			union.Y2 = w.BBox.Y2
		}
	}
	return union, true
}
