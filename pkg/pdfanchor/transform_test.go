package pdfanchor

import (
	"math"
	"testing"

	"github.com/hallgrim/docanchor/pkg/hocr"
)

func TestComputeTransform(t *testing.T) {
	transform := ComputeTransform(595, 842, 2560, 3300)

	if math.Abs(transform.ScaleX-0.2324) > 0.001 {
		t.Errorf("ScaleX = %v, want ~0.2324", transform.ScaleX)
	}
	if math.Abs(transform.ScaleY-0.2552) > 0.001 {
		t.Errorf("ScaleY = %v, want ~0.2552", transform.ScaleY)
	}
	if transform.PageHeight != 842 {
		t.Errorf("PageHeight = %v, want 842", transform.PageHeight)
	}
}

func TestMapToPDF(t *testing.T) {
	transform := CoordinateTransform{ScaleX: 0.5, ScaleY: 0.5, PageHeight: 800}
	rect := transform.MapToPDF(hocr.NewBoundingBox(100, 200, 300, 400))

	if rect.X != 50 {
		t.Errorf("X = %v, want 50", rect.X)
	}
	if rect.Y != 600 {
		t.Errorf("Y = %v, want 600 (flip anchors on the bottom edge)", rect.Y)
	}
	if rect.Width != 100 {
		t.Errorf("Width = %v, want 100", rect.Width)
	}
	if rect.Height != 100 {
		t.Errorf("Height = %v, want 100", rect.Height)
	}
}

func TestMapToPDFRoundTrip(t *testing.T) {
	// With unit scale, reversing the Y flip recovers the source bottom edge.
	const pageHeight = 1000.0
	transform := CoordinateTransform{ScaleX: 1, ScaleY: 1, PageHeight: pageHeight}

	boxes := []hocr.BoundingBox{
		hocr.NewBoundingBox(0, 0, 10, 10),
		hocr.NewBoundingBox(100, 200, 300, 400),
		hocr.NewBoundingBox(5, 995, 6, 1000),
	}
	for _, box := range boxes {
		rect := transform.MapToPDF(box)
		if got := pageHeight - rect.Y; got != box.Y2 {
			t.Errorf("box %+v: recovered y2 = %v, want %v", box, got, box.Y2)
		}
		if got := rect.X; got != box.X1 {
			t.Errorf("box %+v: x = %v, want %v", box, got, box.X1)
		}
	}
}

func TestUnionBox(t *testing.T) {
	words := []hocr.Word{
		{BBox: hocr.NewBoundingBox(100, 50, 200, 80)},
		{BBox: hocr.NewBoundingBox(40, 60, 150, 120)},
		{BBox: hocr.NewBoundingBox(120, 20, 300, 70)},
	}

	union, ok := UnionBox(words)
	if !ok {
		t.Fatal("expected a union box")
	}
	want := hocr.NewBoundingBox(40, 20, 300, 120)
	if union != want {
		t.Errorf("union = %+v, want %+v", union, want)
	}

	// Containment: the union must cover every member box
	for _, w := range words {
		if w.BBox.X1 < union.X1 || w.BBox.Y1 < union.Y1 ||
			w.BBox.X2 > union.X2 || w.BBox.Y2 > union.Y2 {
			t.Errorf("union %+v does not contain %+v", union, w.BBox)
		}
	}
}

func TestUnionBoxEmpty(t *testing.T) {
	if _, ok := UnionBox(nil); ok {
		t.Error("expected no union for an empty word set")
	}
}
