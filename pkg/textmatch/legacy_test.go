package textmatch

import (
	"testing"

	"github.com/hallgrim/docanchor/pkg/hocr"
)

func TestAlignMarkedExactMatch(t *testing.T) {
	marked := "[[PARAGRAPH]] [[LINE 100 200 300 400]] hello world test [[LINE 500 600 700 800]] another line"

	result := AlignMarked(marked, "hello world")
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Text != "hello world" {
		t.Errorf("text = %q", result.Text)
	}
	if result.Similarity != 1.0 {
		t.Errorf("similarity = %v, want 1.0", result.Similarity)
	}
	if result.Start != 0 || result.End != 2 {
		t.Errorf("range = [%d, %d), want [0, 2)", result.Start, result.End)
	}
}

func TestAlignMarkedLastOccurrenceWins(t *testing.T) {
	marked := "[[PARAGRAPH]] [[LINE 1 2 3 4]] hello world filler hello world"

	result := AlignMarked(marked, "hello world")
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Start != 3 {
		t.Errorf("start = %d, want last occurrence at 3", result.Start)
	}
}

func TestAlignMarkedBoxFromLineMarkers(t *testing.T) {
	marked := "[[PARAGRAPH]] [[LINE 100 200 300 400]] alpha beta [[LINE 120 420 280 460]] gamma delta"

	result := AlignMarked(marked, "beta gamma")
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Start != 1 || result.End != 3 {
		t.Errorf("range = [%d, %d), want [1, 3)", result.Start, result.End)
	}

	want := hocr.NewBoundingBox(100, 200, 280, 460)
	if result.Box != want {
		t.Errorf("box = %+v, want %+v", result.Box, want)
	}
}

func TestAlignMarkedBoxAsymmetry(t *testing.T) {
	// The right edge takes the maximum x2 across in-span markers, but the
	// bottom edge takes the last marker's y2 even when an earlier in-span
	// line reaches lower.
	marked := "[[PARAGRAPH]] [[LINE 10 10 900 40]] a [[LINE 10 50 700 200]] b [[LINE 10 90 300 120]] c"

	result := AlignMarked(marked, "a b c")
	if result == nil {
		t.Fatal("expected a match")
	}

	want := hocr.NewBoundingBox(10, 10, 700, 120)
	if result.Box != want {
		t.Errorf("box = %+v, want %+v", result.Box, want)
	}
}

func TestAlignMarkedNoMarkersSentinel(t *testing.T) {
	result := AlignMarked("[[PARAGRAPH]] foo bar", "foo bar")
	if result == nil {
		t.Fatal("expected a match")
	}
	if !result.Box.IsZero() {
		t.Errorf("box = %+v, want all-zero sentinel", result.Box)
	}
}

func TestAlignMarkedNoMatchConditions(t *testing.T) {
	tests := []struct {
		name   string
		marked string
		query  string
	}{
		{"empty marked text", "", "hello"},
		{"empty query", "[[PARAGRAPH]] hello", ""},
		{"query longer than corpus", "[[PARAGRAPH]] one", "one two three"},
		{"markers only", "[[PARAGRAPH]] [[LINE 1 2 3 4]]", "hello"},
		{"nothing in common", "[[PARAGRAPH]] alpha beta", "qq zz"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := AlignMarked(tc.marked, tc.query); result != nil {
				t.Errorf("expected no match, got %+v", result)
			}
		})
	}
}

func TestAlignMarkedMalformedMarkersSkipped(t *testing.T) {
	marked := "[[PARAGRAPH]] [[LINE a b c d]] [[LINE 5 6 70 80]] hello world"

	result := AlignMarked(marked, "hello world")
	if result == nil {
		t.Fatal("expected a match")
	}

	// The malformed marker contributes nothing; the valid one anchors the
	// top-left corner, but with no marker inside the span the box comes out
	// inverted and downstream consumers must reject it.
	want := hocr.NewBoundingBox(5, 6, 5, 0)
	if result.Box != want {
		t.Errorf("box = %+v, want %+v", result.Box, want)
	}
	if !result.Box.Degenerate() {
		t.Errorf("box %+v should be degenerate", result.Box)
	}
}

func TestTokenizeMarked(t *testing.T) {
	tokens := tokenizeMarked("[[PARAGRAPH]] [[LINE 1 2 3 4]] two words")
	if len(tokens) != 4 {
		t.Fatalf("token count = %d, want 4: %+v", len(tokens), tokens)
	}
	if !tokens[0].marker || tokens[0].text != "[[PARAGRAPH]]" {
		t.Errorf("token 0 = %+v", tokens[0])
	}
	if !tokens[1].marker || tokens[1].text != "[[LINE 1 2 3 4]]" {
		t.Errorf("token 1 = %+v", tokens[1])
	}
	if tokens[2].marker || tokens[2].text != "two" {
		t.Errorf("token 2 = %+v", tokens[2])
	}
}
