package hocr

import (
	"strings"
	"testing"
)

func TestMarkedText(t *testing.T) {
	markup := `
<div class='ocr_page' title='bbox 0 0 1000 1000'>
 <p class='ocr_par'>
  <span class='ocr_line' title='bbox 100 200 300 400'>
   <span class='ocrx_word' title='bbox 100 200 180 400'>Hello</span>
   <span class='ocrx_word' title='bbox 190 200 300 400'>World</span>
  </span>
 </p>
</div>`

	doc, err := ParseDocument([]byte(markup))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	marked := doc.Pages[0].MarkedText()
	want := "[[PARAGRAPH]] [[LINE 100 200 300 400]] Hello World"
	if marked != want {
		t.Errorf("MarkedText() = %q, want %q", marked, want)
	}
}

func TestMarkedTextMultipleParagraphs(t *testing.T) {
	markup := `
<div class='ocr_page' title='bbox 0 0 1000 1000'>
 <p class='ocr_par'>
  <span class='ocr_line' title='bbox 10 10 500 40'>
   <span class='ocrx_word' title='bbox 10 10 100 40'>first</span>
  </span>
 </p>
 <p class='ocr_par'>
  <span class='ocr_line' title='bbox 10 60 500 90'>
   <span class='ocrx_word' title='bbox 10 60 100 90'>second</span>
  </span>
 </p>
</div>`

	doc, err := ParseDocument([]byte(markup))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	marked := doc.Pages[0].MarkedText()
	if strings.Count(marked, ParagraphMarker) != 2 {
		t.Errorf("expected 2 paragraph markers in %q", marked)
	}

	// Markers and words must appear in reading order
	wantOrder := []string{"[[PARAGRAPH]]", "[[LINE 10 10 500 40]]", "first", "[[PARAGRAPH]]", "[[LINE 10 60 500 90]]", "second"}
	pos := 0
	for _, part := range wantOrder {
		idx := strings.Index(marked[pos:], part)
		if idx < 0 {
			t.Fatalf("missing or misordered %q in %q", part, marked)
		}
		pos += idx + len(part)
	}
}

func TestLineMarker(t *testing.T) {
	got := LineMarker(NewBoundingBox(100, 200, 300, 400))
	if got != "[[LINE 100 200 300 400]]" {
		t.Errorf("LineMarker() = %q", got)
	}
}

func TestMarkedTextSkipsLinesWithoutBBox(t *testing.T) {
	markup := `
<div class='ocr_page' title='bbox 0 0 1000 1000'>
 <p class='ocr_par'>
  <span class='ocr_line'>
   <span class='ocrx_word' title='bbox 10 10 100 40'>bare</span>
  </span>
 </p>
</div>`

	doc, err := ParseDocument([]byte(markup))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	marked := doc.Pages[0].MarkedText()
	if strings.Contains(marked, "[[LINE") {
		t.Errorf("unexpected line marker in %q", marked)
	}
	if !strings.Contains(marked, "bare") {
		t.Errorf("word missing from %q", marked)
	}
}

func TestDocumentText(t *testing.T) {
	doc, err := ParseDocument([]byte(samplePage))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	text := doc.Text()
	if !strings.Contains(text, "Hello World") {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(text, "second line") {
		t.Errorf("text = %q", text)
	}
}
