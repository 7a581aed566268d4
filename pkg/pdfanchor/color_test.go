package pdfanchor

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{"long hex red", "#ff0000", RGB{1, 0, 0}, false},
		{"short hex red", "#f00", RGB{1, 0, 0}, false},
		{"named blue", "blue", RGB{0, 0, 1}, false},
		{"named mixed case", "Yellow", RGB{1, 1, 0}, false},
		{"grey alias", "grey", RGB{0.5, 0.5, 0.5}, false},
		{"unknown name", "invalid", RGB{}, true},
		{"bad hex length", "#ff00", RGB{}, true},
		{"non-hex digits", "#zzzzzz", RGB{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestRGBBytes(t *testing.T) {
	r, g, b := RGB{1, 0.5, 0}.Bytes()
	if r != 255 || g != 127 || b != 0 {
		t.Errorf("Bytes() = %d, %d, %d", r, g, b)
	}
}

func TestStyleFor(t *testing.T) {
	rect := StyleFor(Rectangle)
	if rect.BorderColor != (RGB{1, 0, 0}) {
		t.Errorf("rectangle border = %+v", rect.BorderColor)
	}
	if rect.Opacity != 0.1 {
		t.Errorf("rectangle opacity = %v", rect.Opacity)
	}

	highlight := StyleFor(Highlight)
	if highlight.FillColor != (RGB{1, 1, 0}) {
		t.Errorf("highlight fill = %+v", highlight.FillColor)
	}
	if highlight.Opacity != 0.3 {
		t.Errorf("highlight opacity = %v", highlight.Opacity)
	}
	if highlight.BorderWidth != 0 {
		t.Errorf("highlight border width = %v", highlight.BorderWidth)
	}
}
