package pdfanchor

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a color with components in [0, 1].
type RGB struct {
	R float64
	G float64
	B float64
}

// Bytes returns the color scaled to the 0-255 range used by the PDF drawing
// primitives.
func (c RGB) Bytes() (int, int, int) {
	return int(c.R * 255), int(c.G * 255), int(c.B * 255)
}

var namedColors = map[string]RGB{
	"red":     {1.0, 0.0, 0.0},
	"green":   {0.0, 1.0, 0.0},
	"blue":    {0.0, 0.0, 1.0},
	"yellow":  {1.0, 1.0, 0.0},
	"orange":  {1.0, 0.5, 0.0},
	"purple":  {0.5, 0.0, 0.5},
	"pink":    {1.0, 0.75, 0.8},
	"cyan":    {0.0, 1.0, 1.0},
	"magenta": {1.0, 0.0, 1.0},
	"black":   {0.0, 0.0, 0.0},
	"white":   {1.0, 1.0, 1.0},
	"gray":    {0.5, 0.5, 0.5},
	"grey":    {0.5, 0.5, 0.5},
}

// ParseColor converts a color string to RGB. Accepts hex colors in short
// ("#f00") and long ("#ff0000") form, plus a basic set of named colors.
func ParseColor(color string) (RGB, error) {
	if strings.HasPrefix(color, "#") {
		return parseHexColor(color[1:])
	}

	if rgb, ok := namedColors[strings.ToLower(color)]; ok {
		return rgb, nil
	}
	return RGB{}, fmt.Errorf("unknown color %q", color)
}

func parseHexColor(hex string) (RGB, error) {
	var parts [3]string
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			parts[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6:
		for i := 0; i < 3; i++ {
			parts[i] = hex[i*2 : i*2+2]
		}
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q", "#"+hex)
	}

	var channels [3]float64
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", "#"+hex, err)
		}
		channels[i] = float64(v) / 255.0
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
