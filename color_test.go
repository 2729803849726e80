package isovt

import (
	"image/color"
	"testing"
)

func TestRGB8(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    string
	}{
		{"black", 0, 0, 0, "#000000"},
		{"white", 255, 255, 255, "#ffffff"},
		{"vt green", 0, 153, 0, "#009900"},
		{"vt navy", 0, 0, 153, "#000099"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RGB8(tt.r, tt.g, tt.b)
			if c.A != 1 {
				t.Errorf("A = %v, want 1", c.A)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 204, G: 51, B: 102, A: 255}
	got := FromColor(in).NRGBA()
	if got != in {
		t.Errorf("FromColor(%v).NRGBA() = %v", in, got)
	}
	if c := FromColor(color.Transparent); c != (RGBA{}) {
		t.Errorf("FromColor(Transparent) = %v, want zero", c)
	}
}

func TestNRGBAClamps(t *testing.T) {
	c := RGBA{R: 2, G: -1, B: 0.5, A: 1}.NRGBA()
	if c.R != 255 || c.G != 0 || c.B != 128 {
		t.Errorf("NRGBA() = %v, want {255 0 128 255}", c)
	}
}
