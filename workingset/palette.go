package workingset

import "github.com/gogpu/isovt"

// PaletteSize is the number of entries in a VT colour table.
const PaletteSize = 256

// Palette maps VT colour indices to colours.
type Palette [PaletteSize]isovt.RGBA

// standardColours are the 16 named colours at the start of the
// ISO 11783-6 default colour table.
var standardColours = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xFF, 0xFF, 0xFF}, // white
	{0x00, 0x99, 0x00}, // green
	{0x00, 0x99, 0x99}, // teal
	{0x99, 0x00, 0x00}, // maroon
	{0x99, 0x00, 0x99}, // purple
	{0x99, 0x99, 0x00}, // olive
	{0xCC, 0xCC, 0xCC}, // silver
	{0x99, 0x99, 0x99}, // grey
	{0x00, 0x00, 0xFF}, // blue
	{0x00, 0xFF, 0x00}, // lime
	{0x00, 0xFF, 0xFF}, // cyan
	{0xFF, 0x00, 0x00}, // red
	{0xFF, 0x00, 0xFF}, // magenta
	{0xFF, 0xFF, 0x00}, // yellow
	{0x00, 0x00, 0x99}, // navy
}

// DefaultPalette returns the ISO 11783-6 default colour table: 16 named
// colours, a 6x6x6 colour cube at 16..231 and black for the proprietary
// range 232..255.
func DefaultPalette() Palette {
	var p Palette
	for i, c := range standardColours {
		p[i] = isovt.RGB8(c[0], c[1], c[2])
	}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = isovt.RGB8(uint8(r*0x33), uint8(g*0x33), uint8(b*0x33))
				i++
			}
		}
	}
	for ; i < PaletteSize; i++ {
		p[i] = isovt.Black
	}
	return p
}
