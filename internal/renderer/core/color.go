// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer, colorscheme and backend.
package core

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a packed terminal color.
//
// The encoding is shared with colorscheme files and the SGR emitter:
//   - ColorDefault (-1) is the terminal's default color
//   - 0-255 is an ANSI palette index
//   - RGB colors are packed as 0x01RRGGBB
type Color int32

// ColorDefault represents the terminal's default color.
const ColorDefault Color = -1

// rgbMarker distinguishes packed RGB values from palette indexes.
const rgbMarker = 0x01000000

// Base ANSI palette colors.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color(rgbMarker | int32(r)<<16 | int32(g)<<8 | int32(b))
}

// ColorFromIndex creates an indexed palette color.
func ColorFromIndex(index uint8) Color {
	return Color(index)
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c < 0
}

// IsRGB returns true if this is a packed 24-bit color.
func (c Color) IsRGB() bool {
	return c >= rgbMarker
}

// IsIndexed returns true if this is an ANSI palette index.
func (c Color) IsIndexed() bool {
	return c >= 0 && c <= 255
}

// Index returns the palette index. Only meaningful when IsIndexed is true.
func (c Color) Index() uint8 {
	return uint8(c)
}

// RGB returns the components of a packed 24-bit color.
func (c Color) RGB() (r, g, b uint8) {
	v := int32(c)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch {
	case c.IsDefault():
		return "default"
	case c.IsRGB():
		r, g, b := c.RGB()
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	case c.IsIndexed():
		return fmt.Sprintf("idx(%d)", c.Index())
	default:
		return fmt.Sprintf("invalid(%d)", int32(c))
	}
}

// To256 maps a true color onto the nearest entry of the xterm 256-color
// palette. Default and indexed colors are returned unchanged.
func (c Color) To256() Color {
	if !c.IsRGB() {
		return c
	}
	r, g, b := c.RGB()
	want := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := 16
	bestDist := math.MaxFloat64
	for i := 16; i < 256; i++ {
		pr, pg, pb := xtermRGB(i)
		cand := colorful.Color{R: float64(pr) / 255, G: float64(pg) / 255, B: float64(pb) / 255}
		if d := want.DistanceLab(cand); d < bestDist {
			best, bestDist = i, d
		}
	}
	return Color(best)
}

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// xtermRGB returns the nominal RGB value of an xterm palette entry in 16-255.
func xtermRGB(i int) (r, g, b uint8) {
	if i >= 232 {
		v := uint8(8 + (i-232)*10)
		return v, v, v
	}
	i -= 16
	return cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]
}
