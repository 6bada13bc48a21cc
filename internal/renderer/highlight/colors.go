package highlight

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/nanox/internal/renderer/core"
)

// ColorMatch is a color literal found in a line.
type ColorMatch struct {
	Start, End int
	R, G, B    uint8
}

// Color returns the match as an RGB color.
func (m ColorMatch) Color() core.Color {
	return core.ColorFromRGB(m.R, m.G, m.B)
}

// hslPlaceholder is reported for hsl() literals, which are not converted.
const hslPlaceholder = 128

// FindColorsInLine returns every #RGB, #RRGGBB, rgb()/rgba() and
// hsl()/hsla() literal in text with its decoded value. rgb() literals with
// fewer than three components are skipped.
func FindColorsInLine(text []byte) []ColorMatch {
	var out []ColorMatch
	for pos := 0; pos < len(text); {
		if n := hexColorLen(text, pos); n > 0 {
			if c, err := colorful.Hex(string(text[pos : pos+n])); err == nil {
				r, g, b := c.RGB255()
				out = append(out, ColorMatch{Start: pos, End: pos + n, R: r, G: g, B: b})
			}
			pos += n
			continue
		}
		if n := rgbColorLen(text, pos); n > 0 {
			if r, g, b, ok := parseRGBArgs(text[pos : pos+n]); ok {
				out = append(out, ColorMatch{Start: pos, End: pos + n, R: r, G: g, B: b})
			}
			pos += n
			continue
		}
		if n := hslColorLen(text, pos); n > 0 {
			out = append(out, ColorMatch{
				Start: pos,
				End:   pos + n,
				R:     hslPlaceholder,
				G:     hslPlaceholder,
				B:     hslPlaceholder,
			})
			pos += n
			continue
		}
		pos++
	}
	return out
}

// parseRGBArgs reads the components of an rgb(...) literal. Components are
// separated by commas, spaces or '/'; a '%' scales the component to 0-255;
// fractional digits are dropped. Up to four components are read and the
// first three are clamped to 255.
func parseRGBArgs(lit []byte) (r, g, b uint8, ok bool) {
	i := 0
	for i < len(lit) && lit[i] != '(' {
		i++
	}
	if i >= len(lit) {
		return 0, 0, 0, false
	}
	i++

	var values [4]int
	count, cur := 0, 0
	inNumber, percent := false, false
	flush := func() {
		if percent {
			cur = cur * 255 / 100
			percent = false
		}
		values[count] = cur
		count++
		cur = 0
		inNumber = false
	}

	for i < len(lit) && lit[i] != ')' && count < 4 {
		c := lit[i]
		switch {
		case isDigit(c):
			if cur < 1<<24 {
				cur = cur*10 + int(c-'0')
			}
			inNumber = true
		case c == '%':
			percent = true
		case c == ',' || c == ' ' || c == '/':
			if inNumber {
				flush()
			}
		case c == '.':
			i++
			for i < len(lit) && isDigit(lit[i]) {
				i++
			}
			continue
		}
		i++
	}
	if inNumber && count < 4 {
		flush()
	}
	if count < 3 {
		return 0, 0, 0, false
	}
	return clamp255(values[0]), clamp255(values[1]), clamp255(values[2]), true
}

func clamp255(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
