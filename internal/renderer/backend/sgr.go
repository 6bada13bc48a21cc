package backend

import (
	"strconv"
	"strings"

	"github.com/dshills/nanox/internal/renderer/core"
)

// ApplySGR returns st updated by an SGR parameter string. Unknown
// parameters are ignored; an empty string resets like "0".
func ApplySGR(st core.Style, params string) core.Style {
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			if parts[i] != "" {
				continue
			}
			n = 0
		}
		switch {
		case n == 0:
			st = core.DefaultStyle()
		case n == 1:
			st.Attributes = st.Attributes.With(core.AttrBold)
		case n == 22:
			st.Attributes = st.Attributes.Without(core.AttrBold)
		case n == 4:
			st.Attributes = st.Attributes.With(core.AttrUnderline)
		case n == 24:
			st.Attributes = st.Attributes.Without(core.AttrUnderline)
		case n == 7:
			st.Attributes = st.Attributes.With(core.AttrReverse)
		case n == 27:
			st.Attributes = st.Attributes.Without(core.AttrReverse)
		case n >= 30 && n <= 37:
			st.Foreground = core.ColorFromIndex(uint8(n - 30))
		case n == 39:
			st.Foreground = core.ColorDefault
		case n >= 40 && n <= 47:
			st.Background = core.ColorFromIndex(uint8(n - 40))
		case n == 49:
			st.Background = core.ColorDefault
		case n >= 90 && n <= 97:
			st.Foreground = core.ColorFromIndex(uint8(n - 90 + 8))
		case n >= 100 && n <= 107:
			st.Background = core.ColorFromIndex(uint8(n - 100 + 8))
		case n == 38 || n == 48:
			c, used := extendedColor(parts[i+1:])
			i += used
			if used == 0 {
				continue
			}
			if n == 38 {
				st.Foreground = c
			} else {
				st.Background = c
			}
		}
	}
	return st
}

// extendedColor decodes the "5;n" or "2;r;g;b" tail of a 38/48 parameter
// and reports how many parameters it consumed.
func extendedColor(rest []string) (core.Color, int) {
	if len(rest) == 0 {
		return core.ColorDefault, 0
	}
	vals := make([]uint8, 0, 4)
	for _, p := range rest[:min(len(rest), 4)] {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			break
		}
		vals = append(vals, uint8(v))
	}
	switch {
	case len(vals) >= 2 && vals[0] == 5:
		return core.ColorFromIndex(vals[1]), 2
	case len(vals) >= 4 && vals[0] == 2:
		return core.ColorFromRGB(vals[1], vals[2], vals[3]), 4
	}
	return core.ColorDefault, 0
}
