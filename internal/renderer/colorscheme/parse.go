package colorscheme

import (
	"strconv"
	"strings"

	"github.com/dshills/nanox/internal/config/loader"
	"github.com/dshills/nanox/internal/renderer/core"
)

var baseColorNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ParseColor parses a scheme color literal:
//
//	default            terminal default (-1)
//	#RRGGBB            24-bit color
//	red, bright_red    ANSI 0-7, bright variants 8-15
//
// Anything else yields the default color.
func ParseColor(val string) core.Color {
	if val == "default" {
		return core.ColorDefault
	}

	if rest, ok := strings.CutPrefix(val, "#"); ok {
		var rgb [3]uint8
		for i := range rgb {
			if rgb[i], rest, ok = hexComponent(rest); !ok {
				return core.ColorDefault
			}
		}
		return core.ColorFromRGB(rgb[0], rgb[1], rgb[2])
	}

	offset := uint8(0)
	if rest, ok := strings.CutPrefix(val, "bright_"); ok {
		offset = 8
		val = rest
	}
	for i, name := range baseColorNames {
		if val == name {
			return core.ColorFromIndex(uint8(i) + offset)
		}
	}
	return core.ColorDefault
}

// hexComponent reads one color component of one or two hex digits, so
// "#12345" is r=0x12 g=0x34 b=0x05.
func hexComponent(s string) (uint8, string, bool) {
	n := 0
	for n < 2 && n < len(s) && isHexDigit(s[n]) {
		n++
	}
	if n == 0 {
		return 0, s, false
	}
	v, _ := strconv.ParseUint(s[:n], 16, 8)
	return uint8(v), s[n:], true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// ParseAttributes applies a space-separated attribute list such as
// "fg=#ffffff bg=default bold=true" to st. Unknown tokens are ignored.
// Attributes are only ever switched on.
func ParseAttributes(val string, st *core.Style) {
	for _, tok := range strings.Fields(val) {
		switch {
		case strings.HasPrefix(tok, "fg="):
			st.Foreground = ParseColor(tok[3:])
		case strings.HasPrefix(tok, "bg="):
			st.Background = ParseColor(tok[3:])
		case tok == "bold=true":
			st.Attributes |= core.AttrBold
		case tok == "underline=true":
			st.Attributes |= core.AttrUnderline
		}
	}
}

// IsSafeName reports whether name may be used to build a scheme path:
// only ASCII letters, digits, '.', '_' and '-' are allowed.
func IsSafeName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

// Parse applies the [styles] section of a scheme document to the table and
// then propagates the Normal background. Keys outside [styles] and unknown
// style names are skipped.
func (t *Table) Parse(data []byte) {
	inStyles := false
	loader.ScanINI(data, func(ev loader.INIEvent) {
		switch ev.Kind {
		case loader.INISection:
			inStyles = ev.Section == "styles"
		case loader.INIKeyValue:
			if !inStyles {
				return
			}
			if id, ok := StyleIDFromName(ev.Key); ok {
				ParseAttributes(ev.Value, &t.styles[id])
			}
		}
	})
	t.PropagateBackground()
}
