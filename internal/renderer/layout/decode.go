// Package layout maps line bytes to display columns: lenient UTF-8
// decoding, tab stops, caret and hex notation for unprintable code points
// and Unicode width classification.
package layout

import (
	"unicode/utf8"

	"github.com/dshills/nanox/internal/renderer/core"
)

// DecodeRune decodes the code point at text[i]. It always consumes at least
// one byte: a sequence cut short by the end of text yields U+FFFD, and any
// other invalid byte is taken as a Latin-1 code point.
func DecodeRune(text []byte, i int) (rune, int) {
	if i >= len(text) {
		return utf8.RuneError, 0
	}
	c := text[i]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	rest := text[i:]
	if !utf8.FullRune(rest) {
		return utf8.RuneError, 1
	}
	r, size := utf8.DecodeRune(rest)
	if r == utf8.RuneError && size <= 1 {
		return rune(c), 1
	}
	return r, size
}

// Expand appends to dst the runes that represent r on screen, other than
// tabs: "^X" for C0 controls, "^?" for DEL, a backslash and two hex digits
// for U+0080 through U+00A0, and r itself otherwise.
func Expand(dst []rune, r rune) []rune {
	const hex = "0123456789abcdef"
	switch {
	case r < 0x20:
		return append(dst, '^', r^0x40)
	case r == 0x7f:
		return append(dst, '^', '?')
	case r >= 0x80 && r <= 0xa0:
		return append(dst, '\\', rune(hex[r>>4]), rune(hex[r&15]))
	}
	return append(dst, r)
}

// DisplayWidth returns the columns code point r occupies once expanded.
// Printable code points with no width of their own still take a column.
func DisplayWidth(r rune) int {
	switch {
	case r < 0x20 || r == 0x7f:
		return 2
	case r >= 0x80 && r <= 0xa0:
		return 3
	}
	if w := core.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
