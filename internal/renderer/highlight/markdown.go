package highlight

import "github.com/dshills/nanox/internal/renderer/colorscheme"

// headerEnd returns the end of the '#' run of an ATX header starting at pos,
// or -1. Headers are recognized at column 0, or within the first three
// columns when the line starts with whitespace.
func headerEnd(text []byte, pos int) int {
	if pos != 0 && (pos >= 3 || !isSpace(text[0])) {
		return -1
	}
	h := pos
	for h < len(text) && text[h] == '#' {
		h++
	}
	if h > pos && h <= pos+6 && h < len(text) && isSpace(text[h]) {
		return h
	}
	return -1
}

// closingDelim finds delim at or after start whose preceding run of
// backslashes (counted back to start) has even length. It returns the
// offset just past the delimiter, or -1.
func closingDelim(text []byte, start int, delim string) int {
	for pos := start; pos <= len(text)-len(delim); pos++ {
		if !hasPrefixAt(text, pos, delim) {
			continue
		}
		backslashes := 0
		for check := pos - 1; check >= start && text[check] == '\\'; check-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return pos + len(delim)
		}
	}
	return -1
}

// emphasisEnd matches **bold**, __bold__, *italic* or _italic_ at pos and
// returns its end and style.
func emphasisEnd(text []byte, pos int) (int, colorscheme.StyleID, bool) {
	n := len(text)
	c := text[pos]
	if c != '*' && c != '_' {
		return 0, 0, false
	}

	if pos+4 <= n && text[pos+1] == c {
		if end := closingDelim(text, pos+2, string([]byte{c, c})); end > 0 {
			return end, colorscheme.StyleMdBold, true
		}
	}

	if pos+2 <= n && text[pos+1] != c {
		if end := closingDelim(text, pos+1, string(c)); end > 0 {
			return end, colorscheme.StyleMdItalic, true
		}
	}
	return 0, 0, false
}

var inlineTags = []struct {
	open, close string
	style       colorscheme.StyleID
}{
	{"<u>", "</u>", colorscheme.StyleMdUnderline},
	{"<b>", "</b>", colorscheme.StyleMdBold},
	{"<i>", "</i>", colorscheme.StyleMdItalic},
}

// tagEnd matches <u>..</u>, <b>..</b> or <i>..</i> at pos, ignoring case.
func tagEnd(text []byte, pos int) (int, colorscheme.StyleID, bool) {
	for _, tag := range inlineTags {
		if !hasPrefixFoldAt(text, pos, tag.open) {
			continue
		}
		for s := pos + len(tag.open); s+len(tag.close) <= len(text); s++ {
			if hasPrefixFoldAt(text, s, tag.close) {
				return s + len(tag.close), tag.style, true
			}
		}
	}
	return 0, 0, false
}
