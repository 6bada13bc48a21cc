package highlight

import (
	"strings"

	"github.com/dshills/nanox/internal/renderer/colorscheme"
)

// HighlightLine scans text under profile p, starting in state in. It
// returns the spans of the line, reusing out's storage, and the state at the
// end of the line.
//
// With a nil profile only color literals are styled (as numbers) and the
// state passes through unchanged. An empty line yields no spans and leaves
// the state unchanged.
func HighlightLine(text []byte, in State, p *Profile, out Spans) (Spans, State) {
	out = out[:0]
	if len(text) == 0 {
		return out, in
	}
	if p == nil {
		return scanColorsOnly(text, out), in
	}
	p.ensureCompiled()

	s := scanner{text: text, p: p, state: in, out: out}
	for s.pos < len(s.text) {
		switch s.state.kind {
		case KindBlockComment:
			s.blockComment()
		case KindString, KindTripleString:
			s.stringBody()
		default:
			s.normal()
		}
	}
	return s.out, s.state
}

func scanColorsOnly(text []byte, out Spans) Spans {
	for pos := 0; pos < len(text); {
		if n := colorLiteralLen(text, pos); n > 0 {
			out = out.add(pos, pos+n, colorscheme.StyleNumber)
			pos += n
			continue
		}
		pos++
	}
	return out
}

type scanner struct {
	text  []byte
	pos   int
	p     *Profile
	state State
	out   Spans
}

// emit styles [s.pos, end) and advances to end.
func (s *scanner) emit(end int, style colorscheme.StyleID) {
	s.out = s.out.add(s.pos, end, style)
	s.pos = end
}

func (s *scanner) normal() {
	text, pos := s.text, s.pos
	n := len(text)
	c := text[pos]

	if isControl(c) {
		s.emit(pos+1, colorscheme.StyleControl)
		return
	}

	if isSpace(c) && allSpace(text[pos:]) {
		s.emit(n, colorscheme.StyleControl)
		return
	}

	if l := colorLiteralLen(text, pos); l > 0 {
		s.emit(pos+l, colorscheme.StyleNumber)
		return
	}

	md := s.p.IsMarkdown()
	if md {
		if h := headerEnd(text, pos); h > 0 {
			s.emit(h, colorscheme.StyleHeader)
			s.pos = n
			return
		}
		if end, style, ok := emphasisEnd(text, pos); ok {
			s.emit(end, style)
			return
		}
	}
	if md || s.p.IsHTML() {
		if end, style, ok := tagEnd(text, pos); ok {
			s.emit(end, style)
			return
		}
	}

	for i, pair := range s.p.BlockComments {
		if pair.Start == "" || pair.End == "" || !hasPrefixAt(text, pos, pair.Start) {
			continue
		}
		if end := indexFrom(text, pos+len(pair.Start), pair.End); end >= 0 {
			s.emit(end+len(pair.End), colorscheme.StyleComment)
			return
		}
		s.state = InBlockComment(i)
		s.emit(n, colorscheme.StyleComment)
		return
	}

	for _, tok := range s.p.LineComments {
		if tok != "" && hasPrefixAt(text, pos, tok) {
			s.emit(n, colorscheme.StyleComment)
			return
		}
	}

	if c == '#' && (pos == 0 || isSpace(text[pos-1])) {
		end := pos + 1
		for end < n && isWordByte(text[end]) {
			end++
		}
		s.emit(end, colorscheme.StylePreproc)
		return
	}

	if s.p.TripleQuotes && hasPrefixAt(text, pos, `"""`) {
		s.state = InTripleString()
		s.emit(pos+3, colorscheme.StyleString)
		return
	}

	if strings.IndexByte(s.p.StringDelims, c) >= 0 {
		s.state = InString(c)
		s.emit(pos+1, colorscheme.StyleString)
		return
	}

	if s.p.Numbers && (isDigit(c) || (c == '.' && pos+1 < n && isDigit(text[pos+1]))) {
		s.emit(numberEnd(text, pos), colorscheme.StyleNumber)
		return
	}

	if s.p.Brackets {
		switch {
		case c == '?' || c == ':':
			s.emit(pos+1, colorscheme.StyleTernary)
			return
		case isBracket(c):
			s.emit(pos+1, colorscheme.StyleBracket)
			return
		case isOperator(c):
			s.emit(pos+1, colorscheme.StyleOperator)
			return
		}
	}

	end := pos
	for end < n && isWordByte(text[end]) {
		end++
	}
	if end > pos {
		s.emit(end, s.wordStyle(pos, end))
		return
	}

	s.emit(pos+1, colorscheme.StyleNormal)
}

// wordStyle classifies the identifier text[start:end].
func (s *scanner) wordStyle(start, end int) colorscheme.StyleID {
	if end-start >= MaxWordLen {
		return colorscheme.StyleNormal
	}
	if style, ok := s.p.Lookup(string(s.text[start:end])); ok {
		return style
	}
	i := end
	for i < len(s.text) && isSpace(s.text[i]) {
		i++
	}
	if i < len(s.text) && s.text[i] == '(' {
		return colorscheme.StyleFunction
	}
	return colorscheme.StyleNormal
}

// numberEnd returns the end of the numeric literal starting at pos,
// including any uUlLfF suffix.
func numberEnd(text []byte, pos int) int {
	n := len(text)
	end := pos
	if text[pos] == '0' && pos+1 < n {
		switch next := text[pos+1]; {
		case next == 'x' || next == 'X':
			end += 2
			for end < n && isHexDigit(text[end]) {
				end++
			}
		case next == 'b' || next == 'B':
			end += 2
			for end < n && (text[end] == '0' || text[end] == '1') {
				end++
			}
		case isDigit(next):
			end++
			for end < n && isDigit(text[end]) {
				end++
			}
		default:
			end++
		}
	} else {
		for end < n {
			c := text[end]
			if !isDigit(c) && c != '.' && c != 'e' && c != 'E' {
				break
			}
			if (c == 'e' || c == 'E') && end+1 < n && (text[end+1] == '+' || text[end+1] == '-') {
				end++
			}
			end++
		}
	}
	for end < n && strings.IndexByte("uUlLfF", text[end]) >= 0 {
		end++
	}
	return end
}

func (s *scanner) blockComment() {
	idx := s.state.sub
	if idx < 0 || idx >= len(s.p.BlockComments) || s.p.BlockComments[idx].End == "" {
		// The pair list changed under a stored state; resume as code.
		s.state = Normal()
		return
	}
	closer := s.p.BlockComments[idx].End
	if end := indexFrom(s.text, s.pos, closer); end >= 0 {
		s.emit(end+len(closer), colorscheme.StyleComment)
		s.state = Normal()
		return
	}
	s.emit(len(s.text), colorscheme.StyleComment)
}

func (s *scanner) stringBody() {
	text, pos := s.text, s.pos
	n := len(text)

	if text[pos] == '\\' {
		s.emit(min(pos+escapeLen(text, pos), n), colorscheme.StyleEscape)
		return
	}

	if s.state.kind == KindTripleString {
		if hasPrefixAt(text, pos, `"""`) {
			s.emit(pos+3, colorscheme.StyleString)
			s.state = Normal()
			return
		}
	} else if text[pos] == s.state.Delim() {
		s.emit(pos+1, colorscheme.StyleString)
		s.state = Normal()
		return
	}

	s.emit(pos+1, colorscheme.StyleString)
}

// escapeLen returns the length of the escape sequence at pos: \x with up to
// two hex digits, a backslash with up to three digits, or two bytes.
func escapeLen(text []byte, pos int) int {
	l := 2
	if pos+1 >= len(text) {
		return l
	}
	switch next := text[pos+1]; {
	case next == 'x':
		for pos+l < len(text) && isHexDigit(text[pos+l]) && l < 4 {
			l++
		}
	case isDigit(next):
		for pos+l < len(text) && isDigit(text[pos+l]) && l < 4 {
			l++
		}
	}
	return l
}

func allSpace(b []byte) bool {
	for _, c := range b {
		if !isSpace(c) {
			return false
		}
	}
	return true
}
