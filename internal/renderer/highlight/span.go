package highlight

import "github.com/dshills/nanox/internal/renderer/colorscheme"

// MaxSpans bounds the number of spans recorded for one line. Scanning
// continues past the bound so the leaving state stays correct; only the
// spans are dropped.
const MaxSpans = 1 << 16

// Span styles the byte range [Start, End) of a line.
type Span struct {
	Start int
	End   int
	Style colorscheme.StyleID
}

// Len returns the number of bytes covered.
func (s Span) Len() int { return s.End - s.Start }

// Spans is the ordered span list of one line. A Spans value can be reused
// across calls by passing it back in; HighlightLine truncates it first.
type Spans []Span

// add appends a span unless it is empty or the list is full.
func (s Spans) add(start, end int, style colorscheme.StyleID) Spans {
	if start >= end || len(s) >= MaxSpans {
		return s
	}
	return append(s, Span{Start: start, End: end, Style: style})
}

// StyleAt returns the style covering byte offset pos, or StyleNormal when
// no span covers it.
func (s Spans) StyleAt(pos int) colorscheme.StyleID {
	for _, sp := range s {
		if pos < sp.Start {
			break
		}
		if pos < sp.End {
			return sp.Style
		}
	}
	return colorscheme.StyleNormal
}

// Cursor walks spans forward in byte order. It is the cheap alternative to
// StyleAt when positions are visited in increasing order.
type Cursor struct {
	spans Spans
	idx   int
}

// NewCursor returns a cursor positioned before the first span.
func NewCursor(spans Spans) *Cursor {
	return &Cursor{spans: spans}
}

// StyleAt returns the style at pos. Positions must not decrease between
// calls.
func (c *Cursor) StyleAt(pos int) colorscheme.StyleID {
	for c.idx < len(c.spans) {
		sp := c.spans[c.idx]
		if pos >= sp.End {
			c.idx++
			continue
		}
		if pos >= sp.Start {
			return sp.Style
		}
		break
	}
	return colorscheme.StyleNormal
}
