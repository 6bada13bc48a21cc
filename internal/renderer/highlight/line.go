package highlight

// Line is the per-line record the highlighter reads and updates. Start is
// the state the line is entered in; End is the state the last scan left it
// in.
type Line struct {
	Text  []byte
	Start State
	End   State
}

// Lines is an indexed line store.
type Lines interface {
	Len() int
	At(i int) *Line
}

// ScanLine highlights line i of lines. When the leaving state differs from
// the one stored by the previous scan, it is stored, copied into the
// entering state of line i+1, and ScanLine reports that line i+1 needs to be
// redrawn.
//
// Only the next line is invalidated. A change that ripples further is picked
// up as each following line is scanned in turn, so lines that are never
// drawn can keep a stale entering state.
func ScanLine(lines Lines, i int, p *Profile, out Spans) (Spans, bool) {
	lp := lines.At(i)
	out, end := HighlightLine(lp.Text, lp.Start, p, out)
	if end == lp.End {
		return out, false
	}
	lp.End = end
	if i+1 >= lines.Len() {
		return out, false
	}
	lines.At(i + 1).Start = end
	return out, true
}
