// Package dirty tracks what must be redrawn: per-window change flags and
// the buffer lines whose rendering is stale.
package dirty

// Region is an inclusive range of buffer lines.
type Region struct {
	// StartLine is the first line of the region (inclusive).
	StartLine int

	// EndLine is the last line of the region (inclusive).
	EndLine int
}

// NewLineRegion creates a region covering lines start through end.
func NewLineRegion(start, end int) Region {
	if end < start {
		start, end = end, start
	}
	return Region{StartLine: start, EndLine: end}
}

// NewSingleLine creates a region for a single line.
func NewSingleLine(line int) Region {
	return Region{StartLine: line, EndLine: line}
}

// IsEmpty returns true if the region covers no lines.
func (r Region) IsEmpty() bool {
	return r.StartLine > r.EndLine || r.EndLine < 0
}

// LineCount returns the number of lines covered by the region.
func (r Region) LineCount() int {
	if r.IsEmpty() {
		return 0
	}
	return r.EndLine - r.StartLine + 1
}

// ContainsLine returns true if the region covers the given line.
func (r Region) ContainsLine(line int) bool {
	return line >= r.StartLine && line <= r.EndLine
}

// Overlaps returns true if two regions share a line.
func (r Region) Overlaps(other Region) bool {
	return r.StartLine <= other.EndLine && other.StartLine <= r.EndLine
}

// Adjacent returns true if one region ends on the line before the other starts.
func (r Region) Adjacent(other Region) bool {
	return r.EndLine+1 == other.StartLine || other.EndLine+1 == r.StartLine
}

// Merge combines two regions that overlap or touch.
func (r Region) Merge(other Region) (Region, bool) {
	if !r.Overlaps(other) && !r.Adjacent(other) {
		return Region{}, false
	}
	return Region{
		StartLine: min(r.StartLine, other.StartLine),
		EndLine:   max(r.EndLine, other.EndLine),
	}, true
}

// Subtract removes other from r, returning the zero, one or two pieces left.
func (r Region) Subtract(other Region) []Region {
	if !r.Overlaps(other) {
		return []Region{r}
	}
	var out []Region
	if r.StartLine < other.StartLine {
		out = append(out, Region{StartLine: r.StartLine, EndLine: other.StartLine - 1})
	}
	if r.EndLine > other.EndLine {
		out = append(out, Region{StartLine: other.EndLine + 1, EndLine: r.EndLine})
	}
	return out
}
