package dirty

import "sort"

// DefaultMaxRegions is the region count past which a tracker gives up on
// individual lines and reports everything dirty.
const DefaultMaxRegions = 32

// Tracker records stale buffer lines and coalesces them into regions.
// A redraw is single-threaded; a Tracker is not safe for concurrent use.
type Tracker struct {
	// regions contains the current dirty regions, sorted and disjoint.
	regions []Region

	// all indicates every line is dirty.
	all bool

	// maxRegions is the maximum number of regions before marking all lines.
	maxRegions int
}

// NewTracker creates an empty line tracker.
func NewTracker() *Tracker {
	return &Tracker{
		regions:    make([]Region, 0, 8),
		maxRegions: DefaultMaxRegions,
	}
}

// MarkAll marks every line dirty.
func (t *Tracker) MarkAll() {
	t.all = true
	t.regions = t.regions[:0]
}

// MarkLine marks a single line dirty.
func (t *Tracker) MarkLine(line int) {
	t.MarkRegion(NewSingleLine(line))
}

// MarkLines marks lines start through end dirty.
func (t *Tracker) MarkLines(start, end int) {
	t.MarkRegion(NewLineRegion(start, end))
}

// MarkRegion marks a region dirty, merging it with the regions it touches.
func (t *Tracker) MarkRegion(region Region) {
	if t.all || region.IsEmpty() {
		return
	}
	if region.StartLine < 0 {
		region.StartLine = 0
	}

	kept := t.regions[:0]
	for _, r := range t.regions {
		if merged, ok := region.Merge(r); ok {
			region = merged
			continue
		}
		kept = append(kept, r)
	}
	t.regions = append(kept, region)
	sort.Slice(t.regions, func(i, j int) bool {
		return t.regions[i].StartLine < t.regions[j].StartLine
	})

	if len(t.regions) > t.maxRegions {
		t.MarkAll()
	}
}

// IsDirty returns true if any line is marked.
func (t *Tracker) IsDirty() bool {
	return t.all || len(t.regions) > 0
}

// AllDirty returns true if every line is marked.
func (t *Tracker) AllDirty() bool {
	return t.all
}

// IsLineDirty returns true if the given line needs redrawing.
func (t *Tracker) IsLineDirty(line int) bool {
	if t.all {
		return true
	}
	for _, r := range t.regions {
		if r.ContainsLine(line) {
			return true
		}
	}
	return false
}

// DirtyRegions returns a copy of the current dirty regions. It returns nil
// when every line is dirty; check AllDirty first.
func (t *Tracker) DirtyRegions() []Region {
	if t.all {
		return nil
	}
	result := make([]Region, len(t.regions))
	copy(result, t.regions)
	return result
}

// DirtyLines returns the marked lines below limit in ascending order.
func (t *Tracker) DirtyLines(limit int) []int {
	var lines []int
	if t.all {
		for i := 0; i < limit; i++ {
			lines = append(lines, i)
		}
		return lines
	}
	for _, r := range t.regions {
		for line := r.StartLine; line <= r.EndLine && line < limit; line++ {
			lines = append(lines, line)
		}
	}
	return lines
}

// ClearLines unmarks lines start through end. Clearing part of an all-dirty
// tracker keeps the lines after end marked.
func (t *Tracker) ClearLines(start, end int) {
	cleared := NewLineRegion(start, end)
	if t.all {
		t.all = false
		t.regions = t.regions[:0]
		if cleared.StartLine > 0 {
			t.regions = append(t.regions, Region{StartLine: 0, EndLine: cleared.StartLine - 1})
		}
		t.regions = append(t.regions, Region{StartLine: cleared.EndLine + 1, EndLine: maxLine})
		return
	}
	var out []Region
	for _, r := range t.regions {
		out = append(out, r.Subtract(cleared)...)
	}
	t.regions = append(t.regions[:0], out...)
}

// Clear unmarks every line.
func (t *Tracker) Clear() {
	t.regions = t.regions[:0]
	t.all = false
}

// RegionCount returns the number of dirty regions.
func (t *Tracker) RegionCount() int {
	if t.all {
		return 1
	}
	return len(t.regions)
}

// SetMaxRegions sets the region count past which every line is marked.
// Values less than 1 are clamped to 1.
func (t *Tracker) SetMaxRegions(maxRegs int) {
	if maxRegs < 1 {
		maxRegs = 1
	}
	t.maxRegions = maxRegs
}

// maxLine stands for "through the last line" in open-ended regions.
const maxLine = int(^uint(0) >> 2)
