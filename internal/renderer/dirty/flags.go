package dirty

import "strings"

// Flags records what changed in a window since the last redraw.
type Flags uint8

// Window change flags.
const (
	// Force requests a reframe around the cursor line.
	Force Flags = 1 << iota

	// Move indicates the cursor moved.
	Move

	// Edit indicates the cursor line changed.
	Edit

	// Hard requests a repaint of every row.
	Hard

	// Mode requests a repaint of the mode line.
	Mode
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Force, "force"},
	{Move, "move"},
	{Edit, "edit"},
	{Hard, "hard"},
	{Mode, "mode"},
}

// Has returns true if all the given flags are set.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// Any returns true if any of the given flags is set.
func (f Flags) Any(x Flags) bool {
	return f&x != 0
}

// String returns the set flag names joined by '|'.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
