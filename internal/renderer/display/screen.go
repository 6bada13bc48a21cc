package display

import "github.com/dshills/nanox/internal/renderer/core"

// vrow is one row of the virtual screen.
type vrow struct {
	cells []core.Cell

	// changed marks the row for comparison against the physical row.
	changed bool

	// extended marks a row drawn scrolled horizontally.
	extended bool
}

// screen holds the intended (virtual) and emitted (physical) cell grids.
type screen struct {
	width, height int
	virt          []vrow
	phys          [][]core.Cell
}

func newScreen(width, height int) *screen {
	s := &screen{}
	s.resize(width, height)
	return s
}

// resize reallocates both grids. The physical grid is marked unknown so
// every row is repainted.
func (s *screen) resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.virt = make([]vrow, s.height)
	s.phys = make([][]core.Cell, s.height)
	for y := range s.virt {
		s.virt[y].cells = make([]core.Cell, s.width)
		s.phys[y] = make([]core.Cell, s.width)
		for x := range s.virt[y].cells {
			s.virt[y].cells[x] = core.EmptyCell()
		}
		s.virt[y].changed = true
	}
	s.forget()
}

// forget marks every physical cell as unknown.
func (s *screen) forget() {
	for y := range s.phys {
		for x := range s.phys[y] {
			s.phys[y][x] = unknownCell
		}
	}
}

// erased records that the terminal was cleared with background bg.
func (s *screen) erased(bg core.Color) {
	blank := core.BlankCell(core.DefaultStyle().WithBackground(bg))
	for y := range s.phys {
		for x := range s.phys[y] {
			s.phys[y][x] = blank
		}
		s.virt[y].changed = true
	}
}

// unknownCell never compares equal to a composed cell.
var unknownCell = core.Cell{Rune: -1, Width: 1, Style: core.DefaultStyle()}

// sameOnScreen reports whether two cells look identical. Plain spaces
// differ only by background and underline.
func sameOnScreen(a, b core.Cell) bool {
	if a == b {
		return true
	}
	if a.Rune != ' ' || b.Rune != ' ' {
		return false
	}
	if (a.Style.Attributes|b.Style.Attributes).Has(core.AttrReverse) {
		return false
	}
	return a.Style.Background == b.Style.Background &&
		a.Style.IsUnderline() == b.Style.IsUnderline()
}
