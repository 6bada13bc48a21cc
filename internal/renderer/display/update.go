package display

import (
	"unicode/utf8"

	"github.com/dshills/nanox/internal/renderer/core"
	"github.com/dshills/nanox/internal/renderer/dirty"
)

// Update brings the terminal up to date with win. force repaints every
// row of the window even when its flags are clear.
//
// Rows are composed top-down, so a lexical state change on one row reaches
// the next row in the same pass.
func (d *Display) Update(win *Window, force bool) {
	if force {
		win.Flags |= dirty.Hard | dirty.Mode
	}

	if win.Flags != 0 {
		d.reframe(win)

		switch {
		case win.Flags&^dirty.Mode == dirty.Edit:
			d.updone(win)
		case win.Flags&^(dirty.Move|dirty.Mode) != 0:
			d.updall(win)
		}
		if win.Flags.Any(dirty.Mode) {
			d.modeline(win)
		}
		win.Flags = 0
		win.force = 0
	}

	d.updmarked(win)
	d.updpos(win)
	d.upddex(win)
	if d.garbage {
		d.updgar()
	}
	d.updupd()

	d.term.MoveCursor(d.currow, d.curcol-d.lbound)
	_ = d.term.Flush()
}

// reframe moves the top of the window so the cursor line is visible,
// stepping by ScrollCount when the cursor is just outside, otherwise
// centering it.
func (d *Display) reframe(win *Window) {
	rows := d.TextRows()
	i := win.force

	if !win.Flags.Has(dirty.Force) {
		rel := win.Line - win.Top
		switch {
		case rel >= 0 && rel < rows-1:
			return
		case rel == -1:
			i = ScrollCount
		case rel == rows-1:
			i = -ScrollCount
		default:
			i = 0
		}
	}

	switch {
	case i > 0:
		i--
		if i >= rows-1 {
			i = rows - 2
		}
	case i < 0:
		i += rows - 1
	default:
		i = (rows - 1) / 2
	}
	i = max(i, 0)

	win.Top = max(win.Line-i, 0)
	win.Flags |= dirty.Hard | dirty.Mode
	win.Flags &^= dirty.Force
}

// updone recomposes the cursor row.
func (d *Display) updone(win *Window) {
	row := win.Line - win.Top
	if row >= 0 && row < d.TextRows() {
		d.composeLine(win, row, win.Line, 0)
	}
}

// updall recomposes every row of the window.
func (d *Display) updall(win *Window) {
	for row := 0; row < d.TextRows(); row++ {
		d.composeLine(win, row, win.Top+row, 0)
	}
}

// updmarked recomposes visible rows whose lines were marked stale, either
// by an edit or by a state change on the line above.
func (d *Display) updmarked(win *Window) {
	if !win.Lines.IsDirty() {
		return
	}
	for row := 0; row < d.TextRows(); row++ {
		if i := win.Top + row; win.Lines.IsLineDirty(i) {
			d.composeLine(win, row, i, 0)
		}
	}
}

// updpos locates the cursor and scrolls its row horizontally when the
// cursor column does not fit.
func (d *Display) updpos(win *Window) {
	d.currow = win.Line - win.Top
	if d.currow < 0 || d.currow >= d.TextRows() {
		d.currow = 0
	}

	d.curcol = 0
	if win.Line >= 0 && win.Line < win.Buffer.Len() {
		d.curcol = d.tabs.Column(win.Buffer.At(win.Line).Text, win.Offset)
	}

	if d.curcol >= d.screen.width-1 && d.currow < d.TextRows() {
		d.screen.virt[d.currow].extended = true
		d.updext(win)
	} else {
		d.lbound = 0
	}
}

// updext redraws the cursor row shifted left so the cursor lands inside
// the margins, with '$' in column 0.
func (d *Display) updext(win *Window) {
	margin, scrsiz := d.scrollGeometry()
	rcursor := ((d.curcol - d.screen.width) % scrsiz) + margin
	d.lbound = d.curcol - rcursor + 1
	d.composeLine(win, d.currow, win.Line, d.lbound)
	d.screen.virt[d.currow].extended = true
}

// scrollGeometry returns the left margin kept when a row scrolls and the
// distance it scrolls by.
func (d *Display) scrollGeometry() (margin, scrsiz int) {
	w := d.screen.width
	margin = 8
	if w < 24 {
		margin = w / 4
	}
	return margin, max(w-2*margin, 1)
}

// upddex redraws rows left scrolled by an earlier cursor position.
func (d *Display) upddex(win *Window) {
	wide := d.curcol >= d.screen.width-1
	for row := 0; row < d.TextRows(); row++ {
		vr := &d.screen.virt[row]
		if !vr.extended {
			continue
		}
		if i := win.Top + row; i != win.Line || !wide {
			d.composeLine(win, row, i, 0)
			vr.extended = false
		}
	}
}

// updgar clears the terminal with the normal background and forces every
// row to repaint.
func (d *Display) updgar() {
	normal := d.normal()
	d.term.SetAttribute("0")
	d.pen.reset()
	d.pen.background(d.term, normal.Background)
	d.term.MoveCursor(0, 0)
	d.term.Clear()
	d.term.SetAttribute("0")
	d.pen.reset()
	_ = d.term.Flush()

	d.screen.erased(normal.Background)
	d.garbage = false
}

// updupd copies changed virtual rows to the terminal.
func (d *Display) updupd() {
	for row := range d.screen.virt {
		if d.screen.virt[row].changed {
			d.updateLine(row)
		}
	}
}

// updateLine emits the part of a row that differs from what the terminal
// shows. The trailing run of plain blanks is erased rather than written.
func (d *Display) updateLine(row int) {
	vr := &d.screen.virt[row]
	virt, phys := vr.cells, d.screen.phys[row]
	vr.changed = false

	first, last := -1, -1
	for x := range virt {
		if !sameOnScreen(virt[x], phys[x]) {
			if first < 0 {
				first = x
			}
			last = x
		}
	}
	if first < 0 {
		return
	}
	for first > 0 && (virt[first].IsContinuation() || phys[first].IsContinuation()) {
		first--
	}
	if virt[last].Width == 2 && last+1 < len(virt) {
		last++
	}

	normal := d.normal()
	maxchar := paintedWidth(virt, normal.Background)
	end, erase := last+1, false
	if end >= maxchar {
		// Cells in [maxchar, first) are blank on both screens.
		end, erase = max(maxchar, first), true
	}

	d.term.MoveCursor(row, first)
	d.term.SetAttribute("0")
	d.pen.reset()
	d.emit(virt[first:end])
	if erase {
		d.term.SetAttribute("0")
		d.pen.reset()
		d.pen.background(d.term, normal.Background)
		d.term.EraseEOL()
		d.term.SetAttribute("0")
		d.pen.reset()
	}

	copy(phys, virt)
}

// emit writes cells at the terminal cursor, skipping the right halves of
// wide characters.
func (d *Display) emit(cells []core.Cell) {
	var buf [utf8.UTFMax]byte
	for _, c := range cells {
		if c.IsContinuation() {
			continue
		}
		d.pen.apply(d.term, c.Style)
		d.term.WriteRaw(buf[:utf8.EncodeRune(buf[:], c.Rune)])
	}
}

// paintedWidth returns the number of leading cells that must be written;
// the rest of the row can be erased to background bg.
func paintedWidth(cells []core.Cell, bg core.Color) int {
	for x := len(cells) - 1; x >= 0; x-- {
		c := cells[x]
		if c.Style.Background == bg {
			c.Style.Background = core.ColorDefault
		}
		if !c.IsBlank() {
			return x + 1
		}
	}
	return 0
}
