package display

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/nanox/internal/renderer/core"
)

// modeline composes the status row of win: the buffer name, highlight
// profile and scheme on the left, the cursor position and modified mark
// on the right, all in reverse video.
func (d *Display) modeline(win *Window) {
	row := d.modeRow()
	if row < 0 {
		return
	}
	vr := &d.screen.virt[row]
	vr.changed = true
	st := d.normal().Reverse()

	mark := '-'
	if win.Buffer.Modified() {
		mark = '*'
	}
	right := fmt.Sprintf("L%d C%d %c ", win.Line+1, d.column(win)+1, mark)
	left := " " + win.Buffer.Name()
	if d.engine != nil {
		if p := d.engine.ProfileFor(win.Buffer.ID(), win.Filename()); p != nil {
			left += " [" + p.Name + "]"
		}
		left += " " + d.engine.Scheme().ActiveName()
	}

	for x := range vr.cells {
		vr.cells[x] = core.BlankCell(st)
	}
	rw := uniseg.StringWidth(right)
	if rw >= d.screen.width {
		putString(vr.cells, 0, right, st)
		return
	}
	putString(vr.cells[:d.screen.width-rw-1], 0, left, st)
	putString(vr.cells, d.screen.width-rw, right, st)
}

// composeMessage draws the message line.
func (d *Display) composeMessage() {
	row := d.messageRow()
	if row < 0 {
		return
	}
	vr := &d.screen.virt[row]
	vr.changed = true
	st := d.normal()
	for x := range vr.cells {
		vr.cells[x] = core.BlankCell(st)
	}
	putString(vr.cells, 0, d.message, st)
}

// SetMessage shows msg on the message line and writes it out immediately.
func (d *Display) SetMessage(msg string) {
	d.message = msg
	row := d.messageRow()
	if row < 0 {
		return
	}
	d.composeMessage()
	if d.garbage {
		return
	}
	d.updateLine(row)
	d.term.MoveCursor(d.currow, d.curcol-d.lbound)
	_ = d.term.Flush()
}

// Message returns the text on the message line.
func (d *Display) Message() string {
	return d.message
}

// column returns the display column of the cursor in win.
func (d *Display) column(win *Window) int {
	if win.Line < 0 || win.Line >= win.Buffer.Len() {
		return 0
	}
	return d.tabs.Column(win.Buffer.At(win.Line).Text, win.Offset)
}

// putString writes s into cells from column x one grapheme cluster per
// cell, stopping at the first cluster that does not fit. Control
// characters and zero-width clusters are dropped.
func putString(cells []core.Cell, x int, s string, st core.Style) {
	state := -1
	for s != "" {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width == 0 {
			continue
		}
		if x+width > len(cells) {
			return
		}
		r := []rune(cluster)[0]
		if r < 0x20 || r == 0x7f {
			r = ' '
		}
		cells[x] = core.Cell{Rune: r, Width: width, Style: st}
		if width == 2 {
			cells[x+1] = core.ContinuationCell(st)
		}
		x += width
	}
}
