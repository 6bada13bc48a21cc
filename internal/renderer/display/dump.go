package display

import "github.com/dshills/nanox/internal/renderer/core"

// Dump writes every line of b to the terminal as one row each, using the
// same composition and SGR emission as Update but without cursor
// addressing. It is meant for output that is not a screen, such as a pipe.
func (d *Display) Dump(b Buffer) error {
	win := NewWindow(b)
	cells := make([]core.Cell, d.screen.width)
	normal := d.normal()

	for i := 0; i < b.Len(); i++ {
		d.compose(win, cells, i, 0)
		d.term.SetAttribute("0")
		d.pen.reset()
		d.emit(cells[:paintedWidth(cells, normal.Background)])
		d.term.SetAttribute("0")
		d.pen.reset()
		d.term.WriteRaw([]byte{'\n'})
	}
	return d.term.Flush()
}
