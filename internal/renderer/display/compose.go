package display

import (
	"github.com/dshills/nanox/internal/renderer/colorscheme"
	"github.com/dshills/nanox/internal/renderer/core"
	"github.com/dshills/nanox/internal/renderer/highlight"
	"github.com/dshills/nanox/internal/renderer/layout"
)

// rowWriter places code points into one virtual row. col is the logical
// column, which is negative while a scrolled row is left of the screen.
type rowWriter struct {
	cells  []core.Cell
	col    int
	taboff int
	tabs   *layout.TabExpander
	expand []rune
}

func (w *rowWriter) reset(cells []core.Cell, taboff int) {
	w.cells = cells
	w.col = -taboff
	w.taboff = taboff
}

// put writes r in style st, expanding tabs and unprintable code points.
func (w *rowWriter) put(r rune, st core.Style) {
	switch {
	case r == '\t':
		next := w.tabs.NextTabStop(w.col+w.taboff) - w.taboff
		for w.col < next {
			w.putNarrow(' ', st)
		}
		return
	case r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0xa0):
		w.expand = layout.Expand(w.expand[:0], r)
		for _, e := range w.expand {
			w.putNarrow(e, st)
		}
		return
	}

	if layout.DisplayWidth(r) < 2 {
		w.putNarrow(r, st)
		return
	}
	width := len(w.cells)
	switch {
	case w.col+1 >= width:
		w.overflow(st)
	case w.col >= 0:
		w.cells[w.col] = core.Cell{Rune: r, Width: 2, Style: st}
		w.cells[w.col+1] = core.ContinuationCell(st)
	case w.col == -1:
		// Right half of a character cut by the left edge.
		w.cells[0] = core.BlankCell(st)
	}
	w.col += 2
}

func (w *rowWriter) putNarrow(r rune, st core.Style) {
	if w.col >= len(w.cells) {
		w.overflow(st)
		w.col++
		return
	}
	if w.col >= 0 {
		w.cells[w.col] = core.Cell{Rune: r, Width: 1, Style: st}
	}
	w.col++
}

// overflow marks the row as continuing past the right edge.
func (w *rowWriter) overflow(st core.Style) {
	last := len(w.cells) - 1
	if last < 0 {
		return
	}
	if w.col > last && last > 0 && w.cells[last].IsContinuation() {
		w.cells[last-1] = core.BlankCell(st)
	}
	w.cells[last] = core.Cell{Rune: '$', Width: 1, Style: st}
}

// eol blanks the rest of the row.
func (w *rowWriter) eol(st core.Style) {
	for x := max(w.col, 0); x < len(w.cells); x++ {
		w.cells[x] = core.BlankCell(st)
	}
	w.col = max(w.col, len(w.cells))
}

// composeLine draws buffer line i of win into virtual row row, scrolled
// left by taboff columns. Lines past the end of the buffer draw blank.
func (d *Display) composeLine(win *Window, row, i, taboff int) {
	vr := &d.screen.virt[row]
	vr.changed = true
	d.compose(win, vr.cells, i, taboff)
}

func (d *Display) compose(win *Window, cells []core.Cell, i, taboff int) {
	normal := d.normal()
	d.writer.reset(cells, taboff)
	if i >= 0 && i < win.Buffer.Len() {
		d.drawText(win, i, normal)
	}
	d.writer.eol(normal)
	if taboff > 0 && len(cells) > 0 {
		cells[0] = core.Cell{Rune: '$', Width: 1, Style: normal}
	}
}

func (d *Display) drawText(win *Window, i int, normal core.Style) {
	text := win.Buffer.At(i).Text
	win.Lines.ClearLines(i, i)

	var cur *highlight.Cursor
	if d.highlighting() {
		p := d.engine.ProfileFor(win.Buffer.ID(), win.Filename())
		spans, next := highlight.ScanLine(win.Buffer, i, p, d.spans)
		d.spans = spans
		if next {
			win.Lines.MarkLine(i + 1)
		}
		cur = highlight.NewCursor(spans)
	}

	var swatches []highlight.ColorMatch
	if d.opts.ColorPreview {
		swatches = highlight.FindColorsInLine(text)
	}

	for pos := 0; pos < len(text); {
		r, size := layout.DecodeRune(text, pos)
		st := normal
		if cur != nil {
			if id := cur.StyleAt(pos); id != colorscheme.StyleNormal {
				st = d.engine.Style(id)
			}
		}
		for len(swatches) > 0 && pos >= swatches[0].End {
			swatches = swatches[1:]
		}
		if len(swatches) > 0 && pos >= swatches[0].Start {
			st = swatchStyle(st, swatches[0])
		}
		d.writer.put(r, st)
		pos += size
	}
}

// swatchStyle paints a color literal in its own color, with a contrasting
// foreground.
func swatchStyle(st core.Style, m highlight.ColorMatch) core.Style {
	st.Background = m.Color()
	if 299*int(m.R)+587*int(m.G)+114*int(m.B) > 128*1000 {
		st.Foreground = core.ColorBlack
	} else {
		st.Foreground = core.ColorFromIndex(15)
	}
	return st
}
