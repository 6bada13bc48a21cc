// Package display keeps a virtual screen of styled cells, composes it from
// highlighted buffer lines, and brings the terminal up to date by emitting
// only the rows and attribute changes that differ.
//
// Updates are single-threaded: the caller must not call into a Display
// while an Update is running.
package display

import (
	"github.com/dshills/nanox/internal/renderer/backend"
	"github.com/dshills/nanox/internal/renderer/colorscheme"
	"github.com/dshills/nanox/internal/renderer/core"
	"github.com/dshills/nanox/internal/renderer/highlight"
	"github.com/dshills/nanox/internal/renderer/layout"
)

// ScrollCount is how many lines the window moves when the cursor steps
// just off its top or bottom.
const ScrollCount = 1

// Options configures a Display.
type Options struct {
	// TabWidth is the tab stop interval. Zero selects the default.
	TabWidth int

	// ShowModeLine reserves the row above the message line for status.
	ShowModeLine bool

	// TrueColor forces 24-bit SGR colors even when the terminal does not
	// report them.
	TrueColor bool

	// ColorPreview paints color literals with the color they name.
	ColorPreview bool
}

// Display renders windows onto a terminal.
type Display struct {
	term    backend.Terminal
	engine  *highlight.Engine
	opts    Options
	tabs    *layout.TabExpander
	screen  *screen
	writer  rowWriter
	pen     pen
	spans   highlight.Spans
	garbage bool
	message string

	// cursor position of the current window: row, logical column and the
	// horizontal scroll of an extended row
	currow, curcol, lbound int
}

// New creates a display on term. eng may be nil, which renders plain text.
func New(term backend.Terminal, eng *highlight.Engine, opts Options) *Display {
	if opts.TabWidth <= 0 {
		opts.TabWidth = layout.DefaultTabWidth
	}
	d := &Display{
		term:    term,
		engine:  eng,
		opts:    opts,
		tabs:    layout.NewTabExpander(opts.TabWidth),
		garbage: true,
	}
	d.writer.tabs = d.tabs
	d.pen.trueColor = opts.TrueColor || term.TrueColor()
	w, h := term.Size()
	d.screen = newScreen(w, h)
	d.composeMessage()
	return d
}

// Size returns the screen dimensions the display composes for.
func (d *Display) Size() (width, height int) {
	return d.screen.width, d.screen.height
}

// Resize reallocates the screen and schedules a clear. Windows shown on
// the display must be invalidated by the caller.
func (d *Display) Resize(width, height int) {
	d.screen.resize(width, height)
	d.composeMessage()
	d.garbage = true
}

// Garbage schedules a clear and full repaint on the next Update.
func (d *Display) Garbage() {
	d.garbage = true
}

// SetTabWidth changes the tab stop interval. Windows must be invalidated
// by the caller.
func (d *Display) SetTabWidth(n int) {
	d.tabs.SetTabWidth(n)
}

// TabExpander returns the tab stops used for composition.
func (d *Display) TabExpander() *layout.TabExpander {
	return d.tabs
}

// TextRows returns the number of rows available to a window.
func (d *Display) TextRows() int {
	rows := d.screen.height - 1
	if d.modeRow() >= 0 {
		rows--
	}
	return max(rows, 0)
}

// modeRow returns the mode line row, or -1 when there is none.
func (d *Display) modeRow() int {
	if !d.opts.ShowModeLine || d.screen.height < 2 {
		return -1
	}
	return d.screen.height - 2
}

// messageRow returns the message line row, or -1 on an empty screen.
func (d *Display) messageRow() int {
	return d.screen.height - 1
}

func (d *Display) highlighting() bool {
	return d.engine != nil && d.engine.IsEnabled()
}

// normal returns the style of unclassified text.
func (d *Display) normal() core.Style {
	if d.engine == nil {
		return core.DefaultStyle()
	}
	return d.engine.Style(colorscheme.StyleNormal)
}
