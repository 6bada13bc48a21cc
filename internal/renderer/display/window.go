package display

import (
	"github.com/google/uuid"

	"github.com/dshills/nanox/internal/renderer/dirty"
	"github.com/dshills/nanox/internal/renderer/highlight"
)

// Buffer is the line store a window shows.
type Buffer interface {
	highlight.Lines

	// ID identifies the buffer for the profile cache.
	ID() uuid.UUID

	// Name is the buffer name shown when there is no file name.
	Name() string

	// Filename is the path the buffer was read from, or "".
	Filename() string

	// Modified reports unsaved changes.
	Modified() bool
}

// Window is a view onto a Buffer: the first line shown, the cursor ("dot")
// position, and the changes waiting to be redrawn.
type Window struct {
	Buffer Buffer

	// Top is the first buffer line shown.
	Top int

	// Line and Offset locate the cursor: a line index and a byte offset.
	Line   int
	Offset int

	// Flags records what changed since the last Update.
	Flags dirty.Flags

	// Lines tracks buffer lines whose row must be recomposed.
	Lines *dirty.Tracker

	// force is the requested cursor row for a forced reframe; 0 centers.
	force int
}

// NewWindow creates a window at the top of b, due for a full redraw.
func NewWindow(b Buffer) *Window {
	return &Window{
		Buffer: b,
		Flags:  dirty.Hard | dirty.Mode,
		Lines:  dirty.NewTracker(),
	}
}

// Filename returns the name used to select a highlight profile.
func (w *Window) Filename() string {
	if name := w.Buffer.Filename(); name != "" {
		return name
	}
	return w.Buffer.Name()
}

// MoveTo moves the cursor, clamping it to the buffer.
func (w *Window) MoveTo(line, offset int) {
	n := w.Buffer.Len()
	line = max(min(line, n-1), 0)
	if n > 0 {
		offset = min(offset, len(w.Buffer.At(line).Text))
	} else {
		offset = 0
	}
	offset = max(offset, 0)
	if line == w.Line && offset == w.Offset {
		return
	}
	w.Line, w.Offset = line, offset
	w.Flags |= dirty.Move | dirty.Mode
}

// ScrollBy moves the cursor n lines, keeping its byte offset where the
// target line allows.
func (w *Window) ScrollBy(n int) {
	w.MoveTo(w.Line+n, w.Offset)
}

// Reframe requests that the cursor line be shown on row n of the window
// (counting from 1; negative counts from the bottom, 0 centers).
func (w *Window) Reframe(n int) {
	w.force = n
	w.Flags |= dirty.Force
}

// LineChanged records an edit of buffer line i.
func (w *Window) LineChanged(i int) {
	w.Lines.MarkLine(i)
	if i == w.Line {
		w.Flags |= dirty.Edit
	}
	w.Flags |= dirty.Mode
}

// LinesShifted records an insertion or deletion at line i: every row from
// there down moves.
func (w *Window) LinesShifted(i int) {
	w.Lines.MarkLine(i)
	w.Flags |= dirty.Hard | dirty.Mode
}

// Invalidate requests a repaint of every row.
func (w *Window) Invalidate() {
	w.Flags |= dirty.Hard | dirty.Mode
}
