package app

import (
	"github.com/dshills/nanox/internal/renderer/backend"
	"github.com/dshills/nanox/internal/renderer/layout"
)

// handleBackendEvent processes one backend event on the main loop.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.display.Resize(ev.Width, ev.Height)
		app.win.Invalidate()
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventInterrupt:
		switch ev.Data.(type) {
		case reloadRequest:
			app.reload()
		case quitRequest:
			return ErrQuit
		}
	}
	return nil
}

// handleKeyEvent moves the cursor or runs one of the viewer commands.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	if isQuit(ev) {
		return ErrQuit
	}
	if app.display.Message() != "" {
		app.display.SetMessage("")
	}

	win := app.win
	page := max(app.display.TextRows()-1, 1)

	switch ev.Key {
	case backend.KeyUp:
		win.ScrollBy(-1)
	case backend.KeyDown:
		win.ScrollBy(1)
	case backend.KeyPageUp:
		win.ScrollBy(-page)
	case backend.KeyPageDown:
		win.ScrollBy(page)
	case backend.KeyHome:
		win.MoveTo(win.Line, 0)
	case backend.KeyEnd:
		win.MoveTo(win.Line, len(app.doc.At(win.Line).Text))
	case backend.KeyLeft:
		win.MoveTo(win.Line, prevBoundary(app.doc.At(win.Line).Text, win.Offset))
	case backend.KeyRight:
		win.MoveTo(win.Line, nextBoundary(app.doc.At(win.Line).Text, win.Offset))
	case backend.KeyCtrlL:
		app.display.Garbage()
		win.Reframe(0)
	case backend.KeyCtrlR:
		app.reload()
	case backend.KeyRune:
		app.handleRune(ev.Rune)
	}
	return nil
}

func isQuit(ev backend.Event) bool {
	switch ev.Key {
	case backend.KeyCtrlC, backend.KeyCtrlQ:
		return true
	case backend.KeyRune:
		return ev.Rune == 'q'
	}
	return false
}

func (app *Application) handleRune(r rune) {
	win := app.win
	switch r {
	case 'j':
		win.ScrollBy(1)
	case 'k':
		win.ScrollBy(-1)
	case 'g':
		win.MoveTo(0, 0)
	case 'G':
		win.MoveTo(app.doc.Len()-1, 0)
	}
}

// nextBoundary returns the offset of the character after the one at off.
func nextBoundary(text []byte, off int) int {
	if off >= len(text) {
		return len(text)
	}
	_, size := layout.DecodeRune(text, off)
	return off + size
}

// prevBoundary returns the offset of the character before off, decoding
// from the start of the line with the same rules as the display.
func prevBoundary(text []byte, off int) int {
	prev := 0
	for i := 0; i < off && i < len(text); {
		prev = i
		_, size := layout.DecodeRune(text, i)
		i += size
	}
	return prev
}
