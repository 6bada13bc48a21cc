// Package backend provides the terminal output abstraction for the display,
// with an escape-sequence writer, an interactive tcell terminal and an
// in-memory screen for tests.
package backend

// Terminal is the output surface the display writes to. Rows and columns
// are zero-based. Output may be buffered until Flush.
type Terminal interface {
	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// MoveCursor moves the output cursor.
	MoveCursor(row, col int)

	// WriteRaw writes UTF-8 text at the cursor, advancing it.
	WriteRaw(p []byte)

	// SetAttribute applies an SGR parameter string such as "1" or
	// "38;2;10;20;30".
	SetAttribute(params string)

	// EraseEOL erases from the cursor to the end of its row using the
	// current background.
	EraseEOL()

	// Clear erases the whole screen using the current background and homes
	// the cursor.
	Clear()

	// Flush pushes buffered output to the device.
	Flush() error

	// TrueColor reports whether 24-bit SGR colors are understood.
	TrueColor() bool
}

// Backend is an interactive terminal: output plus an event source.
type Backend interface {
	Terminal

	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue. It may be
	// called from any goroutine.
	PostEvent(event Event)
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int

	// Data carries the payload of an interrupt event.
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer binds.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlR
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}
