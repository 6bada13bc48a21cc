package backend

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/nanox/internal/renderer/core"
)

// NullBackend is an in-memory terminal for testing. It interprets the
// output calls into a cell grid so tests can inspect the resulting screen.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	row, col      int
	style         core.Style
	trueColor     bool
	written       int
	flushes       int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:     width,
		height:    height,
		style:     core.DefaultStyle(),
		trueColor: true,
		events:    make(chan Event, 100),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }
func (b *NullBackend) Shutdown()   {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) MoveCursor(row, col int) {
	b.row, b.col = row, col
	b.written += len("\x1b[;H") + 4
}

func (b *NullBackend) WriteRaw(p []byte) {
	b.written += len(p)
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		p = p[size:]
		w := max(core.RuneWidth(r), 1)
		b.setCell(b.row, b.col, core.Cell{Rune: r, Width: w, Style: b.style})
		if w == 2 {
			b.setCell(b.row, b.col+1, core.ContinuationCell(b.style))
		}
		b.col += w
	}
}

func (b *NullBackend) SetAttribute(params string) {
	b.written += len(params) + 3
	b.style = ApplySGR(b.style, params)
}

func (b *NullBackend) EraseEOL() {
	b.written += 3
	for x := b.col; x < b.width; x++ {
		b.setCell(b.row, x, core.BlankCell(b.eraseStyle()))
	}
}

func (b *NullBackend) Clear() {
	b.written += 6
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = core.BlankCell(b.eraseStyle())
		}
	}
	b.row, b.col = 0, 0
}

// eraseStyle is the style of erased cells: only the background survives.
func (b *NullBackend) eraseStyle() core.Style {
	return core.DefaultStyle().WithBackground(b.style.Background)
}

func (b *NullBackend) setCell(row, col int, c core.Cell) {
	if row >= 0 && row < b.height && col >= 0 && col < b.width {
		b.cells[row][col] = c
	}
}

func (b *NullBackend) Flush() error {
	b.flushes++
	return nil
}

func (b *NullBackend) TrueColor() bool { return b.trueColor }

// SetTrueColor changes the reported color capability.
func (b *NullBackend) SetTrueColor(on bool) { b.trueColor = on }

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Cell returns the cell at the given position.
func (b *NullBackend) Cell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// Row returns the text of a row, skipping wide-character continuations.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if !c.IsContinuation() {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// CursorPosition returns the output cursor for testing.
func (b *NullBackend) CursorPosition() (row, col int) {
	return b.row, b.col
}

// Written returns an estimate of the bytes an escape-sequence terminal
// would have received.
func (b *NullBackend) Written() int { return b.written }

// ResetWritten zeroes the byte counter.
func (b *NullBackend) ResetWritten() { b.written = 0 }

// Flushes returns the number of Flush calls.
func (b *NullBackend) Flushes() int { return b.flushes }

// Resize simulates a terminal resize; the screen is cleared.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
