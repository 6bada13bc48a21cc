package backend

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Default dimensions used when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSIOptions configures an ANSI terminal.
type ANSIOptions struct {
	// Width and Height are used when the output is not a terminal.
	Width, Height int

	// TrueColor enables 24-bit SGR colors.
	TrueColor bool
}

// ANSI writes VT100/ECMA-48 escape sequences to an io.Writer.
type ANSI struct {
	out       *bufio.Writer
	fd        int
	width     int
	height    int
	trueColor bool
	scratch   []byte
}

// NewANSI creates a terminal writing to w.
func NewANSI(w io.Writer, opts ANSIOptions) *ANSI {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	a := &ANSI{
		out:       bufio.NewWriterSize(w, 16*1024),
		fd:        -1,
		width:     opts.Width,
		height:    opts.Height,
		trueColor: opts.TrueColor,
	}
	if fd, ok := terminalFD(w); ok {
		a.fd = fd
	}
	return a
}

// IsTerminal reports whether w is a terminal device.
func IsTerminal(w io.Writer) bool {
	_, ok := terminalFD(w)
	return ok
}

func terminalFD(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return -1, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return -1, false
	}
	return fd, true
}

// Size returns the terminal size, or the configured size when the output
// is not a terminal.
func (a *ANSI) Size() (int, int) {
	if a.fd >= 0 {
		if w, h, err := term.GetSize(a.fd); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return a.width, a.height
}

func (a *ANSI) MoveCursor(row, col int) {
	b := append(a.scratch[:0], "\x1b["...)
	b = strconv.AppendInt(b, int64(row+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col+1), 10)
	b = append(b, 'H')
	a.scratch = b
	_, _ = a.out.Write(b)
}

func (a *ANSI) WriteRaw(p []byte) {
	_, _ = a.out.Write(p)
}

func (a *ANSI) SetAttribute(params string) {
	_, _ = a.out.WriteString("\x1b[")
	_, _ = a.out.WriteString(params)
	_ = a.out.WriteByte('m')
}

func (a *ANSI) EraseEOL() {
	_, _ = a.out.WriteString("\x1b[K")
}

func (a *ANSI) Clear() {
	_, _ = a.out.WriteString("\x1b[H\x1b[J")
}

// Flush writes buffered output; write errors surface here.
func (a *ANSI) Flush() error {
	return a.out.Flush()
}

func (a *ANSI) TrueColor() bool {
	return a.trueColor
}
