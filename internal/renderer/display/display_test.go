package display

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/nanox/internal/renderer/backend"
	"github.com/dshills/nanox/internal/renderer/core"
	"github.com/dshills/nanox/internal/renderer/dirty"
	"github.com/dshills/nanox/internal/renderer/highlight"
)

type testBuffer struct {
	id       uuid.UUID
	name     string
	lines    []*highlight.Line
	modified bool
}

func newTestBuffer(name string, texts ...string) *testBuffer {
	b := &testBuffer{id: uuid.New(), name: name}
	for _, t := range texts {
		b.lines = append(b.lines, &highlight.Line{Text: []byte(t)})
	}
	return b
}

func (b *testBuffer) Len() int                 { return len(b.lines) }
func (b *testBuffer) At(i int) *highlight.Line { return b.lines[i] }
func (b *testBuffer) ID() uuid.UUID            { return b.id }
func (b *testBuffer) Name() string             { return b.name }
func (b *testBuffer) Filename() string         { return b.name }
func (b *testBuffer) Modified() bool           { return b.modified }

func (b *testBuffer) set(i int, text string) {
	b.lines[i].Text = []byte(text)
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len([]rune(s)))
}

func testEngine(t *testing.T) *highlight.Engine {
	t.Helper()
	fsys := fstest.MapFS{
		"cfg/rules.ini":            {Data: []byte("[highlight]\ncolorscheme = test\n[c]\nextensions = c\nkeywords = int\nblock_comment_pairs = /* */\n")},
		"cfg/colorscheme/test.ini": {Data: []byte("[styles]\nkeyword = fg=red bold=true\ncomment = fg=green\nnumber = fg=#ff0000\n")},
	}
	e := highlight.NewEngine(highlight.EngineOptions{
		RulePath:      "cfg/rules.ini",
		Dirs:          highlight.Dirs{Fallback: "none", ConfigDir: "cfg"},
		FS:            fsys,
		Getenv:        func(string) string { return "" },
		DisableChroma: true,
	})
	require.True(t, e.IsEnabled())
	return e
}

func TestUpdatePlainText(t *testing.T) {
	term := backend.NewNullBackend(20, 5)
	d := New(term, nil, Options{})
	buf := newTestBuffer("notes", "hello", "\tx", "a\x01b", "\x85")
	win := NewWindow(buf)

	d.Update(win, false)

	want := []string{"hello", "        x", "a^Ab", `\85`, ""}
	for y, w := range want {
		if got := term.Row(y); got != pad(w, 20) {
			t.Errorf("Row(%d) = %q, want %q", y, got, pad(w, 20))
		}
	}
	if row, col := term.CursorPosition(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", row, col)
	}
	if win.Flags != 0 {
		t.Errorf("Flags = %v after Update, want none", win.Flags)
	}
}

func TestUpdateNothingChanged(t *testing.T) {
	term := backend.NewNullBackend(20, 5)
	d := New(term, nil, Options{})
	win := NewWindow(newTestBuffer("notes", "one", "two"))
	d.Update(win, false)

	term.ResetWritten()
	d.Update(win, false)
	if got, want := term.Written(), len("\x1b[;H")+4; got != want {
		t.Errorf("idle Update wrote %d bytes, want only the cursor move (%d)", got, want)
	}
}

func TestUpdateEditedLineBytes(t *testing.T) {
	var out bytes.Buffer
	term := backend.NewANSI(&out, backend.ANSIOptions{Width: 10, Height: 4})
	d := New(term, nil, Options{})
	buf := newTestBuffer("notes", "ab", "cd")
	win := NewWindow(buf)
	d.Update(win, false)
	out.Reset()

	buf.set(0, "ax")
	win.LineChanged(0)
	d.Update(win, false)

	want := "\x1b[1;2H\x1b[0mx\x1b[0m\x1b[K\x1b[0m\x1b[1;1H"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestUpdateShrinkPastSpace(t *testing.T) {
	term := backend.NewNullBackend(20, 3)
	d := New(term, nil, Options{})
	buf := newTestBuffer("notes", "hello world", "} else {")
	win := NewWindow(buf)
	d.Update(win, false)

	buf.set(0, "hello")
	buf.set(1, "}")
	win.LineChanged(0)
	win.LineChanged(1)
	win.Invalidate()
	d.Update(win, false)

	for y, w := range []string{"hello", "}"} {
		if got := term.Row(y); got != pad(w, 20) {
			t.Errorf("Row(%d) = %q, want %q", y, got, pad(w, 20))
		}
	}
}

func TestUpdateScrollBlankOverIndented(t *testing.T) {
	term := backend.NewNullBackend(20, 4)
	d := New(term, nil, Options{})
	buf := newTestBuffer("f.go", "func f() {", "\treturn", "", "}", "x")
	win := NewWindow(buf)
	d.Update(win, false)

	shown := []string{"func f() {", "        return", "", "}", "x"}
	for step := 1; step <= 4; step++ {
		win.ScrollBy(1)
		d.Update(win, false)
		for y := 0; y < d.TextRows() && win.Top+y < len(shown); y++ {
			want := pad(shown[win.Top+y], 20)
			if got := term.Row(y); got != want {
				t.Errorf("step %d: Row(%d) = %q, want %q", step, y, got, want)
			}
		}
	}
	if win.Line != 4 {
		t.Errorf("Line = %d, want 4", win.Line)
	}
}

func TestUpdateHighlightsAndPropagates(t *testing.T) {
	term := backend.NewNullBackend(20, 5)
	d := New(term, testEngine(t), Options{})
	buf := newTestBuffer("main.c", "/* open", "still", "*/ int y;")
	win := NewWindow(buf)
	d.Update(win, false)

	green := core.ColorFromIndex(2)
	red := core.ColorFromIndex(1)
	assert.Equal(t, green, term.Cell(0, 1).Style.Foreground, "line 1 inside the comment")
	assert.Equal(t, green, term.Cell(0, 2).Style.Foreground, "closing token")
	kw := term.Cell(3, 2).Style
	assert.Equal(t, red, kw.Foreground)
	assert.True(t, kw.IsBold())

	buf.set(0, "x")
	win.LineChanged(0)
	d.Update(win, false)

	assert.True(t, term.Cell(0, 1).Style.Foreground.IsDefault(), "comment no longer open")
	assert.NotEqual(t, green, term.Cell(0, 2).Style.Foreground, "*/ is no longer inside a comment")
	assert.False(t, win.Lines.IsDirty())
}

func TestUpdateDownsamplesRGB(t *testing.T) {
	term := backend.NewNullBackend(20, 3)
	term.SetTrueColor(false)
	d := New(term, testEngine(t), Options{})
	d.Update(NewWindow(newTestBuffer("main.c", "x = 12;")), false)

	fg := term.Cell(4, 0).Style.Foreground
	assert.True(t, fg.IsIndexed(), "got %v", fg)
	assert.Equal(t, core.ColorFromRGB(0xff, 0, 0).To256(), fg)
}

func TestUpdateColorPreview(t *testing.T) {
	term := backend.NewNullBackend(20, 3)
	d := New(term, nil, Options{ColorPreview: true})
	d.Update(NewWindow(newTestBuffer("a.css", "a #ffffff b")), false)

	assert.Equal(t, core.ColorFromRGB(0xff, 0xff, 0xff), term.Cell(2, 0).Style.Background)
	assert.Equal(t, core.ColorBlack, term.Cell(2, 0).Style.Foreground)
	assert.True(t, term.Cell(9, 0).Style.Background.IsDefault())
}

func TestUpdateWideAndOverflow(t *testing.T) {
	term := backend.NewNullBackend(10, 4)
	d := New(term, nil, Options{})
	d.Update(NewWindow(newTestBuffer("x", "日本", "abcdefghijkl", "abcdefgh日x")), false)

	if got := term.Row(0); !strings.HasPrefix(got, "日本 ") {
		t.Errorf("Row(0) = %q", got)
	}
	if !term.Cell(1, 0).IsContinuation() {
		t.Error("Cell(1,0) should continue the wide character")
	}
	if got := term.Row(1); got != "abcdefghi$" {
		t.Errorf("Row(1) = %q, want %q", got, "abcdefghi$")
	}
	if got := term.Row(2); got != "abcdefgh $" {
		t.Errorf("Row(2) = %q, want %q", got, "abcdefgh $")
	}
}

func TestUpdateExtendedLine(t *testing.T) {
	term := backend.NewNullBackend(20, 4)
	d := New(term, nil, Options{})
	long := strings.Repeat("0123456789", 4)
	win := NewWindow(newTestBuffer("x", long, "short"))
	win.MoveTo(0, 30)
	d.Update(win, false)

	if row, col := term.CursorPosition(); row != 0 || col != 4 {
		t.Errorf("cursor = (%d,%d), want (0,4)", row, col)
	}
	if got, want := term.Row(0), pad("$"+long[27:], 20); got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}

	win.MoveTo(1, 0)
	d.Update(win, false)
	if got, want := term.Row(0), long[:19]+"$"; got != want {
		t.Errorf("Row(0) after leaving = %q, want %q", got, want)
	}
}

func TestReframe(t *testing.T) {
	texts := make([]string, 50)
	for i := range texts {
		texts[i] = "line"
	}
	term := backend.NewNullBackend(20, 10)
	d := New(term, nil, Options{})
	win := NewWindow(newTestBuffer("x", texts...))
	d.Update(win, false)

	tests := []struct {
		name    string
		move    func()
		wantTop int
	}{
		{"inside the window", func() { win.MoveTo(7, 0) }, 0},
		{"one past the bottom", func() { win.MoveTo(8, 0) }, 1},
		{"far below centers", func() { win.MoveTo(30, 0) }, 26},
		{"one above the top", func() { win.MoveTo(25, 0) }, 25},
		{"forced row", func() { win.Reframe(3) }, 23},
		{"forced centering", func() { win.Reframe(0) }, 21},
		{"forced from bottom", func() { win.Reframe(-1) }, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.move()
			d.Update(win, false)
			if win.Top != tt.wantTop {
				t.Errorf("Top = %d, want %d", win.Top, tt.wantTop)
			}
			if row, _ := term.CursorPosition(); row != win.Line-win.Top {
				t.Errorf("cursor row = %d, want %d", row, win.Line-win.Top)
			}
		})
	}
}

func TestModeLine(t *testing.T) {
	term := backend.NewNullBackend(30, 5)
	d := New(term, nil, Options{ShowModeLine: true})
	buf := newTestBuffer("main.c", "a\tb")
	win := NewWindow(buf)
	win.MoveTo(0, 2)
	d.Update(win, false)

	if got := d.TextRows(); got != 3 {
		t.Errorf("TextRows() = %d, want 3", got)
	}
	want := pad(" main.c", 30-len("L1 C9 - ")) + "L1 C9 - "
	if got := term.Row(3); got != want {
		t.Errorf("mode line = %q, want %q", got, want)
	}
	if !term.Cell(0, 3).Style.Attributes.Has(core.AttrReverse) {
		t.Error("mode line should be reverse video")
	}

	buf.modified = true
	win.Flags |= dirty.Mode
	d.Update(win, false)
	if got := term.Row(3); !strings.HasSuffix(got, "L1 C9 * ") {
		t.Errorf("modified mode line = %q", got)
	}
}

func TestModeLineWithEngine(t *testing.T) {
	term := backend.NewNullBackend(40, 4)
	d := New(term, testEngine(t), Options{ShowModeLine: true})
	d.Update(NewWindow(newTestBuffer("main.c", "int x;")), false)

	if got := term.Row(2); !strings.HasPrefix(got, " main.c [c] test ") {
		t.Errorf("mode line = %q", got)
	}
}

func TestSetMessage(t *testing.T) {
	term := backend.NewNullBackend(10, 3)
	d := New(term, nil, Options{})
	win := NewWindow(newTestBuffer("x", "abc"))
	win.MoveTo(0, 2)
	d.Update(win, false)

	d.SetMessage("saved the file")
	if got := term.Row(2); got != "saved the " {
		t.Errorf("message row = %q", got)
	}
	if row, col := term.CursorPosition(); row != 0 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", row, col)
	}

	d.SetMessage("saved")
	if got := term.Row(2); got != pad("saved", 10) {
		t.Errorf("shorter message row = %q", got)
	}

	d.SetMessage("")
	if got := term.Row(2); got != pad("", 10) {
		t.Errorf("cleared message row = %q", got)
	}
}

func TestResizeRepaints(t *testing.T) {
	term := backend.NewNullBackend(10, 3)
	d := New(term, nil, Options{})
	win := NewWindow(newTestBuffer("x", "hello world"))
	d.Update(win, false)

	term.Resize(15, 4)
	d.Resize(15, 4)
	win.Invalidate()
	d.Update(win, false)

	if got := term.Row(0); got != pad("hello world", 15) {
		t.Errorf("Row(0) = %q", got)
	}
	if w, h := d.Size(); w != 15 || h != 4 {
		t.Errorf("Size() = %d,%d", w, h)
	}
}

func TestGarbageClearsTerminal(t *testing.T) {
	var out bytes.Buffer
	term := backend.NewANSI(&out, backend.ANSIOptions{Width: 10, Height: 3})
	d := New(term, nil, Options{})
	win := NewWindow(newTestBuffer("x", "a"))
	d.Update(win, false)
	out.Reset()

	d.Garbage()
	d.Update(win, false)
	got := out.String()
	if !strings.Contains(got, "\x1b[H\x1b[J") {
		t.Errorf("output %q has no clear", got)
	}
	if !strings.Contains(got, "a") {
		t.Errorf("output %q does not repaint the text", got)
	}
}

func TestDump(t *testing.T) {
	var out bytes.Buffer
	term := backend.NewANSI(&out, backend.ANSIOptions{Width: 5})
	d := New(term, nil, Options{})

	require.NoError(t, d.Dump(newTestBuffer("x", "ab", "", "abcdefg")))
	want := "\x1b[0mab\x1b[0m\n" +
		"\x1b[0m\x1b[0m\n" +
		"\x1b[0mabcd$\x1b[0m\n"
	assert.Equal(t, want, out.String())
}

func TestDumpHighlighted(t *testing.T) {
	var out bytes.Buffer
	term := backend.NewANSI(&out, backend.ANSIOptions{Width: 20})
	d := New(term, testEngine(t), Options{})

	require.NoError(t, d.Dump(newTestBuffer("main.c", "/* a", "b */")))
	want := "\x1b[0m\x1b[32m/* a\x1b[0m\n" +
		"\x1b[0m\x1b[32mb */\x1b[0m\n"
	assert.Equal(t, want, out.String())
}
