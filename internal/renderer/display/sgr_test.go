package display

import (
	"bytes"
	"testing"

	"github.com/dshills/nanox/internal/renderer/backend"
	"github.com/dshills/nanox/internal/renderer/core"
)

func TestColorParams(t *testing.T) {
	tests := []struct {
		c    core.Color
		fg   bool
		want string
	}{
		{core.ColorDefault, true, "39"},
		{core.ColorDefault, false, "49"},
		{core.ColorFromIndex(3), true, "33"},
		{core.ColorFromIndex(3), false, "43"},
		{core.ColorFromIndex(9), true, "91"},
		{core.ColorFromIndex(15), false, "107"},
		{core.ColorFromIndex(200), true, "38;5;200"},
		{core.ColorFromIndex(16), false, "48;5;16"},
		{core.ColorFromRGB(1, 2, 3), true, "38;2;1;2;3"},
		{core.ColorFromRGB(255, 0, 128), false, "48;2;255;0;128"},
	}
	for _, tt := range tests {
		if got := string(colorParams(nil, tt.c, tt.fg)); got != tt.want {
			t.Errorf("colorParams(%v, fg=%v) = %q, want %q", tt.c, tt.fg, got, tt.want)
		}
	}
}

func TestPenApply(t *testing.T) {
	var out bytes.Buffer
	term := backend.NewANSI(&out, backend.ANSIOptions{})
	p := pen{trueColor: true}
	p.reset()

	red := core.ColorFromIndex(1)
	steps := []struct {
		st   core.Style
		want string
	}{
		{core.DefaultStyle(), ""},
		{core.NewStyle(red).Bold(), "\x1b[1;31m"},
		{core.NewStyle(red).Bold(), ""},
		{core.NewStyle(red).Bold().Underline(), "\x1b[4m"},
		{core.NewStyle(red).Underline(), "\x1b[22m"},
		{core.DefaultStyle(), "\x1b[0m"},
		{core.NewStyle(red), "\x1b[31m"},
		{core.DefaultStyle().WithBackground(core.ColorFromRGB(1, 2, 3)).Reverse(), "\x1b[7;39;48;2;1;2;3m"},
	}
	for i, s := range steps {
		out.Reset()
		p.apply(term, s.st)
		if err := term.Flush(); err != nil {
			t.Fatal(err)
		}
		if got := out.String(); got != s.want {
			t.Errorf("step %d: apply(%+v) wrote %q, want %q", i, s.st, got, s.want)
		}
	}
}

func TestPenDownsamples(t *testing.T) {
	p := pen{}
	rgb := core.ColorFromRGB(0x87, 0xaf, 0xd7)
	if got := p.resolve(rgb); got != core.ColorFromIndex(110) {
		t.Errorf("resolve(%v) = %v, want index 110", rgb, got)
	}
	p.trueColor = true
	if got := p.resolve(rgb); got != rgb {
		t.Errorf("truecolor resolve(%v) = %v", rgb, got)
	}
}

func TestPaintedWidth(t *testing.T) {
	bg := core.ColorFromIndex(4)
	blank := core.BlankCell(core.DefaultStyle())
	onBg := core.BlankCell(core.DefaultStyle().WithBackground(bg))
	letter := core.NewStyledCell('x', core.DefaultStyle())
	under := core.BlankCell(core.DefaultStyle().Underline())

	tests := []struct {
		name  string
		cells []core.Cell
		bg    core.Color
		want  int
	}{
		{"all blank", []core.Cell{blank, blank}, core.ColorDefault, 0},
		{"trailing blanks", []core.Cell{letter, blank, blank}, core.ColorDefault, 1},
		{"background counts", []core.Cell{letter, onBg, blank}, core.ColorDefault, 2},
		{"erase background", []core.Cell{letter, onBg, onBg}, bg, 1},
		{"underline counts", []core.Cell{blank, under, blank}, core.ColorDefault, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paintedWidth(tt.cells, tt.bg); got != tt.want {
				t.Errorf("paintedWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSameOnScreen(t *testing.T) {
	blue := core.ColorFromIndex(4)
	tests := []struct {
		name string
		a, b core.Cell
		want bool
	}{
		{"identical", core.NewStyledCell('a', core.DefaultStyle()), core.NewStyledCell('a', core.DefaultStyle()), true},
		{"space ignores foreground", core.BlankCell(core.NewStyle(blue)), core.BlankCell(core.DefaultStyle()), true},
		{"space background", core.BlankCell(core.DefaultStyle().WithBackground(blue)), core.BlankCell(core.DefaultStyle()), false},
		{"reverse space", core.BlankCell(core.NewStyle(blue).Reverse()), core.BlankCell(core.DefaultStyle().Reverse()), false},
		{"letter foreground", core.NewStyledCell('a', core.NewStyle(blue)), core.NewStyledCell('a', core.DefaultStyle()), false},
		{"unknown", unknownCell, core.EmptyCell(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameOnScreen(tt.a, tt.b); got != tt.want {
				t.Errorf("sameOnScreen() = %v, want %v", got, tt.want)
			}
		})
	}
}
