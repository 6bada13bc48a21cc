package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/nanox/internal/renderer/core"
)

func newSimTCell(t *testing.T, w, h int) (*TCell, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	b := NewTCellWithScreen(sim)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(b.Shutdown)
	return b, sim
}

func TestTCellInterpretsOutput(t *testing.T) {
	b, sim := newSimTCell(t, 8, 2)

	b.MoveCursor(1, 1)
	b.SetAttribute("1;38;2;10;20;30")
	b.WriteRaw([]byte("ok"))
	if err := b.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	mainc, _, style, _ := sim.GetContent(1, 1) //nolint:staticcheck // GetContent is the correct API
	if mainc != 'o' {
		t.Errorf("rune = %q, want 'o'", mainc)
	}
	got := convertTcellStyle(style)
	if !got.IsBold() || got.Foreground != core.ColorFromRGB(10, 20, 30) {
		t.Errorf("style = %+v, want bold rgb(10,20,30)", got)
	}
}

func TestTCellEraseEOL(t *testing.T) {
	b, sim := newSimTCell(t, 6, 1)

	b.WriteRaw([]byte("abcdef"))
	b.MoveCursor(0, 3)
	b.SetAttribute("0;41")
	b.EraseEOL()
	_ = b.Flush()

	for x, want := range "abc   " {
		mainc, _, _, _ := sim.GetContent(x, 0) //nolint:staticcheck // GetContent is the correct API
		if mainc != want {
			t.Errorf("cell %d = %q, want %q", x, mainc, want)
		}
	}
	_, _, style, _ := sim.GetContent(5, 0) //nolint:staticcheck // GetContent is the correct API
	if convertTcellStyle(style).Background != core.ColorRed {
		t.Error("erased cells should take the current background")
	}
}

func TestConvertStyleRoundTrip(t *testing.T) {
	styles := []core.Style{
		core.DefaultStyle(),
		core.NewStyle(core.ColorFromIndex(3)).Bold(),
		core.DefaultStyle().WithBackground(core.ColorFromRGB(1, 2, 3)),
		core.NewStyle(core.ColorFromIndex(200)).Reverse(),
	}
	for _, s := range styles {
		if got := convertTcellStyle(convertStyle(s)); got != s {
			t.Errorf("round trip %+v -> %+v", s, got)
		}
	}
}

func TestConvertKeyRoundTrip(t *testing.T) {
	for k := KeyRune; k <= KeyCtrlR; k++ {
		if got := convertKey(convertToTcellKey(k)); got != k {
			t.Errorf("key %d round-tripped to %d", k, got)
		}
	}
	if convertMod(convertToTcellMod(ModCtrl|ModAlt)) != ModCtrl|ModAlt {
		t.Error("modifier round trip failed")
	}
}
