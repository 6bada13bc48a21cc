package colorscheme

import "github.com/dshills/nanox/internal/renderer/core"

// DefaultName is the scheme name that keeps the built-in styles.
const DefaultName = "default"

// Table holds one resolved style per StyleID.
//
// A Table is written only while a scheme loads and read during redraw;
// it is not safe for concurrent mutation.
type Table struct {
	styles [StyleCount]core.Style
	name   string
}

// New returns a table holding the built-in defaults.
func New() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset restores the built-in defaults and the default name.
func (t *Table) Reset() {
	t.styles = builtinStyles()
	t.name = DefaultName
}

func builtinStyles() [StyleCount]core.Style {
	fg := func(n uint8) core.Style { return core.NewStyle(core.ColorFromIndex(n)) }

	var s [StyleCount]core.Style
	s[StyleNormal] = core.DefaultStyle()
	s[StyleComment] = fg(8)
	s[StyleString] = fg(2)
	s[StyleNumber] = fg(5)
	s[StyleBracket] = fg(6)
	s[StyleOperator] = fg(6)
	s[StyleKeyword] = fg(3).Bold()
	s[StyleType] = fg(6)
	s[StyleFunction] = fg(4)
	s[StyleFlow] = fg(3).Bold()
	s[StylePreproc] = fg(1)
	s[StyleReturn] = fg(9).Bold()
	s[StyleEscape] = fg(14)
	s[StyleControl] = fg(9).Underline()
	s[StyleTernary] = fg(3).Bold()
	s[StyleError] = fg(9)
	s[StyleNotice] = fg(208).Bold()
	s[StyleHeader] = fg(4).Bold()
	s[StyleMdBold] = core.DefaultStyle().Bold()
	s[StyleMdItalic] = fg(6)
	s[StyleMdUnderline] = core.DefaultStyle().Underline()
	return s
}

// Get returns the style for id. Out-of-range IDs resolve to Normal.
func (t *Table) Get(id StyleID) core.Style {
	if !id.Valid() {
		return t.styles[StyleNormal]
	}
	return t.styles[id]
}

// Set replaces the style for id. Out-of-range IDs are ignored.
func (t *Table) Set(id StyleID, s core.Style) {
	if id.Valid() {
		t.styles[id] = s
	}
}

// Normal returns the Normal style.
func (t *Table) Normal() core.Style {
	return t.styles[StyleNormal]
}

// ActiveName returns the name of the loaded scheme.
func (t *Table) ActiveName() string {
	return t.name
}

// PropagateBackground gives every style without a background the Normal
// background. It is applied once after a scheme loads.
func (t *Table) PropagateBackground() {
	bg := t.styles[StyleNormal].Background
	if bg.IsDefault() {
		return
	}
	for id := range t.styles {
		if StyleID(id) == StyleNormal {
			continue
		}
		if t.styles[id].Background.IsDefault() {
			t.styles[id].Background = bg
		}
	}
}
