package layout

// DefaultTabWidth is the tab stop interval used when none is configured.
const DefaultTabWidth = 8

// TabExpander provides tab expansion utilities.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// SetTabWidth sets the tab width.
func (t *TabExpander) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	t.tabWidth = width
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.TabStopOffset(col)
}

// TabStopOffset returns how many spaces a tab at the given column expands to.
func (t *TabExpander) TabStopOffset(col int) int {
	m := col % t.tabWidth
	if m < 0 {
		m += t.tabWidth
	}
	return t.tabWidth - m
}

// NextColumn returns the column following code point r drawn at col.
func (t *TabExpander) NextColumn(col int, r rune) int {
	if r == '\t' {
		return t.NextTabStop(col)
	}
	return col + DisplayWidth(r)
}

// Column returns the display column of byte offset off in text, decoding
// text the way the renderer does.
func (t *TabExpander) Column(text []byte, off int) int {
	if off > len(text) {
		off = len(text)
	}
	col := 0
	for i := 0; i < off; {
		r, size := DecodeRune(text, i)
		col = t.NextColumn(col, r)
		i += size
	}
	return col
}

// Width returns the display width of the whole of text.
func (t *TabExpander) Width(text []byte) int {
	return t.Column(text, len(text))
}

// DefaultTabExpander returns a tab expander with the default tab width.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabWidth)
}
