package core

import "github.com/mattn/go-runewidth"

// Cell represents a single terminal cell of the virtual screen.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of this cell. Zero marks the trailing
	// half of a wide character.
	Width int

	// Style is the resolved style for this cell.
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// BlankCell returns a blank cell in the given style.
func BlankCell(style Style) Cell {
	return Cell{Rune: ' ', Width: 1, Style: style}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// ContinuationCell returns the placeholder that follows a wide character.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation returns true if this is a continuation cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// IsBlank reports whether the cell can be produced by erasing the line:
// a space with no background and no underline.
func (c Cell) IsBlank() bool {
	return c.Rune == ' ' &&
		c.Style.Background.IsDefault() &&
		!c.Style.Attributes.Has(AttrUnderline) &&
		!c.Style.Attributes.Has(AttrReverse)
}

// RuneWidth returns the number of columns a rune occupies.
// Control characters report 0; callers render them in caret notation.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(r)
}
