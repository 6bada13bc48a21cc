package colorscheme

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/nanox/internal/renderer/core"
)

// chromaTokens maps each category onto the chroma token whose style it
// borrows. Normal is handled separately from the style background.
var chromaTokens = map[StyleID]chroma.TokenType{
	StyleComment:     chroma.Comment,
	StyleString:      chroma.LiteralString,
	StyleNumber:      chroma.LiteralNumber,
	StyleBracket:     chroma.Punctuation,
	StyleOperator:    chroma.Operator,
	StyleKeyword:     chroma.Keyword,
	StyleType:        chroma.KeywordType,
	StyleFunction:    chroma.NameFunction,
	StyleFlow:        chroma.KeywordReserved,
	StylePreproc:     chroma.CommentPreproc,
	StyleReturn:      chroma.KeywordReserved,
	StyleEscape:      chroma.LiteralStringEscape,
	StyleError:       chroma.Error,
	StyleNotice:      chroma.GenericSubheading,
	StyleHeader:      chroma.GenericHeading,
	StyleMdBold:      chroma.GenericStrong,
	StyleMdItalic:    chroma.GenericEmph,
	StyleMdUnderline: chroma.GenericUnderline,
}

// LookupChroma returns a bundled chroma style by exact name.
func LookupChroma(name string) (*chroma.Style, bool) {
	s, ok := styles.Registry[name]
	return s, ok
}

// ApplyChroma overrides the table with colors from a chroma style.
// Categories chroma has no opinion on keep their current style; the
// background of the style becomes Normal's background and is propagated.
func (t *Table) ApplyChroma(style *chroma.Style) {
	bg := style.Get(chroma.Background)
	text := style.Get(chroma.Text)

	normal := t.styles[StyleNormal]
	if text.Colour.IsSet() {
		normal.Foreground = chromaColor(text.Colour)
	} else if bg.Colour.IsSet() {
		normal.Foreground = chromaColor(bg.Colour)
	}
	if bg.Background.IsSet() {
		normal.Background = chromaColor(bg.Background)
	}
	t.styles[StyleNormal] = normal

	for id, tt := range chromaTokens {
		entry := style.Get(tt)
		st := t.styles[id]
		if entry.Colour.IsSet() {
			st.Foreground = chromaColor(entry.Colour)
		}
		if entry.Bold == chroma.Yes {
			st.Attributes |= core.AttrBold
		}
		if entry.Underline == chroma.Yes {
			st.Attributes |= core.AttrUnderline
		}
		t.styles[id] = st
	}

	t.PropagateBackground()
}

func chromaColor(c chroma.Colour) core.Color {
	return core.ColorFromRGB(c.Red(), c.Green(), c.Blue())
}
