package highlight

import (
	"strings"

	"github.com/dshills/nanox/internal/renderer/colorscheme"
)

// MaxWordLen is the length at which identifiers stop being looked up as
// keywords.
const MaxWordLen = 64

// CommentPair is a block comment opener and closer.
type CommentPair struct {
	Start string
	End   string
}

// Profile describes how one language is highlighted.
type Profile struct {
	Name       string
	Extensions []string

	LineComments  []string
	BlockComments []CommentPair
	// StringDelims holds the bytes that open and close a string.
	StringDelims string

	Keywords       []string
	Types          []string
	Flow           []string
	Preproc        []string
	ReturnKeywords []string

	TripleQuotes bool
	Numbers      bool
	Brackets     bool

	compiled bool
	words    map[string]colorscheme.StyleID
	markdown bool
	html     bool
}

// NewProfile returns a profile with the default flags: numbers and
// brackets highlighted, triple quotes off.
func NewProfile(name string) *Profile {
	return &Profile{
		Name:     name,
		Numbers:  true,
		Brackets: true,
	}
}

// Compile builds the keyword table. It must be called again after the
// keyword lists change; HighlightLine compiles on first use otherwise.
//
// When a word appears in several lists the first of return, flow, preproc,
// type and keyword wins.
func (p *Profile) Compile() {
	words := make(map[string]colorscheme.StyleID)
	lists := []struct {
		words []string
		style colorscheme.StyleID
	}{
		{p.ReturnKeywords, colorscheme.StyleReturn},
		{p.Flow, colorscheme.StyleFlow},
		{p.Preproc, colorscheme.StylePreproc},
		{p.Types, colorscheme.StyleType},
		{p.Keywords, colorscheme.StyleKeyword},
	}
	for _, l := range lists {
		for _, w := range l.words {
			if w == "" || len(w) >= MaxWordLen {
				continue
			}
			if _, ok := words[w]; !ok {
				words[w] = l.style
			}
		}
	}
	p.words = words
	p.markdown = strings.EqualFold(p.Name, "markdown")
	p.html = strings.EqualFold(p.Name, "html")
	p.compiled = true
}

func (p *Profile) ensureCompiled() {
	if !p.compiled {
		p.Compile()
	}
}

// Lookup returns the keyword style of word.
func (p *Profile) Lookup(word string) (colorscheme.StyleID, bool) {
	p.ensureCompiled()
	if len(word) >= MaxWordLen {
		return colorscheme.StyleNormal, false
	}
	s, ok := p.words[word]
	return s, ok
}

// IsMarkdown reports whether header and emphasis rules apply.
func (p *Profile) IsMarkdown() bool {
	p.ensureCompiled()
	return p.markdown
}

// IsHTML reports whether inline <u>, <b> and <i> tags are styled.
func (p *Profile) IsHTML() bool {
	p.ensureCompiled()
	return p.html
}

// MatchesExtension reports whether ext (without the dot) is one of the
// profile's extensions, case-insensitively.
func (p *Profile) MatchesExtension(ext string) bool {
	for _, e := range p.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
