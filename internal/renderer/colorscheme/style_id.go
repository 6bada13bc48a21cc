// Package colorscheme maps highlight style IDs to concrete terminal styles.
//
// A Table starts from built-in defaults and may be overridden by a scheme
// file found by name on the search path, or by one of chroma's bundled
// styles when no file of that name exists.
package colorscheme

// StyleID is a highlight category assigned to a span of text.
type StyleID int

// Highlight categories.
const (
	StyleNormal StyleID = iota
	StyleComment
	StyleString
	StyleNumber
	StyleBracket
	StyleOperator
	StyleKeyword
	StyleType
	StyleFunction
	StyleFlow
	StylePreproc
	StyleReturn
	StyleEscape
	StyleControl
	StyleTernary
	StyleError
	StyleNotice
	StyleHeader
	StyleMdBold
	StyleMdItalic
	StyleMdUnderline

	// StyleCount is the number of categories.
	StyleCount
)

// styleNames are the keys used in scheme files.
var styleNames = [StyleCount]string{
	StyleNormal:      "normal",
	StyleComment:     "comment",
	StyleString:      "string",
	StyleNumber:      "number",
	StyleBracket:     "bracket",
	StyleOperator:    "operator",
	StyleKeyword:     "keyword",
	StyleType:        "type",
	StyleFunction:    "function",
	StyleFlow:        "flow",
	StylePreproc:     "preproc",
	StyleReturn:      "return",
	StyleEscape:      "escape",
	StyleControl:     "control",
	StyleTernary:     "ternary",
	StyleError:       "error",
	StyleNotice:      "notice",
	StyleHeader:      "header",
	StyleMdBold:      "md_bold",
	StyleMdItalic:    "md_italic",
	StyleMdUnderline: "md_underline",
}

// String returns the scheme-file key of the style.
func (id StyleID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return styleNames[id]
}

// Valid reports whether id names a real category.
func (id StyleID) Valid() bool {
	return id >= 0 && id < StyleCount
}

// StyleIDFromName looks up a scheme-file key. Matching is case-sensitive.
func StyleIDFromName(name string) (StyleID, bool) {
	for id, n := range styleNames {
		if n == name {
			return StyleID(id), true
		}
	}
	return StyleNormal, false
}
