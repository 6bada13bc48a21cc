// Package highlight implements the line-oriented syntax highlighter.
//
// A Registry holds language profiles loaded from INI rule files. HighlightLine
// scans one line of bytes under a profile, starting from the lexical State the
// previous line left behind, and reports styled Spans plus the State at the
// end of the line. The Engine ties a Registry and a colorscheme Table together
// for the renderer.
package highlight

import "fmt"

// StateKind identifies the lexical context a line starts or ends in.
type StateKind uint8

const (
	// KindNormal is plain code.
	KindNormal StateKind = iota
	// KindBlockComment is inside a block comment of a given pair.
	KindBlockComment
	// KindString is inside a string opened by a given delimiter byte.
	KindString
	// KindTripleString is inside a """ string.
	KindTripleString
)

// String returns the kind name.
func (k StateKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBlockComment:
		return "block-comment"
	case KindString:
		return "string"
	case KindTripleString:
		return "triple-string"
	default:
		return "unknown"
	}
}

// State is the lexical state carried from one line to the next.
// States are comparable values; the zero State is Normal.
type State struct {
	kind StateKind
	sub  int
}

// Normal returns the state of plain code.
func Normal() State { return State{} }

// InBlockComment returns the state inside the block comment pair at index
// pair of the profile's pair list.
func InBlockComment(pair int) State {
	return State{kind: KindBlockComment, sub: pair}
}

// InString returns the state inside a string opened by delim.
func InString(delim byte) State {
	return State{kind: KindString, sub: int(delim)}
}

// InTripleString returns the state inside a """ string.
func InTripleString() State {
	return State{kind: KindTripleString, sub: '"'}
}

// Kind returns the state kind.
func (s State) Kind() StateKind { return s.kind }

// Pair returns the block comment pair index, or -1 when the state is not a
// block comment.
func (s State) Pair() int {
	if s.kind != KindBlockComment {
		return -1
	}
	return s.sub
}

// Delim returns the opening delimiter of a string state, or 0.
func (s State) Delim() byte {
	if s.kind != KindString && s.kind != KindTripleString {
		return 0
	}
	return byte(s.sub)
}

// IsNormal reports whether s is the Normal state.
func (s State) IsNormal() bool { return s.kind == KindNormal }

// String returns a debug representation.
func (s State) String() string {
	switch s.kind {
	case KindBlockComment:
		return fmt.Sprintf("block-comment(%d)", s.sub)
	case KindString:
		return fmt.Sprintf("string(%q)", rune(s.sub))
	default:
		return s.kind.String()
	}
}
