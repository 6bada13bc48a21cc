package highlight

import "strings"

// Byte classes as the C locale defines them; bytes >= 0x80 belong to none.

func isSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordByte(c byte) bool { return isAlnum(c) || c == '_' }

// isControl matches C0 controls other than tab, LF and CR, plus DEL.
func isControl(c byte) bool {
	return (c < 0x20 && c != '\t' && c != '\n' && c != '\r') || c == 0x7f
}

func isBracket(c byte) bool { return strings.IndexByte("()[]{},;:.", c) >= 0 }

func isOperator(c byte) bool { return strings.IndexByte("+-*/%=&|<>!^~", c) >= 0 }

func hexValue(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func hasPrefixAt(text []byte, pos int, prefix string) bool {
	return len(text)-pos >= len(prefix) && string(text[pos:pos+len(prefix)]) == prefix
}

func hasPrefixFoldAt(text []byte, pos int, prefix string) bool {
	return len(text)-pos >= len(prefix) && strings.EqualFold(string(text[pos:pos+len(prefix)]), prefix)
}

// indexFrom returns the offset of the first occurrence of tok at or after
// from, or -1.
func indexFrom(text []byte, from int, tok string) int {
	if from > len(text) {
		return -1
	}
	i := strings.Index(string(text[from:]), tok)
	if i < 0 {
		return -1
	}
	return from + i
}
