package highlight

// hexColorLen returns 7 for #RRGGBB, 4 for #RGB, or 0 when pos does not
// start a hex color literal.
func hexColorLen(text []byte, pos int) int {
	n := len(text)
	if pos >= n || text[pos] != '#' {
		return 0
	}

	if pos+7 <= n && allHex(text[pos+1:pos+7]) {
		if pos+7 == n {
			return 7
		}
		next := text[pos+7]
		if isHexDigit(next) {
			return 7
		}
		if isWordByte(next) {
			return 0
		}
		return 7
	}

	if pos+4 <= n && allHex(text[pos+1:pos+4]) {
		if pos+4 == n {
			return 4
		}
		next := text[pos+4]
		if isHexDigit(next) || isWordByte(next) {
			return 0
		}
		return 4
	}
	return 0
}

func allHex(b []byte) bool {
	for _, c := range b {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

// funcColorLen returns the length of name( ... ) at pos with balanced
// parentheses, trying each opener in order, or 0.
func funcColorLen(text []byte, pos int, openers ...string) int {
	for _, op := range openers {
		if !hasPrefixAt(text, pos, op) {
			continue
		}
		depth := 1
		i := pos + len(op)
		for i < len(text) && depth > 0 {
			switch text[i] {
			case '(':
				depth++
			case ')':
				depth--
			}
			i++
		}
		if depth == 0 {
			return i - pos
		}
		return 0
	}
	return 0
}

func rgbColorLen(text []byte, pos int) int {
	return funcColorLen(text, pos, "rgb(", "rgba(")
}

func hslColorLen(text []byte, pos int) int {
	return funcColorLen(text, pos, "hsl(", "hsla(")
}

// colorLiteralLen returns the length of any color literal at pos, or 0.
func colorLiteralLen(text []byte, pos int) int {
	if n := hexColorLen(text, pos); n > 0 {
		return n
	}
	if n := rgbColorLen(text, pos); n > 0 {
		return n
	}
	return hslColorLen(text, pos)
}
