package loader

import (
	"bufio"
	"bytes"
	"strings"
)

// INIEventKind distinguishes the entries produced by ScanINI.
type INIEventKind int

const (
	// INISection is a "[name]" header line.
	INISection INIEventKind = iota
	// INIKeyValue is a "key = value" line.
	INIKeyValue
)

// INIEvent is one meaningful line of an INI file.
type INIEvent struct {
	Kind    INIEventKind
	Line    int    // 1-based line number
	Section string // section name for INISection, current section for INIKeyValue
	Key     string
	Value   string
}

// ScanINI walks the lines of an INI document and calls fn for every section
// header and key/value pair, in file order.
//
// The dialect is the one used by rule and colorscheme files:
// lines are trimmed; blank lines and lines starting with ';' or '#' are
// comments; a header without a closing ']' is skipped; the key/value split
// happens at the first '='; lines without '=' are skipped. Values are taken
// verbatim after trimming, so '#' or "//" inside a value is data, not an
// inline comment. Malformed lines never stop the scan.
func ScanINI(data []byte, fn func(INIEvent)) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 512), 1<<20)

	section := ""
	lineNo := 0
	for sc.Scan() {
		lineNo++
		p := strings.TrimSpace(sc.Text())
		if p == "" || p[0] == ';' || p[0] == '#' {
			continue
		}

		if p[0] == '[' {
			end := strings.IndexByte(p, ']')
			if end < 0 {
				continue
			}
			section = p[1:end]
			fn(INIEvent{Kind: INISection, Line: lineNo, Section: section})
			continue
		}

		eq := strings.IndexByte(p, '=')
		if eq < 0 {
			continue
		}
		fn(INIEvent{
			Kind:    INIKeyValue,
			Line:    lineNo,
			Section: section,
			Key:     strings.TrimSpace(p[:eq]),
			Value:   strings.TrimSpace(p[eq+1:]),
		})
	}
}

// SplitList splits a comma-separated list, trimming each item and dropping
// empty ones.
func SplitList(val string) []string {
	var out []string
	for _, tok := range strings.Split(val, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ParseBool reports whether val spells true, case-insensitively.
func ParseBool(val string) bool {
	return strings.EqualFold(val, "true")
}
