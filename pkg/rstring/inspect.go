package rstring

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/KromDaniel/rstring/charset"
)

var inspectEscapes = map[rune]string{
	'"':  `\"`,
	'\\': `\\`,
	'\n': `\n`,
	'\t': `\t`,
	'\r': `\r`,
	'\f': `\f`,
	'\v': `\v`,
	'\b': `\b`,
	'\a': `\a`,
	0x1B: `\e`,
}

// Inspect returns s as a double-quoted literal with special characters
// escaped. Printable characters of UTF-8 and code page strings are kept as
// they are; other codepoints become \uXXXX or \u{XXXXX}, and bytes that are
// not printable characters become \xXX.
func (s *String) Inspect() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for cp := range charset.Decode(s.b, s.enc) {
		if !cp.Valid {
			for _, c := range s.b[cp.Offset : cp.Offset+cp.Len] {
				fmt.Fprintf(&sb, `\x%02X`, c)
			}
			continue
		}
		r := cp.Value
		if esc, ok := inspectEscapes[r]; ok {
			sb.WriteString(esc)
			continue
		}
		if r == '#' && cp.Offset+1 < len(s.b) {
			// Avoid a literal that would interpolate.
			if next := s.b[cp.Offset+1]; next == '{' || next == '$' || next == '@' {
				sb.WriteString(`\#`)
				continue
			}
		}
		switch {
		case r < 0x80 && unicode.IsPrint(r):
			sb.WriteRune(r)
		case s.enc.Binary() || (r < 0x80 && !s.enc.UTF8()):
			fmt.Fprintf(&sb, `\x%02X`, s.b[cp.Offset])
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r > 0xFFFF:
			fmt.Fprintf(&sb, `\u{%X}`, r)
		default:
			fmt.Fprintf(&sb, `\u%04X`, r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
