package rstring

import (
	"github.com/KromDaniel/rstring/charset"
	"github.com/KromDaniel/rstring/internal/succ"
)

// Succ returns the successor of s: "a" → "b", "az" → "ba", "zz" → "aaa",
// "a9" → "b0", "Zz" → "AAa". Only ASCII letters and digits take part in the
// carry; other characters are left in place. A string without letters or
// digits has its last codepoint incremented. Single-byte code pages carry
// over byte values rather than the codepoints they stand for.
func (s *String) Succ() *String {
	enc := s.enc
	if enc.CodePage() || !charset.Valid(s.b, enc) {
		// Work on the raw bytes so invalid sequences survive re-encoding.
		enc = charset.ASCII8BIT
	}

	next := succ.Next(charset.Codepoints(s.b, enc), enc.CanEncode)
	out := make([]byte, 0, len(s.b)+enc.MaxWidth())
	for _, cp := range next {
		out, _ = enc.AppendRune(out, cp)
	}
	return newString(out, s.enc)
}

// Next is an alias for Succ.
func (s *String) Next() *String {
	return s.Succ()
}
