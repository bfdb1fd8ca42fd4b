package pattern

import (
	"sort"

	"github.com/KromDaniel/rstring/charset"
)

// Subject is a byte buffer being searched, together with its encoding.
// The decoded view needed by *Regexp is computed on first use and cached,
// so a Subject should be reused across the searches of one operation.
// A Subject is not safe for concurrent use.
type Subject struct {
	b   []byte
	enc *charset.Encoding

	runes []rune
	offs  []int
}

// NewSubject returns a subject over b. b must not be modified while the
// subject is in use.
func NewSubject(b []byte, enc *charset.Encoding) *Subject {
	return &Subject{b: b, enc: enc}
}

// Bytes returns the underlying buffer.
func (s *Subject) Bytes() []byte {
	return s.b
}

// Encoding returns the subject's encoding.
func (s *Subject) Encoding() *charset.Encoding {
	return s.enc
}

// Len returns the length of the subject in bytes.
func (s *Subject) Len() int {
	return len(s.b)
}

// NextBoundary returns the offset of the character boundary following off.
// At or past the end it returns len+1, which is never a valid search start.
func (s *Subject) NextBoundary(off int) int {
	if off >= len(s.b) {
		return len(s.b) + 1
	}
	_, n, _ := s.enc.DecodeRune(s.b[off:])
	return off + n
}

// decoded returns the codepoints of the subject and the byte offset of each,
// followed by len(b).
func (s *Subject) decoded() ([]rune, []int) {
	if s.offs == nil {
		s.runes = charset.Codepoints(s.b, s.enc)
		s.offs = charset.Offsets(s.b, s.enc)
	}
	return s.runes, s.offs
}

// runeIndex converts a byte offset at a character boundary into a codepoint
// index.
func (s *Subject) runeIndex(off int) int {
	_, offs := s.decoded()
	return sort.SearchInts(offs, off)
}
