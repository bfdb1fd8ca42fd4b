package rstring

import (
	"bytes"
	"iter"

	"github.com/rivo/uniseg"

	"github.com/KromDaniel/rstring/charset"
)

// Ord returns the first codepoint.
func (s *String) Ord() (rune, error) {
	if len(s.b) == 0 {
		return 0, &EmptyStringError{}
	}
	cp, _, ok := s.enc.DecodeRune(s.b)
	if !ok {
		return 0, &InvalidByteSequenceError{Offset: 0, Byte: s.b[0], Encoding: s.enc}
	}
	return cp, nil
}

// Bytes returns a copy of the raw bytes.
func (s *String) Bytes() []byte {
	return bytes.Clone(s.b)
}

// Codepoints returns the decoded codepoint of every character.
func (s *String) Codepoints() []rune {
	return charset.Codepoints(s.b, s.enc)
}

// Chars returns each character as a one character string in the same
// encoding.
func (s *String) Chars() iter.Seq[*String] {
	return func(yield func(*String) bool) {
		for cp := range charset.Decode(s.b, s.enc) {
			if !yield(s.slice(cp.Offset, cp.Offset+cp.Len)) {
				return
			}
		}
	}
}

// EachChar calls fn with every character in order.
func (s *String) EachChar(fn func(c *String)) {
	for c := range s.Chars() {
		fn(c)
	}
}

// CharSlice returns the characters as a slice.
func (s *String) CharSlice() []*String {
	out := make([]*String, 0, s.Len())
	for c := range s.Chars() {
		out = append(out, c)
	}
	return out
}

// GraphemeClusters splits a UTF-8 string into extended grapheme clusters.
// Strings in other encodings, or with invalid bytes, are split into
// characters.
func (s *String) GraphemeClusters() []*String {
	if !s.enc.UTF8() || !s.ValidEncoding() {
		return s.CharSlice()
	}
	out := make([]*String, 0, len(s.b))
	g := uniseg.NewGraphemes(string(s.b))
	for g.Next() {
		out = append(out, newString(bytes.Clone(g.Bytes()), s.enc))
	}
	return out
}

// At returns the character at index i. A negative i counts from the end,
// -1 being the last character. The result is false when i is out of range.
func (s *String) At(i int) (*String, bool) {
	if i < 0 {
		i += s.Len()
		if i < 0 {
			return nil, false
		}
	}
	off, ok := charset.CharToByteOffset(s.b, s.enc, i)
	if !ok || off >= len(s.b) {
		return nil, false
	}
	_, n, _ := s.enc.DecodeRune(s.b[off:])
	return s.slice(off, off+n), true
}

// Slice returns the characters lo through hi inclusive. Negative bounds count
// from the end. The result is false when lo lies before the start or past the
// end; an hi beyond the end is clamped and an hi before lo yields an empty
// string.
func (s *String) Slice(lo, hi int) (*String, bool) {
	offs := charset.Offsets(s.b, s.enc)
	n := len(offs) - 1

	if lo < 0 {
		lo += n
	}
	if lo < 0 || lo > n {
		return nil, false
	}
	if hi < 0 {
		hi += n
	}
	if hi >= n {
		hi = n - 1
	}
	if hi < lo {
		return newString(nil, s.enc), true
	}
	return s.slice(offs[lo], offs[hi+1]), true
}

// Substr returns up to length characters starting at start. A negative start
// counts from the end. The result is false for a negative length or a start
// outside the string.
func (s *String) Substr(start, length int) (*String, bool) {
	if length < 0 {
		return nil, false
	}
	offs := charset.Offsets(s.b, s.enc)
	n := len(offs) - 1

	if start < 0 {
		start += n
	}
	if start < 0 || start > n {
		return nil, false
	}
	end := n
	if length < n-start {
		end = start + length
	}
	return s.slice(offs[start], offs[end]), true
}
