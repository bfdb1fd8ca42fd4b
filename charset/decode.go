package charset

import (
	"iter"
	"sort"
	"unicode/utf8"
)

// Codepoint is one decoded character together with its position in the
// source buffer.
type Codepoint struct {
	Value  rune
	Offset int  // byte offset of the first byte
	Len    int  // width in bytes
	Valid  bool // false for a byte that is not a valid sequence in the encoding
}

// Decode returns the codepoints of b under e, in order. The sequence is lazy
// and can be ranged over any number of times.
func Decode(b []byte, e *Encoding) iter.Seq[Codepoint] {
	return func(yield func(Codepoint) bool) {
		for off := 0; off < len(b); {
			r, n, ok := e.DecodeRune(b[off:])
			if !yield(Codepoint{Value: r, Offset: off, Len: n, Valid: ok}) {
				return
			}
			off += n
		}
	}
}

// Count returns the number of characters in b.
func Count(b []byte, e *Encoding) int {
	if e.kind == kindUTF8 {
		// Invalid bytes count as one character each, as in Decode.
		return utf8.RuneCount(b)
	}
	return len(b)
}

// Codepoints returns the decoded codepoint values of b.
func Codepoints(b []byte, e *Encoding) []rune {
	cps := make([]rune, 0, Count(b, e))
	for cp := range Decode(b, e) {
		cps = append(cps, cp.Value)
	}
	return cps
}

// Offsets returns the byte offset of every character of b followed by len(b),
// so character i spans offsets[i]:offsets[i+1].
func Offsets(b []byte, e *Encoding) []int {
	if e.kind != kindUTF8 {
		offs := make([]int, len(b)+1)
		for i := range offs {
			offs[i] = i
		}
		return offs
	}
	offs := make([]int, 0, len(b)+1)
	for cp := range Decode(b, e) {
		offs = append(offs, cp.Offset)
	}
	return append(offs, len(b))
}

// ByteToCharIndex converts a byte offset into the index of the character that
// contains it. An offset at or past the end maps to the character count.
func ByteToCharIndex(b []byte, e *Encoding, off int) int {
	if off >= len(b) {
		return Count(b, e)
	}
	if e.kind != kindUTF8 {
		return off
	}
	offs := Offsets(b, e)
	i := sort.SearchInts(offs, off)
	if i < len(offs) && offs[i] == off {
		return i
	}
	return i - 1
}

// CharToByteOffset converts a character index into the byte offset where that
// character starts. Index Count(b, e) maps to len(b). The result is false when
// idx is out of range.
func CharToByteOffset(b []byte, e *Encoding, idx int) (int, bool) {
	if idx < 0 {
		return 0, false
	}
	if e.kind != kindUTF8 {
		return idx, idx <= len(b)
	}
	n := 0
	for cp := range Decode(b, e) {
		if n == idx {
			return cp.Offset, true
		}
		n++
	}
	return len(b), n == idx
}

// Valid reports whether every byte sequence of b is valid under e.
func Valid(b []byte, e *Encoding) bool {
	switch e.kind {
	case kindUTF8:
		return utf8.Valid(b)
	case kindASCII:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return false
			}
		}
	}
	return true
}

// FirstInvalid returns the offset of the first invalid byte of b under e, or
// -1 when b is valid.
func FirstInvalid(b []byte, e *Encoding) int {
	for cp := range Decode(b, e) {
		if !cp.Valid {
			return cp.Offset
		}
	}
	return -1
}
