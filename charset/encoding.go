// Package charset describes how the bytes of a string map to codepoints.
//
// An Encoding is a tag attached to a byte buffer. It knows how to decode one
// codepoint from the front of a buffer, whether a codepoint is representable,
// and how to append the encoded form of a codepoint to a buffer.
//
// Three encodings are always available:
//   - UTF8: variable width, 1 to 4 bytes per codepoint
//   - ASCII8BIT: raw bytes, each byte is its own codepoint (0-255)
//   - USASCII: 7-bit clean bytes (0-127)
//
// Further single-byte code pages are backed by golang.org/x/text/encoding/charmap
// and can be looked up by name with Resolve.
package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type kind int

const (
	kindUTF8 kind = iota
	kindBinary
	kindASCII
	kindCharmap
)

// Encoding is an encoding tag. Encodings are compared by identity.
type Encoding struct {
	name    string
	aliases []string
	kind    kind
	charmap *charmap.Charmap
}

// Name returns the canonical name, e.g. "UTF-8" or "ASCII-8BIT".
func (e *Encoding) Name() string {
	return e.name
}

// Names returns the canonical name followed by all aliases.
func (e *Encoding) Names() []string {
	names := make([]string, 0, len(e.aliases)+1)
	names = append(names, e.name)
	return append(names, e.aliases...)
}

func (e *Encoding) String() string {
	return e.name
}

// MaxWidth returns the maximum number of bytes used by one codepoint.
func (e *Encoding) MaxWidth() int {
	if e.kind == kindUTF8 {
		return utf8.UTFMax
	}
	return 1
}

// ASCIICompatible reports whether bytes 0x00-0x7F always stand for the ASCII
// characters of the same value. All encodings in this package are.
func (e *Encoding) ASCIICompatible() bool {
	return true
}

// Binary reports whether e is the raw byte encoding.
func (e *Encoding) Binary() bool {
	return e.kind == kindBinary
}

// UTF8 reports whether e is UTF-8.
func (e *Encoding) UTF8() bool {
	return e.kind == kindUTF8
}

// CodePage reports whether e is a single-byte code page where every byte
// value is one character.
func (e *Encoding) CodePage() bool {
	return e.kind == kindCharmap
}

// CanEncode reports whether cp is representable in e.
func (e *Encoding) CanEncode(cp rune) bool {
	switch e.kind {
	case kindUTF8:
		return utf8.ValidRune(cp)
	case kindBinary:
		return cp >= 0 && cp <= 0xFF
	case kindASCII:
		return cp >= 0 && cp <= 0x7F
	case kindCharmap:
		_, ok := e.charmap.EncodeRune(cp)
		return ok
	}
	return false
}

// DecodeRune decodes the first codepoint of p. It returns the codepoint, its
// width in bytes and whether the bytes were a valid sequence for e. An invalid
// byte is returned as a one byte codepoint holding the byte value, so decoding
// always makes progress. An empty p returns (0, 0, false).
func (e *Encoding) DecodeRune(p []byte) (rune, int, bool) {
	if len(p) == 0 {
		return 0, 0, false
	}
	switch e.kind {
	case kindUTF8:
		r, size := utf8.DecodeRune(p)
		if r == utf8.RuneError && size == 1 {
			return rune(p[0]), 1, false
		}
		return r, size, true
	case kindASCII:
		return rune(p[0]), 1, p[0] < utf8.RuneSelf
	case kindCharmap:
		return e.charmap.DecodeByte(p[0]), 1, true
	}
	return rune(p[0]), 1, true
}

// AppendRune appends the encoded form of cp to dst. The second result is false,
// and dst is returned unchanged, when cp is not representable in e.
func (e *Encoding) AppendRune(dst []byte, cp rune) ([]byte, bool) {
	switch e.kind {
	case kindUTF8:
		if !utf8.ValidRune(cp) {
			return dst, false
		}
		return utf8.AppendRune(dst, cp), true
	case kindCharmap:
		b, ok := e.charmap.EncodeRune(cp)
		if !ok {
			return dst, false
		}
		return append(dst, b), true
	}
	if !e.CanEncode(cp) {
		return dst, false
	}
	return append(dst, byte(cp)), true
}
