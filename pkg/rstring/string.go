// Package rstring implements an encoding-aware string value.
//
// A *String is a byte buffer tagged with a *charset.Encoding. Indexing,
// slicing and lengths count characters, not bytes. Every operation returns a
// new, independently owned String; only ForceEncoding changes its receiver.
//
//	s := rstring.MustNew("😉”ăa")
//	c, _ := s.At(-1)           // "a"
//	sub, _ := s.Slice(1, -1)   // "”ăa"
//	b, err := s.Encode(charset.ASCII8BIT)
//	// err: U+1F609 from UTF-8 to ASCII-8BIT
//
// A *String is not safe for concurrent use when ForceEncoding may be called.
package rstring

import (
	"bytes"

	"github.com/KromDaniel/rstring/charset"
	"github.com/KromDaniel/rstring/pattern"
)

// String is a byte buffer tagged with an encoding.
type String struct {
	b   []byte
	enc *charset.Encoding
}

// StringValuer is implemented by types that are backed by a *String, such as
// wrappers that add fields of their own. Any argument documented as "a
// string" also accepts a StringValuer.
type StringValuer interface {
	StringValue() *String
}

// New returns a UTF-8 string holding a copy of s. It fails with
// *InvalidByteSequenceError when s is not valid UTF-8.
func New(s string) (*String, error) {
	return FromBytes([]byte(s), charset.UTF8)
}

// MustNew is like New but panics on invalid UTF-8.
func MustNew(s string) *String {
	str, err := New(s)
	if err != nil {
		panic(err)
	}
	return str
}

// FromBytes returns a string holding a copy of b tagged with enc, after
// checking that b is valid in enc.
func FromBytes(b []byte, enc *charset.Encoding) (*String, error) {
	if off := charset.FirstInvalid(b, enc); off >= 0 {
		return nil, &InvalidByteSequenceError{Offset: off, Byte: b[off], Encoding: enc}
	}
	return newString(bytes.Clone(b), enc), nil
}

// NewWithEncoding is like FromBytes with the encoding looked up by name.
func NewWithEncoding(s, encName string) (*String, error) {
	enc, err := charset.Resolve(encName)
	if err != nil {
		return nil, err
	}
	return FromBytes([]byte(s), enc)
}

// Binary returns an ASCII-8BIT string holding a copy of b.
func Binary(b []byte) *String {
	return newString(bytes.Clone(b), charset.ASCII8BIT)
}

// newString takes ownership of b.
func newString(b []byte, enc *charset.Encoding) *String {
	if b == nil {
		b = []byte{}
	}
	return &String{b: b, enc: enc}
}

// StringValue implements StringValuer.
func (s *String) StringValue() *String {
	return s
}

// String returns the raw bytes as a Go string.
func (s *String) String() string {
	return string(s.b)
}

// Encoding returns the encoding tag.
func (s *String) Encoding() *charset.Encoding {
	return s.enc
}

// Len returns the number of characters.
func (s *String) Len() int {
	return charset.Count(s.b, s.enc)
}

// ByteLen returns the number of bytes.
func (s *String) ByteLen() int {
	return len(s.b)
}

// Empty reports whether the string has no bytes.
func (s *String) Empty() bool {
	return len(s.b) == 0
}

// ValidEncoding reports whether the bytes are valid in the string's encoding.
func (s *String) ValidEncoding() bool {
	return charset.Valid(s.b, s.enc)
}

// ASCIIOnly reports whether every byte is below 0x80.
func (s *String) ASCIIOnly() bool {
	return asciiOnly(s.b)
}

// Dup returns a copy with the same content and encoding.
func (s *String) Dup() *String {
	return newString(bytes.Clone(s.b), s.enc)
}

// slice returns a new string holding a copy of s.b[lo:hi].
func (s *String) slice(lo, hi int) *String {
	return newString(bytes.Clone(s.b[lo:hi]), s.enc)
}

// Concat returns s followed by others. Arguments in another encoding are
// transcoded into s's encoding unless they are ASCII only.
func (s *String) Concat(others ...any) (*String, error) {
	out := bytes.Clone(s.b)
	for _, o := range others {
		str, err := coerceString(o)
		if err != nil {
			return nil, err
		}
		if str, err = str.compatibleWith(s.enc); err != nil {
			return nil, err
		}
		out = append(out, str.b...)
	}
	return newString(out, s.enc), nil
}

// compatibleWith returns s in a form whose bytes can be appended to a string
// tagged enc.
func (s *String) compatibleWith(enc *charset.Encoding) (*String, error) {
	if s.enc == enc || asciiOnly(s.b) {
		return s, nil
	}
	return s.Encode(enc)
}

func asciiOnly(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// coerceString converts a string-like argument into a *String.
func coerceString(v any) (*String, error) {
	switch v := v.(type) {
	case StringValuer:
		if s := v.StringValue(); s != nil {
			return s, nil
		}
	case string:
		return newString([]byte(v), charset.UTF8), nil
	case []byte:
		return newString(bytes.Clone(v), charset.UTF8), nil
	}
	return nil, &TypeMismatchError{Got: typeName(v), Expected: "String", Implicit: true}
}

// coercePattern converts a separator or search argument into a pattern.
// Strings become literals; anything else must already be a pattern.
func coercePattern(v any) (pattern.Pattern, error) {
	switch p := v.(type) {
	case *pattern.Regexp:
		if p == nil {
			return nil, &TypeMismatchError{Got: "nil", Expected: "Regexp"}
		}
	case *pattern.RE2:
		if p == nil {
			return nil, &TypeMismatchError{Got: "nil", Expected: "Regexp"}
		}
	}
	if p, ok := v.(pattern.Pattern); ok && p != nil {
		return p, nil
	}
	if s, err := coerceString(v); err == nil {
		return pattern.Literal(s.b), nil
	}
	return nil, &TypeMismatchError{Got: typeName(v), Expected: "Regexp"}
}
