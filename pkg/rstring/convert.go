package rstring

import (
	"github.com/KromDaniel/rstring/charset"
)

// Encode returns a copy of s transcoded to enc. Every codepoint is checked
// before anything is returned: the first one that enc cannot represent fails
// with *ConversionError, and bytes that are invalid in s's own encoding fail
// with *InvalidByteSequenceError.
func (s *String) Encode(enc *charset.Encoding) (*String, error) {
	out := make([]byte, 0, len(s.b))
	for cp := range charset.Decode(s.b, s.enc) {
		if !cp.Valid {
			return nil, &InvalidByteSequenceError{Offset: cp.Offset, Byte: s.b[cp.Offset], Encoding: s.enc}
		}
		var ok bool
		if out, ok = enc.AppendRune(out, cp.Value); !ok {
			return nil, &ConversionError{Codepoint: cp.Value, From: s.enc, To: enc}
		}
	}
	return newString(out, enc), nil
}

// EncodeTo is like Encode with the target encoding looked up by name.
func (s *String) EncodeTo(name string) (*String, error) {
	enc, err := charset.Resolve(name)
	if err != nil {
		return nil, err
	}
	return s.Encode(enc)
}

// ForceEncoding retags s with enc without looking at or changing the bytes.
// It modifies s and returns it.
func (s *String) ForceEncoding(enc *charset.Encoding) *String {
	s.enc = enc
	return s
}

// ForceEncodingName is like ForceEncoding with the encoding looked up by name.
// On error s is left unchanged.
func (s *String) ForceEncodingName(name string) (*String, error) {
	enc, err := charset.Resolve(name)
	if err != nil {
		return nil, err
	}
	return s.ForceEncoding(enc), nil
}
