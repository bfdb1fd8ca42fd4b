package rstring

import (
	"bytes"
)

// Compare returns -1, 0 or +1 comparing the bytes of s and other. Comparing
// with nil is an error.
func (s *String) Compare(other *String) (int, error) {
	if other == nil {
		return 0, &ArgumentError{Msg: "comparison of String with nil failed"}
	}
	return bytes.Compare(s.b, other.b), nil
}

// Equal reports whether s and other hold the same bytes in compatible
// encodings: the same encoding, or content that is ASCII only.
func (s *String) Equal(other *String) bool {
	if other == nil || !bytes.Equal(s.b, other.b) {
		return false
	}
	return s.enc == other.enc || asciiOnly(s.b)
}

// Between reports whether min <= s <= max.
func (s *String) Between(min, max *String) (bool, error) {
	lo, err := s.Compare(min)
	if err != nil {
		return false, err
	}
	hi, err := s.Compare(max)
	if err != nil {
		return false, err
	}
	return lo >= 0 && hi <= 0, nil
}

// Clamp returns min when s < min, max when s > max and s otherwise.
func (s *String) Clamp(min, max *String) (*String, error) {
	if min == nil {
		return nil, &ArgumentError{Msg: "comparison of String with nil failed"}
	}
	order, err := min.Compare(max)
	if err != nil {
		return nil, err
	}
	if order > 0 {
		return nil, &ArgumentError{Msg: "min argument must be smaller than max argument"}
	}
	if c, _ := s.Compare(min); c < 0 {
		return min, nil
	}
	if c, _ := s.Compare(max); c > 0 {
		return max, nil
	}
	return s, nil
}
