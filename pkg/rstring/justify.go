package rstring

import (
	"bytes"

	"github.com/KromDaniel/rstring/charset"
)

type justification int

const (
	justifyLeft justification = iota
	justifyRight
	justifyCenter
)

var space = []byte{' '}

// LeftJustify pads s on the right with spaces to width characters. When s is
// already at least width characters long, a copy of s is returned.
func (s *String) LeftJustify(width int) *String {
	out, _ := s.justify(width, newString(space, charset.USASCII), justifyLeft)
	return out
}

// LeftJustifyWith is like LeftJustify with a custom pad string, repeated and
// truncated as needed. An empty pad fails with *ArgumentError.
func (s *String) LeftJustifyWith(width int, pad any) (*String, error) {
	return s.justifyWith(width, pad, justifyLeft)
}

// RightJustify pads s on the left with spaces to width characters.
func (s *String) RightJustify(width int) *String {
	out, _ := s.justify(width, newString(space, charset.USASCII), justifyRight)
	return out
}

// RightJustifyWith is like RightJustify with a custom pad string.
func (s *String) RightJustifyWith(width int, pad any) (*String, error) {
	return s.justifyWith(width, pad, justifyRight)
}

// Center pads s on both sides with spaces to width characters. An odd amount
// of padding puts the extra character on the right.
func (s *String) Center(width int) *String {
	out, _ := s.justify(width, newString(space, charset.USASCII), justifyCenter)
	return out
}

// CenterWith is like Center with a custom pad string.
func (s *String) CenterWith(width int, pad any) (*String, error) {
	return s.justifyWith(width, pad, justifyCenter)
}

func (s *String) justifyWith(width int, pad any, j justification) (*String, error) {
	p, err := coerceString(pad)
	if err != nil {
		return nil, err
	}
	return s.justify(width, p, j)
}

func (s *String) justify(width int, pad *String, j justification) (*String, error) {
	if len(pad.b) == 0 {
		return nil, &ArgumentError{Msg: "zero width padding"}
	}
	n := s.Len()
	if width <= n {
		return s.Dup(), nil
	}
	pad, err := pad.compatibleWith(s.enc)
	if err != nil {
		return nil, err
	}

	total := width - n
	var left, right int
	switch j {
	case justifyLeft:
		right = total
	case justifyRight:
		left = total
	case justifyCenter:
		left = total / 2
		right = total - left
	}

	offs := charset.Offsets(pad.b, pad.enc)
	out := make([]byte, 0, len(s.b)+total*(len(pad.b)/(len(offs)-1)+1))
	out = appendPad(out, pad.b, offs, left)
	out = append(out, s.b...)
	out = appendPad(out, pad.b, offs, right)
	return newString(out, s.enc), nil
}

// appendPad appends count characters of pad, cycling through it.
func appendPad(dst, pad []byte, offs []int, count int) []byte {
	chars := len(offs) - 1
	if full := count / chars; full > 0 {
		dst = append(dst, bytes.Repeat(pad, full)...)
	}
	return append(dst, pad[:offs[count%chars]]...)
}
