package rstring

import (
	"fmt"

	"github.com/KromDaniel/rstring/charset"
)

// EmptyStringError is returned by Ord for a zero-length string.
type EmptyStringError struct{}

func (EmptyStringError) Error() string {
	return "empty string"
}

// ConversionError is returned by Encode when a codepoint has no
// representation in the target encoding.
type ConversionError struct {
	Codepoint rune
	From      *charset.Encoding
	To        *charset.Encoding
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("U+%04X from %s to %s", e.Codepoint, e.From, e.To)
}

// InvalidByteSequenceError is returned when bytes are not valid in the
// encoding they are tagged with.
type InvalidByteSequenceError struct {
	Offset   int
	Byte     byte
	Encoding *charset.Encoding
}

func (e *InvalidByteSequenceError) Error() string {
	return fmt.Sprintf("invalid byte sequence in %s: \\x%02X at offset %d", e.Encoding, e.Byte, e.Offset)
}

// TypeMismatchError is returned when an argument has a kind the operation
// cannot accept.
type TypeMismatchError struct {
	Got      string // Go type of the argument
	Expected string // what the operation accepts
	Implicit bool   // the argument was to be converted, not dispatched on
}

func (e *TypeMismatchError) Error() string {
	if e.Implicit {
		return fmt.Sprintf("no implicit conversion of %s into %s", e.Got, e.Expected)
	}
	return fmt.Sprintf("wrong argument type %s (expected %s)", e.Got, e.Expected)
}

// ArgumentError is returned for malformed arguments such as an invalid radix
// or an empty padding string.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
