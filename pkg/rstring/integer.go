package rstring

import (
	"fmt"
	"math"
	"math/big"
)

// ToI parses a leading base 10 integer. See ToBigInt.
func (s *String) ToI() int64 {
	n, _ := s.ToIBase(10)
	return n
}

// ToIBase is like ToBigInt but saturates the result to the int64 range.
func (s *String) ToIBase(base int) (int64, error) {
	n, err := s.ToBigInt(base)
	if err != nil {
		return 0, err
	}
	if n.IsInt64() {
		return n.Int64(), nil
	}
	if n.Sign() < 0 {
		return math.MinInt64, nil
	}
	return math.MaxInt64, nil
}

// ToBigInt parses the longest integer prefix of s in the given base (2 to 36).
//
// Leading whitespace is skipped, then an optional sign, then an optional
// radix prefix matching the base (0b, 0o, 0d or 0x, any case). Digits are
// 0-9 followed by the letters a-z in either case; single underscores may
// separate digits. Parsing stops at the first other byte. A string without
// leading digits is 0. The only error is an *ArgumentError for the base.
func (s *String) ToBigInt(base int) (*big.Int, error) {
	if base < 2 || base > 36 {
		return nil, &ArgumentError{Msg: fmt.Sprintf("invalid radix %d", base)}
	}

	b := s.b
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}

	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	if i+1 < len(b) && b[i] == '0' && radixPrefix(b[i+1]) == base {
		i += 2
	}

	n := new(big.Int)
	bigBase := big.NewInt(int64(base))
	digits := 0
	for i < len(b) {
		c := b[i]
		if c == '_' {
			// Only between two digits.
			if digits == 0 || i+1 >= len(b) || digitValue(b[i+1]) >= base {
				break
			}
			i++
			continue
		}
		d := digitValue(c)
		if d >= base {
			break
		}
		n.Mul(n, bigBase)
		n.Add(n, big.NewInt(int64(d)))
		digits++
		i++
	}

	if neg {
		n.Neg(n)
	}
	return n, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// digitValue returns the value of c as a digit, or 36 when c is not one.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

func radixPrefix(c byte) int {
	switch c | 0x20 {
	case 'b':
		return 2
	case 'o':
		return 8
	case 'd':
		return 10
	case 'x':
		return 16
	}
	return 0
}
