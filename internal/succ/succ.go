// Package succ computes the lexicographic successor of a codepoint sequence.
package succ

// Class is the alphanumeric class of a codepoint.
type Class int

const (
	Other Class = iota
	Digit
	Lower
	Upper
)

// Classify returns the class of cp. Only ASCII letters and digits are
// alphanumeric.
func Classify(cp rune) Class {
	switch {
	case cp >= '0' && cp <= '9':
		return Digit
	case cp >= 'a' && cp <= 'z':
		return Lower
	case cp >= 'A' && cp <= 'Z':
		return Upper
	}
	return Other
}

// first and last are the bounds of each alphanumeric class; carry is the
// character inserted when a whole run overflows.
var (
	first = [...]rune{Digit: '0', Lower: 'a', Upper: 'A'}
	last  = [...]rune{Digit: '9', Lower: 'z', Upper: 'Z'}
	carry = [...]rune{Digit: '1', Lower: 'a', Upper: 'A'}
)

// Next returns the successor of cps as a new slice.
//
// When cps contains an alphanumeric character, the rightmost one is
// incremented within its class; '9', 'z' and 'Z' wrap to '0', 'a' and 'A' and
// carry into the next alphanumeric character to the left, skipping anything
// else. A carry out of the leftmost alphanumeric character inserts '1', 'a'
// or 'A' in front of it.
//
// Otherwise the last codepoint is incremented. canEncode bounds the
// codepoint domain: a value with no representable successor wraps to the
// lowest representable value and carries left, and a carry out of the first
// character prepends codepoint 1.
func Next(cps []rune, canEncode func(rune) bool) []rune {
	out := make([]rune, len(cps), len(cps)+1)
	copy(out, cps)
	if len(out) == 0 {
		return out
	}

	if !hasAlnum(out) {
		return nextRaw(out, canEncode)
	}

	lastAlnum := -1
	for i := len(out) - 1; i >= 0; i-- {
		c := Classify(out[i])
		if c == Other {
			continue
		}
		lastAlnum = i
		if out[i] != last[c] {
			out[i]++
			return out
		}
		out[i] = first[c]
	}

	// Every alphanumeric character overflowed.
	ins := carry[Classify(out[lastAlnum])]
	out = append(out, 0)
	copy(out[lastAlnum+1:], out[lastAlnum:])
	out[lastAlnum] = ins
	return out
}

func hasAlnum(cps []rune) bool {
	for _, cp := range cps {
		if Classify(cp) != Other {
			return true
		}
	}
	return false
}

func nextRaw(out []rune, canEncode func(rune) bool) []rune {
	for i := len(out) - 1; i >= 0; i-- {
		if n, ok := increment(out[i], canEncode); ok {
			out[i] = n
			return out
		}
		out[i] = 0
	}
	out = append(out, 0)
	copy(out[1:], out)
	out[0] = 1
	return out
}

// increment returns the next representable codepoint after cp, skipping
// unrepresentable gaps such as the UTF-16 surrogate block.
func increment(cp rune, canEncode func(rune) bool) (rune, bool) {
	const maxGap = 0x800
	for n, tries := cp+1, 0; n <= 0x10FFFF && tries <= maxGap; n, tries = n+1, tries+1 {
		if canEncode(n) {
			return n, true
		}
	}
	return 0, false
}
