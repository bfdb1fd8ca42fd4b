package rstring

import (
	"bytes"

	"github.com/KromDaniel/rstring/charset"
	"github.com/KromDaniel/rstring/pattern"
)

// StartWith reports whether s begins with any of the prefixes. A string
// prefix is compared byte for byte, so the empty string always matches. A
// pattern prefix matches when it matches at offset 0.
func (s *String) StartWith(prefixes ...any) (bool, error) {
	var subj *pattern.Subject
	for _, v := range prefixes {
		p, err := coercePattern(v)
		if err != nil {
			return false, err
		}
		if lit, ok := p.(pattern.Literal); ok {
			if bytes.HasPrefix(s.b, lit) {
				return true, nil
			}
			continue
		}
		if subj == nil {
			subj = pattern.NewSubject(s.b, s.enc)
		}
		// Leftmost-first: a match at 0 exists iff the leftmost one is there.
		if m, found := pattern.Find(p, subj, 0); found && m.Start() == 0 {
			return true, nil
		}
	}
	return false, nil
}

// EndWith reports whether s ends with any of the suffixes. The suffix must
// start on a character boundary of s.
func (s *String) EndWith(suffixes ...any) (bool, error) {
	for _, v := range suffixes {
		suffix, err := coerceString(v)
		if err != nil {
			return false, err
		}
		if !bytes.HasSuffix(s.b, suffix.b) {
			continue
		}
		off := len(s.b) - len(suffix.b)
		start, _ := charset.CharToByteOffset(s.b, s.enc, charset.ByteToCharIndex(s.b, s.enc, off))
		if start == off {
			return true, nil
		}
	}
	return false, nil
}

// Index returns the character index of the first occurrence of sub, which may
// be a string or a pattern. The optional start is a character index where the
// search begins; a negative start counts from the end. The second result is
// false when there is no occurrence.
func (s *String) Index(sub any, start ...int) (int, bool, error) {
	p, err := coercePattern(sub)
	if err != nil {
		return 0, false, err
	}

	from := 0
	if len(start) > 0 {
		n := s.Len()
		from = start[0]
		if from < 0 {
			from += n
		}
		if from < 0 || from > n {
			return 0, false, nil
		}
	}
	byteFrom, _ := charset.CharToByteOffset(s.b, s.enc, from)

	m, ok := pattern.Find(p, pattern.NewSubject(s.b, s.enc), byteFrom)
	if !ok {
		return 0, false, nil
	}
	return charset.ByteToCharIndex(s.b, s.enc, m.Start()), true, nil
}
