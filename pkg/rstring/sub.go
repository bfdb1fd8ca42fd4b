package rstring

import (
	"fmt"

	"github.com/KromDaniel/rstring/pattern"
	"github.com/KromDaniel/rstring/replace"
)

// Sub replaces the first match of pat with repl.
//
// pat is a string (matched byte for byte) or a pattern.Pattern. repl is a
// string that may contain backreferences: \0 or \& for the whole match,
// \1 to \9 for capture groups, \k<name> for named groups and \` and \' for
// the text before and after the match. repl is converted to the encoding of
// s and a *ConversionError is returned when it cannot be.
//
// When nothing matches, Sub returns a copy of s, never s itself.
func (s *String) Sub(pat, repl any) (*String, error) {
	p, tmpl, err := s.subArgs(pat, repl)
	if err != nil {
		return nil, err
	}

	subj := pattern.NewSubject(s.b, s.enc)
	res, ok := pattern.FindResult(p, subj, 0)
	if !ok {
		return s.Dup(), nil
	}

	out := make([]byte, 0, len(s.b)+len(tmpl.Original))
	out = append(out, s.b[:res.Start()]...)
	if out, err = replace.Expand(out, tmpl, res); err != nil {
		return nil, err
	}
	out = append(out, s.b[res.End():]...)
	return newString(out, s.enc), nil
}

// Gsub is like Sub but replaces every non-overlapping match. After a
// zero-length match the search resumes one character further on.
func (s *String) Gsub(pat, repl any) (*String, error) {
	p, tmpl, err := s.subArgs(pat, repl)
	if err != nil {
		return nil, err
	}

	subj := pattern.NewSubject(s.b, s.enc)
	out := make([]byte, 0, len(s.b))
	last := 0
	for pos := 0; pos <= len(s.b); {
		res, ok := pattern.FindResult(p, subj, pos)
		if !ok {
			break
		}
		out = append(out, s.b[last:res.Start()]...)
		if out, err = replace.Expand(out, tmpl, res); err != nil {
			return nil, err
		}
		last, pos = res.End(), res.End()
		if res.Empty() {
			next := subj.NextBoundary(pos)
			if next > len(s.b) {
				break
			}
			out = append(out, s.b[pos:next]...)
			last, pos = next, next
		}
	}
	out = append(out, s.b[last:]...)
	return newString(out, s.enc), nil
}

// subArgs coerces the pattern and parses the replacement, converted to the
// encoding of s.
func (s *String) subArgs(pat, repl any) (pattern.Pattern, *replace.Template, error) {
	p, err := coercePattern(pat)
	if err != nil {
		return nil, nil, err
	}
	r, err := coerceString(repl)
	if err != nil {
		return nil, nil, err
	}
	if r, err = r.compatibleWith(s.enc); err != nil {
		return nil, nil, err
	}
	tmpl, err := replace.Parse(r.b)
	if err != nil {
		return nil, nil, &ArgumentError{Msg: fmt.Sprintf("invalid replacement: %v", err)}
	}
	return p, tmpl, nil
}
