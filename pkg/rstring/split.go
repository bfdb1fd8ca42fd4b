package rstring

import (
	"github.com/KromDaniel/rstring/pattern"
)

// Split divides s around matches of sep, a string or a pattern.Pattern.
// It is SplitN with limit 0.
func (s *String) Split(sep any) ([]*String, error) {
	return s.SplitN(sep, 0)
}

// SplitN divides s around matches of sep.
//
// An empty s always yields an empty slice. A zero-length match splits off a
// single character, so an empty separator splits s into characters. Capture
// groups of a pattern separator that took part in a match are inserted after
// the field that precedes the match.
//
// The limit works as follows:
//   - limit > 0: at most limit fields; the last one holds the rest of s
//   - limit == 0: trailing empty fields are removed
//   - limit < 0: trailing empty fields are kept
//
// The only error is a *TypeMismatchError for sep.
func (s *String) SplitN(sep any, limit int) ([]*String, error) {
	p, err := coercePattern(sep)
	if err != nil {
		return nil, err
	}
	if len(s.b) == 0 {
		return []*String{}, nil
	}
	if limit == 1 {
		return []*String{s.Dup()}, nil
	}

	subj := pattern.NewSubject(s.b, s.enc)
	var out []*String
	// beg is the start of the current field, start is where the next search
	// begins. They differ only after a zero-length match.
	beg, start := 0, 0
	lastNull := false
	fields := 1

	for {
		res, ok := pattern.FindResult(p, subj, start)
		if !ok {
			break
		}
		if res.Empty() && res.Start() == start {
			if !lastNull {
				start = subj.NextBoundary(start)
				lastNull = true
				continue
			}
			out = append(out, s.slice(beg, subj.NextBoundary(beg)))
			beg = start
		} else {
			out = append(out, s.slice(beg, res.Start()))
			beg, start = res.End(), res.End()
		}
		lastNull = false

		for i := 1; i < len(res.Groups); i++ {
			if g := res.Groups[i]; g.Matched() {
				out = append(out, s.slice(g.Start, g.End))
			}
		}

		fields++
		if limit > 0 && limit <= fields {
			break
		}
	}

	if limit != 0 || beg < len(s.b) {
		out = append(out, s.slice(beg, len(s.b)))
	}
	if limit == 0 {
		for len(out) > 0 && out[len(out)-1].Empty() {
			out = out[:len(out)-1]
		}
	}
	return out, nil
}
