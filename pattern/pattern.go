// Package pattern provides leftmost-first matching over encoded byte buffers.
//
// A Pattern is one of three variants:
//   - Literal: an exact byte subsequence
//   - *Regexp: a backtracking regular expression (github.com/dlclark/regexp2)
//     with Ruby-like syntax: lookaround, named groups, line anchors
//   - *RE2: a linear-time regular expression from the standard library
//
// All positions in a Match are byte offsets into the subject, regardless of
// the variant that produced it.
package pattern

import (
	"bytes"
	"unicode/utf8"
)

// Pattern is the tagged variant of things that can be searched for.
// It is implemented only by the types of this package.
type Pattern interface {
	// String returns the source of the pattern.
	String() string

	find(s *Subject, start int) (Match, bool)
}

// Find returns the leftmost match of p in s that starts at or after byte
// offset start. start must be a character boundary of s.
func Find(p Pattern, s *Subject, start int) (Match, bool) {
	if start < 0 || start > len(s.b) {
		return Match{}, false
	}
	return p.find(s, start)
}

// FindResult is like Find but binds the match to its subject.
func FindResult(p Pattern, s *Subject, start int) (Result, bool) {
	m, ok := Find(p, s, start)
	if !ok {
		return Result{}, false
	}
	return Result{Subject: s, Match: m}, true
}

// Literal matches an exact byte sequence. The empty literal matches at every
// position.
type Literal []byte

func (l Literal) String() string {
	return string(l)
}

func (l Literal) find(s *Subject, start int) (Match, bool) {
	for start <= len(s.b) {
		i := bytes.Index(s.b[start:], l)
		if i < 0 {
			return Match{}, false
		}
		i += start
		// A match must begin on a character boundary.
		if s.enc.UTF8() && i < len(s.b) && !utf8.RuneStart(s.b[i]) {
			start = i + 1
			continue
		}
		return Match{Groups: []Span{{Start: i, End: i + len(l)}}}, true
	}
	return Match{}, false
}

// Span is a byte range [Start, End). A group that did not participate in a
// match has Start == End == -1.
type Span struct {
	Start int
	End   int
}

// Matched reports whether the span belongs to a participating group.
func (sp Span) Matched() bool {
	return sp.Start >= 0
}

// Match is a single successful match.
type Match struct {
	// Groups[0] is the whole match, Groups[i] is capture group i.
	Groups []Span

	names map[string]int
}

// Start returns the byte offset where the match begins.
func (m Match) Start() int {
	return m.Groups[0].Start
}

// End returns the byte offset just past the match.
func (m Match) End() int {
	return m.Groups[0].End
}

// Empty reports whether the match is zero-length.
func (m Match) Empty() bool {
	return m.Start() == m.End()
}

// NumGroups returns the number of capture groups, not counting the whole match.
func (m Match) NumGroups() int {
	return len(m.Groups) - 1
}

// GroupIndex returns the number of the named group.
func (m Match) GroupIndex(name string) (int, bool) {
	i, ok := m.names[name]
	return i, ok
}

// Result is a Match bound to the subject it was found in. It implements
// replace.Captures.
type Result struct {
	Subject *Subject
	Match
}

// Group returns the bytes of group i.
func (r Result) Group(i int) ([]byte, bool) {
	if i < 0 || i >= len(r.Groups) || !r.Groups[i].Matched() {
		return nil, false
	}
	sp := r.Groups[i]
	return r.Subject.b[sp.Start:sp.End], true
}

// Named returns the bytes of the named group. exists is false when the
// pattern has no such group; a group that exists but did not participate
// yields nil, true.
func (r Result) Named(name string) (b []byte, exists bool) {
	i, ok := r.names[name]
	if !ok {
		return nil, false
	}
	b, _ = r.Group(i)
	return b, true
}

// Pre returns the bytes before the match.
func (r Result) Pre() []byte {
	return r.Subject.b[:r.Start()]
}

// Post returns the bytes after the match.
func (r Result) Post() []byte {
	return r.Subject.b[r.End():]
}
