package pattern

import (
	"fmt"
	"regexp"
	"regexp/syntax"

	"github.com/dlclark/regexp2"
)

// Options configures Regexp compilation.
type Options struct {
	// IgnoreCase makes letters match regardless of case.
	IgnoreCase bool

	// DotAll makes '.' match newlines too.
	DotAll bool

	// Extended ignores unescaped whitespace in the expression and allows
	// '#' comments.
	Extended bool
}

// Regexp is a compiled backtracking regular expression. '^' and '$' always
// match at line boundaries. A Regexp is safe for concurrent use.
type Regexp struct {
	re   *regexp2.Regexp
	expr string
}

// Compile compiles expr with default options.
func Compile(expr string) (*Regexp, error) {
	return CompileWith(expr, Options{})
}

// CompileWith compiles expr with the given options.
func CompileWith(expr string, opts Options) (*Regexp, error) {
	flags := regexp2.RegexOptions(regexp2.Multiline)
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}
	if opts.DotAll {
		flags |= regexp2.Singleline
	}
	if opts.Extended {
		flags |= regexp2.IgnorePatternWhitespace
	}

	re, err := regexp2.Compile(expr, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	return &Regexp{re: re, expr: expr}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return re
}

func (r *Regexp) String() string {
	return r.expr
}

// NumGroups returns the number of capture groups.
func (r *Regexp) NumGroups() int {
	return len(r.re.GetGroupNumbers()) - 1
}

// find matches over the decoded codepoints so that every encoding, including
// raw bytes, is searched character by character.
func (r *Regexp) find(s *Subject, start int) (Match, bool) {
	runes, offs := s.decoded()
	m, err := r.re.FindRunesMatchStartingAt(runes, s.runeIndex(start))
	if err != nil || m == nil {
		// Errors only come from match timeouts, which are never set.
		return Match{}, false
	}

	groups := m.Groups()
	out := Match{Groups: make([]Span, len(groups))}
	for i, g := range groups {
		if len(g.Captures) == 0 {
			out.Groups[i] = Span{Start: -1, End: -1}
			continue
		}
		out.Groups[i] = Span{Start: offs[g.Index], End: offs[g.Index+g.Length]}
		if g.Name != "" && !isNumber(g.Name) {
			if out.names == nil {
				out.names = make(map[string]int)
			}
			out.names[g.Name] = i
		}
	}
	// Named groups that did not participate still exist.
	for _, name := range r.re.GetGroupNames() {
		if isNumber(name) {
			continue
		}
		if _, ok := out.names[name]; ok {
			continue
		}
		if n := r.re.GroupNumberFromName(name); n >= 0 && n < len(out.Groups) {
			if out.names == nil {
				out.names = make(map[string]int)
			}
			out.names[name] = n
		}
	}
	return out, true
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// RE2 is a compiled regular expression using the standard library engine.
// It guarantees linear-time matching but has no backreferences or
// lookaround, and it matches over the raw bytes as UTF-8.
//
// Assertions that look at the text before the current position, multi-line
// '^', \b and \B, are rejected at compile time. '^' and \A outside
// multi-line mode only ever match at offset 0.
type RE2 struct {
	re *regexp.Regexp

	// tail is re with its beginning-of-text assertions made unmatchable. It
	// serves searches that start past offset 0.
	tail *regexp.Regexp
}

// CompileRE2 compiles expr with RE2 syntax.
func CompileRE2(expr string) (*RE2, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	tree, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	if name, ok := lookbehindAssertion(tree); ok {
		return nil, fmt.Errorf("failed to compile pattern: %s is not supported in %q, use Compile", name, expr)
	}

	out := &RE2{re: re, tail: re}
	if dropBeginText(tree) {
		if out.tail, err = regexp.Compile(tree.String()); err != nil {
			return nil, fmt.Errorf("failed to compile pattern: %w", err)
		}
	}
	return out, nil
}

// lookbehindAssertion finds an empty-width assertion whose outcome depends
// on the byte before the current position.
func lookbehindAssertion(re *syntax.Regexp) (string, bool) {
	switch re.Op {
	case syntax.OpBeginLine:
		return "multi-line ^", true
	case syntax.OpWordBoundary:
		return `\b`, true
	case syntax.OpNoWordBoundary:
		return `\B`, true
	}
	for _, sub := range re.Sub {
		if name, ok := lookbehindAssertion(sub); ok {
			return name, true
		}
	}
	return "", false
}

// dropBeginText rewrites every beginning-of-text assertion in re to match
// nothing and reports whether there was one.
func dropBeginText(re *syntax.Regexp) bool {
	if re.Op == syntax.OpBeginText {
		re.Op = syntax.OpNoMatch
		return true
	}
	found := false
	for _, sub := range re.Sub {
		if dropBeginText(sub) {
			found = true
		}
	}
	return found
}

// MustCompileRE2 is like CompileRE2 but panics if the expression cannot be
// parsed.
func MustCompileRE2(expr string) *RE2 {
	re, err := CompileRE2(expr)
	if err != nil {
		panic(err)
	}
	return re
}

func (r *RE2) String() string {
	return r.re.String()
}

// NumGroups returns the number of capture groups.
func (r *RE2) NumGroups() int {
	return r.re.NumSubexp()
}

// find searches s[start:]. With no lookbehind assertions left, the only way
// the slice differs from the whole subject is that offset start is not the
// beginning of text, which tail accounts for.
func (r *RE2) find(s *Subject, start int) (Match, bool) {
	re := r.re
	if start > 0 {
		re = r.tail
	}
	loc := re.FindSubmatchIndex(s.b[start:])
	if loc == nil {
		return Match{}, false
	}

	out := Match{Groups: make([]Span, len(loc)/2)}
	for i := range out.Groups {
		if loc[2*i] < 0 {
			out.Groups[i] = Span{Start: -1, End: -1}
			continue
		}
		out.Groups[i] = Span{Start: loc[2*i] + start, End: loc[2*i+1] + start}
	}
	for i, name := range r.re.SubexpNames() {
		if name == "" {
			continue
		}
		if out.names == nil {
			out.names = make(map[string]int)
		}
		out.names[name] = i
	}
	return out, true
}
