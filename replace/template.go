// Package replace parses and expands substitution templates with
// backslash backreferences.
package replace

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// SegmentType indicates the type of segment in a replacement template.
type SegmentType int

const (
	// SegmentLiteral represents literal text (no capture reference).
	SegmentLiteral SegmentType = iota
	// SegmentFullMatch represents a reference to the whole match (\0 or \&).
	SegmentFullMatch
	// SegmentCaptureIndex represents a reference to a capture group by index (\1 to \9).
	SegmentCaptureIndex
	// SegmentCaptureName represents a reference to a capture group by name (\k<name>).
	SegmentCaptureName
	// SegmentPreMatch represents the text before the match (\`).
	SegmentPreMatch
	// SegmentPostMatch represents the text after the match (\').
	SegmentPostMatch
)

// Segment represents a parsed segment of a replacement template.
type Segment struct {
	Type         SegmentType
	Literal      []byte // For SegmentLiteral: the literal bytes
	CaptureIndex int    // For SegmentCaptureIndex: 1-based index
	CaptureName  string // For SegmentCaptureName: the capture group name
}

// Template represents a fully parsed replacement template.
type Template struct {
	Original []byte
	Segments []Segment
}

// HasReferences reports whether expanding t depends on the match.
func (t *Template) HasReferences() bool {
	for _, seg := range t.Segments {
		if seg.Type != SegmentLiteral {
			return true
		}
	}
	return false
}

// Parse parses a replacement template into segments.
// Template syntax:
//   - \0 or \&: whole match
//   - \1 to \9: capture group by index
//   - \k<name>: capture group by name
//   - \` and \': text before and after the match
//   - \\: literal backslash
//   - Any other backslash sequence and everything else: literal bytes
func Parse(template []byte) (*Template, error) {
	result := &Template{
		Original: template,
		Segments: make([]Segment, 0),
	}

	i := 0
	literalStart := 0
	flush := func(end int) {
		if end > literalStart {
			result.Segments = appendLiteral(result.Segments, template[literalStart:end])
		}
	}

	for i < len(template) {
		if template[i] != '\\' || i+1 >= len(template) {
			i++
			continue
		}

		next := template[i+1]
		switch {
		case next == '0' || next == '&':
			flush(i)
			result.Segments = append(result.Segments, Segment{Type: SegmentFullMatch})
			i += 2
			literalStart = i

		case next >= '1' && next <= '9':
			flush(i)
			result.Segments = append(result.Segments, Segment{
				Type:         SegmentCaptureIndex,
				CaptureIndex: int(next - '0'),
			})
			i += 2
			literalStart = i

		case next == '`':
			flush(i)
			result.Segments = append(result.Segments, Segment{Type: SegmentPreMatch})
			i += 2
			literalStart = i

		case next == '\'':
			flush(i)
			result.Segments = append(result.Segments, Segment{Type: SegmentPostMatch})
			i += 2
			literalStart = i

		case next == '\\':
			flush(i)
			result.Segments = appendLiteral(result.Segments, []byte{'\\'})
			i += 2
			literalStart = i

		case next == 'k' && i+2 < len(template) && template[i+2] == '<':
			seg, consumed, err := parseNamedRef(template[i:])
			if err != nil {
				return nil, fmt.Errorf("at position %d: %w", i, err)
			}
			if consumed == 0 {
				// No closing '>': keep the sequence as literal text.
				i += 3
				continue
			}
			flush(i)
			result.Segments = append(result.Segments, seg)
			i += consumed
			literalStart = i

		default:
			// Unknown escape: both bytes stay literal.
			i += 2
		}
	}

	flush(len(template))
	return result, nil
}

// appendLiteral merges adjacent literal segments.
func appendLiteral(segs []Segment, lit []byte) []Segment {
	if n := len(segs); n > 0 && segs[n-1].Type == SegmentLiteral {
		segs[n-1].Literal = append(segs[n-1].Literal, lit...)
		return segs
	}
	return append(segs, Segment{
		Type:    SegmentLiteral,
		Literal: append([]byte(nil), lit...),
	})
}

// parseNamedRef parses \k<name> starting at s[0]='\\', s[1]='k', s[2]='<'.
// It returns consumed == 0 when there is no closing '>'.
func parseNamedRef(s []byte) (Segment, int, error) {
	closeIdx := -1
	for j := 3; j < len(s); j++ {
		if s[j] == '>' {
			closeIdx = j
			break
		}
	}
	if closeIdx == -1 {
		return Segment{}, 0, nil
	}

	name := string(s[3:closeIdx])
	if name == "" {
		return Segment{}, 0, fmt.Errorf("empty group name in \\k<>")
	}
	if !isValidIdentifier(name) {
		return Segment{}, 0, fmt.Errorf("invalid group name \\k<%s>", name)
	}

	return Segment{
		Type:        SegmentCaptureName,
		CaptureName: name,
	}, closeIdx + 1, nil
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isValidIdentifier(s string) bool {
	if len(s) == 0 || !utf8.ValidString(s) {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isNameStart(r) {
				return false
			}
		} else if !isNameContinue(r) {
			return false
		}
	}
	return true
}
