package replace

// Captures gives access to the parts of a single match.
type Captures interface {
	// Group returns capture group i; group 0 is the whole match. The second
	// result is false when the group does not exist or did not participate.
	Group(i int) ([]byte, bool)
	// Named returns the named capture group. exists is false when the pattern
	// has no group of that name.
	Named(name string) (b []byte, exists bool)
	// Pre returns the text before the match.
	Pre() []byte
	// Post returns the text after the match.
	Post() []byte
}

// UnknownGroupError is returned by Expand for a \k<name> reference to a
// group the pattern does not define.
type UnknownGroupError struct {
	Name string
}

func (e *UnknownGroupError) Error() string {
	return "undefined group name reference: " + e.Name
}

// Expand appends the expansion of t for the match c to dst.
// References to groups that did not participate expand to nothing.
func Expand(dst []byte, t *Template, c Captures) ([]byte, error) {
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentLiteral:
			dst = append(dst, seg.Literal...)
		case SegmentFullMatch:
			b, _ := c.Group(0)
			dst = append(dst, b...)
		case SegmentCaptureIndex:
			b, _ := c.Group(seg.CaptureIndex)
			dst = append(dst, b...)
		case SegmentCaptureName:
			b, ok := c.Named(seg.CaptureName)
			if !ok {
				return dst, &UnknownGroupError{Name: seg.CaptureName}
			}
			dst = append(dst, b...)
		case SegmentPreMatch:
			dst = append(dst, c.Pre()...)
		case SegmentPostMatch:
			dst = append(dst, c.Post()...)
		}
	}
	return dst, nil
}
