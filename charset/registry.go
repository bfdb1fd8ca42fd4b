package charset

import (
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

//go:generate go run ../cmd/enctables --in encodings.yaml --out tables.go --package charset

// UnknownEncodingError is returned by Resolve for a name that does not
// identify a supported encoding.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return "unknown encoding name - " + e.Name
}

var registry struct {
	sync.RWMutex
	byName map[string]*Encoding
}

func init() {
	registry.byName = make(map[string]*Encoding, len(table)*3)
	for _, e := range table {
		for _, n := range e.Names() {
			registry.byName[strings.ToUpper(n)] = e
		}
	}
}

// Resolve looks up an encoding by name or alias, ignoring case. Names not in
// the built-in table are looked up in the IANA character set index; those
// that map to a single-byte code page are registered on first use.
func Resolve(name string) (*Encoding, error) {
	key := strings.ToUpper(strings.TrimSpace(name))

	registry.RLock()
	e, ok := registry.byName[key]
	registry.RUnlock()
	if ok {
		return e, nil
	}

	xe, err := ianaindex.IANA.Encoding(name)
	if err != nil || xe == nil {
		return nil, &UnknownEncodingError{Name: name}
	}
	cm, ok := xe.(*charmap.Charmap)
	if !ok {
		return nil, &UnknownEncodingError{Name: name}
	}

	registry.Lock()
	defer registry.Unlock()
	for _, known := range registry.byName {
		if known.charmap == cm {
			registry.byName[key] = known
			return known, nil
		}
	}
	canonical, err := ianaindex.IANA.Name(xe)
	if err != nil || canonical == "" {
		canonical = name
	}
	e = &Encoding{name: canonical, kind: kindCharmap, charmap: cm}
	if !strings.EqualFold(canonical, name) {
		e.aliases = []string{name}
	}
	registry.byName[key] = e
	registry.byName[strings.ToUpper(canonical)] = e
	return e, nil
}

// MustResolve is like Resolve but panics on an unknown name.
func MustResolve(name string) *Encoding {
	e, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return e
}

// List returns the built-in encodings in table order.
func List() []*Encoding {
	out := make([]*Encoding, len(table))
	copy(out, table)
	return out
}
