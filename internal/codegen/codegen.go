// Package codegen provides naming helpers and constants for generated code.
package codegen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names used in the generated encoding table.
const (
	CharmapPath  = "golang.org/x/text/encoding/charmap"
	EncodingType = "Encoding"
	TableName    = "table"
)

var kindIdents = map[string]string{
	"utf8":    "kindUTF8",
	"binary":  "kindBinary",
	"ascii":   "kindASCII",
	"charmap": "kindCharmap",
}

// KindIdent returns the identifier of the kind constant for an encoding kind
// as written in encodings.yaml.
func KindIdent(kind string) (string, error) {
	id, ok := kindIdents[strings.ToLower(kind)]
	if !ok {
		return "", fmt.Errorf("unknown encoding kind %q", kind)
	}
	return id, nil
}

// VarName derives an exported Go identifier from an encoding name by dropping
// everything that is not a letter or digit: "US-ASCII" becomes "USASCII" and
// "macRoman" becomes "MacRoman". A name starting with a digit is prefixed
// with "Enc".
func VarName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	s := sb.String()
	if s == "" {
		return ""
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		s = "Enc" + s
	}
	return UpperFirst(s)
}

// IsExported reports whether s is a valid exported Go identifier.
func IsExported(s string) bool {
	for i, r := range s {
		switch {
		case i == 0 && !unicode.IsUpper(r):
			return false
		case r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r):
			return false
		}
	}
	return s != ""
}

// DocComment returns doc in Go doc comment form for the identifier name:
// it starts with name, and a default is used when doc is empty.
func DocComment(name, doc string) string {
	doc = strings.TrimSpace(doc)
	switch {
	case doc == "":
		return name + " is a built-in encoding."
	case strings.HasPrefix(doc, name+" "):
		return doc
	}
	return name + " " + LowerFirst(doc)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
