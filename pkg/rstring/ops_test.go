package rstring

import (
	"errors"
	"math"
	"testing"

	"github.com/KromDaniel/rstring/charset"
	"github.com/KromDaniel/rstring/pattern"
)

func TestEncode(t *testing.T) {
	_, err := MustNew("😢").Encode(charset.ASCII8BIT)
	var conv *ConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("Encode() error = %v, want *ConversionError", err)
	}
	if got := err.Error(); got != "U+1F622 from UTF-8 to ASCII-8BIT" {
		t.Errorf("Error() = %q", got)
	}

	_, err = MustNew("abé").Encode(charset.USASCII)
	if err == nil || err.Error() != "U+00E9 from UTF-8 to US-ASCII" {
		t.Errorf("Encode(US-ASCII) error = %v", err)
	}

	b, err := MustNew("é").Encode(charset.ASCII8BIT)
	if err != nil {
		t.Fatalf("Encode(ASCII-8BIT) failed: %v", err)
	}
	if b.String() != "\xE9" || b.Encoding() != charset.ASCII8BIT {
		t.Errorf("Encode(ASCII-8BIT) = %q in %s", b, b.Encoding())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := MustNew("façade ÿ")
	latin, err := src.EncodeTo("ISO-8859-1")
	if err != nil {
		t.Fatalf("EncodeTo() failed: %v", err)
	}
	if latin.ByteLen() != latin.Len() || latin.Len() != src.Len() {
		t.Errorf("ISO-8859-1 lengths = %d bytes, %d chars", latin.ByteLen(), latin.Len())
	}

	back, err := latin.Encode(charset.UTF8)
	if err != nil {
		t.Fatalf("Encode(UTF-8) failed: %v", err)
	}
	if !back.Equal(src) {
		t.Errorf("round trip = %q, want %q", back, src)
	}
}

func TestEncodeASCIIRoundTrip(t *testing.T) {
	encs := []*charset.Encoding{charset.UTF8, charset.USASCII, charset.ASCII8BIT}
	src := MustNew("plain ASCII ~ 0123")
	for _, from := range encs {
		for _, to := range encs {
			s, err := src.Encode(from)
			if err != nil {
				t.Fatalf("Encode(%s) failed: %v", from, err)
			}
			out, err := s.Encode(to)
			if err != nil {
				t.Fatalf("%s -> %s failed: %v", from, to, err)
			}
			if out.String() != src.String() {
				t.Errorf("%s -> %s = %q", from, to, out)
			}
		}
	}
}

func TestEncodeInvalidSource(t *testing.T) {
	s := Binary([]byte{'a', 0xFF}).ForceEncoding(charset.UTF8)
	_, err := s.Encode(charset.USASCII)
	var invalid *InvalidByteSequenceError
	if !errors.As(err, &invalid) || invalid.Offset != 1 {
		t.Errorf("Encode() error = %v, want *InvalidByteSequenceError at 1", err)
	}
}

func TestEncodeToUnknown(t *testing.T) {
	if _, err := MustNew("a").EncodeTo("no-such-thing"); err == nil {
		t.Error("EncodeTo() succeeded for an unknown name")
	}
}

func TestForceEncoding(t *testing.T) {
	s := MustNew("😉")
	if got := s.ForceEncoding(charset.ASCII8BIT); got != s {
		t.Error("ForceEncoding() did not return its receiver")
	}
	if s.String() != "😉" || s.Len() != 4 {
		t.Errorf("ForceEncoding() changed bytes: %q, %d chars", s, s.Len())
	}

	if _, err := s.ForceEncodingName("bogus-name"); err == nil {
		t.Error("ForceEncodingName() succeeded for an unknown name")
	}
	if s.Encoding() != charset.ASCII8BIT {
		t.Errorf("failed ForceEncodingName() changed the encoding to %s", s.Encoding())
	}
	if _, err := s.ForceEncodingName("utf-8"); err != nil || s.Encoding() != charset.UTF8 {
		t.Errorf("ForceEncodingName(utf-8) = %s, %v", s.Encoding(), err)
	}
}

func TestStartWith(t *testing.T) {
	s := MustNew("hello")
	tests := []struct {
		name     string
		prefixes []any
		want     bool
	}{
		{"literal", []any{"hell"}, true},
		{"empty literal", []any{""}, true},
		{"no match", []any{"ello"}, false},
		{"any of", []any{"x", "he"}, true},
		{"regexp at start", []any{pattern.MustCompile(`h.l`)}, true},
		{"regexp later", []any{pattern.MustCompile(`ell`)}, false},
		{"re2", []any{pattern.MustCompileRE2(`^he`)}, true},
		{"string valuer", []any{MustNew("he")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.StartWith(tt.prefixes...)
			if err != nil {
				t.Fatalf("StartWith() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("StartWith() = %v, want %v", got, tt.want)
			}
		})
	}

	var mismatch *TypeMismatchError
	if _, err := s.StartWith(42); !errors.As(err, &mismatch) {
		t.Errorf("StartWith(42) error = %v, want *TypeMismatchError", err)
	}
}

func TestEndWith(t *testing.T) {
	s := MustNew("😉 hello")
	if ok, _ := s.EndWith("llo"); !ok {
		t.Error(`EndWith("llo") = false`)
	}
	if ok, _ := s.EndWith("x", "😉 hello"); !ok {
		t.Error("EndWith() of the whole string = false")
	}
	if ok, _ := MustNew("😉").EndWith([]byte{0x89}); ok {
		t.Error("EndWith() matched inside a character")
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		sub    any
		start  []int
		want   int
		wantOK bool
	}{
		{"literal", "hello", "l", nil, 2, true},
		{"with start", "hello", "l", []int{3}, 3, true},
		{"negative start", "hello", pattern.MustCompile(`l`), []int{-2}, 3, true},
		{"missing", "hello", "z", nil, 0, false},
		{"start past end", "hello", "o", []int{6}, 0, false},
		{"empty at end", "😉”ăa", "", []int{4}, 4, true},
		{"multibyte", "😉”ăa", "ă", nil, 2, true},
		{"regexp", "😉”ăa", pattern.MustCompile(`[aă]`), nil, 2, true},
		{"re2", "😉 tim 0b1101", pattern.MustCompileRE2(`0b[01]+`), nil, 6, true},
		{"re2 anchored", "abc", pattern.MustCompileRE2(`^a`), nil, 0, true},
		{"re2 anchored after start", "xab", pattern.MustCompileRE2(`^a`), []int{1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := MustNew(tt.input).Index(tt.sub, tt.start...)
			if err != nil {
				t.Fatalf("Index() error: %v", err)
			}
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Index() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}

	_, _, err := MustNew("x").Index(3.5)
	if err == nil || err.Error() != "wrong argument type float64 (expected Regexp)" {
		t.Errorf("Index(3.5) error = %v", err)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pat   any
		repl  any
		want  string
	}{
		{"capture", "0b1101011", pattern.MustCompile(`0b([01]+)`), `the binary number is \1`, "the binary number is 1101011"},
		{"literal", "hello", "l", "L", "heLlo"},
		{"whole match", "tim", "i", `[\0]`, "t[i]m"},
		{"ampersand", "tim", pattern.MustCompile(`i`), `<\&>`, "t<i>m"},
		{"named", "John Smith", pattern.MustCompile(`(?<first>\w+) (?<last>\w+)`), `\k<last>, \k<first>`, "Smith, John"},
		{"pre and post", "abc", "b", "[\\`|\\']", "a[a|c]c"},
		{"escaped backslash", "a.b", ".", `\\`, `a\b`},
		{"unmatched group", "ab", pattern.MustCompile(`a(x)?`), `[\1]`, "[]b"},
		{"re2", "v1.22", pattern.MustCompileRE2(`(\d+)\.(\d+)`), `\2.\1`, "v22.1"},
		{"multibyte", "😉”ăa", "ă", "a", "😉”aa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustNew(tt.input).Sub(tt.pat, tt.repl)
			if err != nil {
				t.Fatalf("Sub() error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Sub() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubNoMatchCopies(t *testing.T) {
	tests := []struct {
		name string
		pat  any
	}{
		{"literal", "is cool"},
		{"regexp", pattern.MustCompile(`is cool`)},
		{"re2", pattern.MustCompileRE2(`is cool`)},
		{"anchored re2", pattern.MustCompileRE2(`^tim$`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustNew("tim morgan rocks")
			got, err := s.Sub(tt.pat, "x")
			if err != nil {
				t.Fatal(err)
			}
			if got == s || !got.Equal(s) {
				t.Errorf("Sub() without a match = %p %q, receiver %p", got, got, s)
			}
			if got.Encoding() != s.Encoding() {
				t.Errorf("Sub() encoding = %s, want %s", got.Encoding(), s.Encoding())
			}
		})
	}
}

func TestSubArgumentErrors(t *testing.T) {
	s := MustNew("hello")

	_, err := s.Sub(1, "x")
	if err == nil || err.Error() != "wrong argument type int (expected Regexp)" {
		t.Errorf("Sub(1, ...) error = %v", err)
	}

	_, err = s.Sub("l", struct{}{})
	if err == nil || err.Error() != "no implicit conversion of struct {} into String" {
		t.Errorf("Sub(..., struct{}) error = %v", err)
	}

	_, err = s.Sub("l", `\k<>`)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("Sub() with a bad template error = %v, want *ArgumentError", err)
	}

	_, err = s.Sub(pattern.MustCompile(`l`), `\k<nope>`)
	if err == nil {
		t.Error("Sub() with an unknown group name succeeded")
	}
}

func TestSubNilPattern(t *testing.T) {
	tests := []struct {
		name string
		pat  any
	}{
		{"untyped", nil},
		{"regexp", (*pattern.Regexp)(nil)},
		{"re2", (*pattern.RE2)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustNew("hello")
			var mismatch *TypeMismatchError
			if _, err := s.Sub(tt.pat, "x"); !errors.As(err, &mismatch) {
				t.Errorf("Sub() error = %v, want *TypeMismatchError", err)
			}
			if _, err := s.Gsub(tt.pat, "x"); !errors.As(err, &mismatch) {
				t.Errorf("Gsub() error = %v, want *TypeMismatchError", err)
			}
			if _, err := s.Split(tt.pat); !errors.As(err, &mismatch) {
				t.Errorf("Split() error = %v, want *TypeMismatchError", err)
			}
			if _, _, err := s.Index(tt.pat); !errors.As(err, &mismatch) {
				t.Errorf("Index() error = %v, want *TypeMismatchError", err)
			}
		})
	}
}

func TestSubReplacementEncoding(t *testing.T) {
	tests := []struct {
		name    string
		recv    *String
		repl    any
		want    string
		wantErr bool
	}{
		{"binary receiver", Binary([]byte("abc")), "é", "a\xE9c", false},
		{"binary receiver ascii", Binary([]byte("abc")), "-", "a-c", false},
		{"binary receiver unencodable", Binary([]byte("abc")), "😢", "", true},
		{"ascii receiver", MustNew("abc").ForceEncoding(charset.USASCII), "é", "", true},
		{"latin1 receiver", MustNew("abc").ForceEncoding(charset.MustResolve("ISO-8859-1")), "ÿ", "a\xFFc", false},
		{"utf8 receiver keeps bytes", MustNew("abc"), "é", "aéc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, op := range []func(pat, repl any) (*String, error){tt.recv.Sub, tt.recv.Gsub} {
				got, err := op("b", tt.repl)
				if tt.wantErr {
					var conv *ConversionError
					if !errors.As(err, &conv) {
						t.Errorf("error = %v, want *ConversionError", err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.String() != tt.want || got.Encoding() != tt.recv.Encoding() {
					t.Errorf("got %q in %s, want %q in %s", got, got.Encoding(), tt.want, tt.recv.Encoding())
				}
			}
		})
	}
}

func TestGsub(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pat   any
		repl  string
		want  string
	}{
		{"literal", "hello", "l", "L", "heLLo"},
		{"empty pattern", "abc", "", "-", "-a-b-c-"},
		{"empty multibyte", "ăa", "", ".", ".ă.a."},
		{"re2", "a1b22", pattern.MustCompileRE2(`\d+`), "#", "a#b#"},
		{"re2 anchored", "aaa", pattern.MustCompileRE2(`^a`), "b", "baa"},
		{"re2 end anchored", "aaa", pattern.MustCompileRE2(`a$`), "b", "aab"},
		{"re2 anchored alternation", "a,a", pattern.MustCompileRE2(`^a|,`), "-", "--a"},
		{"captures", "a=1, b=2", pattern.MustCompile(`(\w)=(\d)`), `\2=\1`, "1=a, 2=b"},
		{"zero width regexp", "ab", pattern.MustCompile(`x*`), "-", "-a-b-"},
		{"no match", "abc", "z", "-", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustNew(tt.input).Gsub(tt.pat, tt.repl)
			if err != nil {
				t.Fatalf("Gsub() error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Gsub() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   any
		limit int
		want  []string
	}{
		{"literal", "a b c", " ", 0, []string{"a", "b", "c"}},
		{"trailing empties dropped", "a,b,,c,,", ",", 0, []string{"a", "b", "", "c"}},
		{"trailing empties kept", "a,b,,c,,", ",", -1, []string{"a", "b", "", "c", "", ""}},
		{"limit", "a,b,,c,,", ",", 2, []string{"a", "b,,c,,"}},
		{"limit one", "a,b", ",", 1, []string{"a,b"}},
		{"leading empty", ",a", ",", 0, []string{"", "a"}},
		{"only separators", ",,,", ",", 0, []string{}},
		{"empty separator", "abc", "", 0, []string{"a", "b", "c"}},
		{"empty separator multibyte", "😉”ăa", "", 0, []string{"😉", "”", "ă", "a"}},
		{"empty separator limit", "abc", "", 2, []string{"a", "bc"}},
		{"no match", "abc", ",", 0, []string{"abc"}},
		{"regexp", "1, 2,3", pattern.MustCompile(`,\s*`), 0, []string{"1", "2", "3"}},
		{"regexp zero width", "hi mom", pattern.MustCompile(`\s*`), 0, []string{"h", "i", "m", "o", "m"}},
		{"regexp captures", "1,2;3", pattern.MustCompile(`([,;])`), 0, []string{"1", ",", "2", ";", "3"}},
		{"re2", "a1b22c", pattern.MustCompileRE2(`\d+`), 0, []string{"a", "b", "c"}},
		{"re2 anchored", "aXa", pattern.MustCompileRE2(`^a`), -1, []string{"", "Xa"}},
		{"re2 anchored alternation", "a,a", pattern.MustCompileRE2(`^a|,`), -1, []string{"", "", "a"}},
		{"re2 end anchored", "a1b22", pattern.MustCompileRE2(`\d+$`), -1, []string{"a1b", ""}},
		{"multibyte separator", "a”b”c", "”", 0, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustNew(tt.input).SplitN(tt.sep, tt.limit)
			if err != nil {
				t.Fatalf("SplitN() error: %v", err)
			}
			if g := strs(got); !equalStrings(g, tt.want) {
				t.Errorf("SplitN() = %q, want %q", g, tt.want)
			}
		})
	}
}

func TestSplitEmptyReceiver(t *testing.T) {
	tests := []struct {
		name string
		sep  any
	}{
		{"literal", ","},
		{"empty literal", ""},
		{"regexp", pattern.MustCompile(`,\s*`)},
		{"zero width regexp", pattern.MustCompile(`x*`)},
		{"re2", pattern.MustCompileRE2(`\d+`)},
		{"anchored re2", pattern.MustCompileRE2(`^`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, limit := range []int{-1, 0, 1, 2} {
				got, err := MustNew("").SplitN(tt.sep, limit)
				if err != nil {
					t.Fatalf("SplitN(%d) error: %v", limit, err)
				}
				if got == nil || len(got) != 0 {
					t.Errorf("SplitN(%d) of empty = %q, want an empty slice", limit, strs(got))
				}
			}
		})
	}
}

func TestSplitTypeError(t *testing.T) {
	_, err := MustNew("a b").Split(42)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) || mismatch.Expected != "Regexp" || mismatch.Got != "int" {
		t.Errorf("Split(42) error = %v", err)
	}
}

func TestToI(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"99 red balloons", 99},
		{"  -42", -42},
		{"+7", 7},
		{"1_000", 1000},
		{"1__0", 1},
		{"_1", 0},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"0x1A", 0},
		{"99999999999999999999", math.MaxInt64},
		{"-99999999999999999999", math.MinInt64},
	}
	for _, tt := range tests {
		if got := MustNew(tt.input).ToI(); got != tt.want {
			t.Errorf("%q.ToI() = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestToIBase(t *testing.T) {
	tests := []struct {
		input string
		base  int
		want  int64
	}{
		{"0x1A", 16, 26},
		{"1a", 16, 26},
		{"0a", 16, 10},
		{"0b101", 2, 5},
		{"0o17", 8, 15},
		{"z", 36, 35},
		{"Zz", 36, 35*36 + 35},
		{"102", 2, 2},
	}
	for _, tt := range tests {
		got, err := MustNew(tt.input).ToIBase(tt.base)
		if err != nil {
			t.Errorf("%q.ToIBase(%d) error: %v", tt.input, tt.base, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.ToIBase(%d) = %d, want %d", tt.input, tt.base, got, tt.want)
		}
	}

	for _, base := range []int{-1, 0, 1, 37} {
		var argErr *ArgumentError
		if _, err := MustNew("1").ToIBase(base); !errors.As(err, &argErr) {
			t.Errorf("ToIBase(%d) error = %v, want *ArgumentError", base, err)
		}
	}
}

func TestToBigInt(t *testing.T) {
	n, err := MustNew("123456789012345678901234567890").ToBigInt(10)
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != "123456789012345678901234567890" {
		t.Errorf("ToBigInt() = %s", n)
	}
}

func TestJustify(t *testing.T) {
	tim := MustNew("tim")
	tests := []struct {
		name string
		fn   func() (*String, error)
		want string
	}{
		{"ljust cycles pad", func() (*String, error) { return tim.LeftJustifyWith(10, "xy") }, "timxyxyxyx"},
		{"ljust spaces", func() (*String, error) { return tim.LeftJustify(6), nil }, "tim   "},
		{"ljust short width", func() (*String, error) { return tim.LeftJustify(2), nil }, "tim"},
		{"rjust cycles pad", func() (*String, error) { return tim.RightJustifyWith(10, "xy") }, "xyxyxyxtim"},
		{"rjust spaces", func() (*String, error) { return tim.RightJustify(5), nil }, "  tim"},
		{"center odd", func() (*String, error) { return tim.Center(8), nil }, "  tim   "},
		{"center multibyte pad", func() (*String, error) { return tim.CenterWith(9, "ăb") }, "ăbătimăbă"},
		{"multibyte receiver", func() (*String, error) { return MustNew("😉").LeftJustifyWith(3, "ă") }, "😉ăă"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeftJustifyLength(t *testing.T) {
	for _, in := range []string{"", "a", "tim", "😉”ăa"} {
		s := MustNew(in)
		for width := -1; width <= 8; width++ {
			got := s.LeftJustify(width)
			if got.Len() != max(width, s.Len()) {
				t.Errorf("%q.LeftJustify(%d) has %d chars", in, width, got.Len())
			}
			if s.Len() >= width && !got.Equal(s) {
				t.Errorf("%q.LeftJustify(%d) = %q", in, width, got)
			}
		}
	}
}

func TestJustifyErrors(t *testing.T) {
	tim := MustNew("tim")

	_, err := tim.LeftJustifyWith(10, "")
	var argErr *ArgumentError
	if !errors.As(err, &argErr) || argErr.Msg != "zero width padding" {
		t.Errorf("empty pad error = %v", err)
	}

	var mismatch *TypeMismatchError
	if _, err := tim.RightJustifyWith(10, 7); !errors.As(err, &mismatch) {
		t.Errorf("non-string pad error = %v", err)
	}

	if got := tim.LeftJustify(3); got == tim {
		t.Error("LeftJustify() returned its receiver")
	}
}

func TestSucc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "b"},
		{"z", "aa"},
		{"Z", "AA"},
		{"9", "10"},
		{"az", "ba"},
		{"aaz", "aba"},
		{"zz", "aaa"},
		{"zzz", "aaaa"},
		{"a9", "b0"},
		{"Zz", "AAa"},
		{"99", "100"},
		{"1.9.9", "2.0.0"},
		{"-9", "-10"},
		{"a-9", "b-0"},
		{"***", "**+"},
		{"ă", "Ą"},
		{"😉z", "😉aa"},
	}
	for _, tt := range tests {
		s := MustNew(tt.input)
		got := s.Succ()
		if got.String() != tt.want {
			t.Errorf("%q.Succ() = %q, want %q", tt.input, got, tt.want)
		}
		if got.Encoding() != s.Encoding() {
			t.Errorf("%q.Succ() encoding = %s", tt.input, got.Encoding())
		}
		if s.String() != tt.input {
			t.Errorf("Succ() modified its receiver to %q", s)
		}
	}
}

func TestSuccCodePage(t *testing.T) {
	koi8 := charset.MustResolve("KOI8-R")
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"cyrillic yo", []byte{0xA3}, []byte{0xA4}},
		{"last byte wraps", []byte{0xFF}, []byte{0x01, 0x00}},
		{"ascii letters carry", []byte("az"), []byte("ba")},
		{"letter before high byte", []byte{'a', 0xDA}, []byte{'b', 0xDA}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Binary(tt.input).ForceEncoding(koi8).Succ()
			if string(got.Bytes()) != string(tt.want) {
				t.Errorf("Succ() = % X, want % X", got.Bytes(), tt.want)
			}
			if got.Encoding() != koi8 {
				t.Errorf("Succ() encoding = %s, want KOI8-R", got.Encoding())
			}
		})
	}
}

func TestSuccBinaryWraps(t *testing.T) {
	got := Binary([]byte{0xFF}).Next()
	if got.String() != "\x01\x00" || got.Encoding() != charset.ASCII8BIT {
		t.Errorf("Next() = %q in %s", got, got.Encoding())
	}
}
