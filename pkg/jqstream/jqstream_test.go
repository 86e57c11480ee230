package jqstream

import (
	"strings"
	"testing"
)

// renderCompact renders every remaining top-level value from s back to
// compact text, failing the test on any error.
func renderCompact(t *testing.T, s PathAware) string {
	t.Helper()
	cc := NewCompactChars(s)
	var sb strings.Builder
	for {
		r, ok := cc.Next()
		if !ok {
			if err := cc.Err(); err != nil {
				t.Fatalf("render error: %v", err)
			}
			return sb.String()
		}
		sb.WriteRune(r)
	}
}

func parseOrFail(t *testing.T, input string) *Sanitized {
	t.Helper()
	return Parse(strings.NewReader(input))
}

func TestParse_RoundTripsCompact(t *testing.T) {
	tests := []string{
		`{"a":1,"b":[1,2,3]}`,
		`[]`,
		`{}`,
		`null`,
		`true false null 1 "x"`,
		`{"nested":{"x":[1,{"y":2}]}}`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			out := renderCompact(t, parseOrFail(t, in))
			want := in + "\n"
			if in == `true false null 1 "x"` {
				want = "true\nfalse\nnull\n1\n\"x\"\n"
			}
			if out != want {
				t.Errorf("got %q, want %q", out, want)
			}
		})
	}
}

func TestParse_RejectsTrailingComma(t *testing.T) {
	s := Parse(strings.NewReader(`[1,2,]`))
	var lastErr *Err
	for {
		item, ok := s.Next()
		if !ok {
			break
		}
		if item.Err != nil {
			lastErr = item.Err
			break
		}
	}
	if lastErr == nil {
		t.Fatal("expected an error for a trailing comma")
	}
}

func TestFuseOnError_LatchesAfterFirstError(t *testing.T) {
	s := Parse(strings.NewReader(`[1, }`))
	var errs int
	for i := 0; i < 5; i++ {
		item, ok := s.Next()
		if !ok {
			break
		}
		if item.Err != nil {
			errs++
		}
	}
	if errs != 1 {
		t.Errorf("got %d error items, want exactly 1 (fuse must latch closed)", errs)
	}
}

func TestAtKey_StrictMatch(t *testing.T) {
	s := NewAtKey(parseOrFail(t, `{"a":1,"b":2}`), "b")
	got := renderCompact(t, Sanitize(s))
	if got != "2\n" {
		t.Errorf("got %q, want %q", got, "2\n")
	}
}

func TestAtKey_MissingKeyYieldsNull(t *testing.T) {
	s := NewAtKey(parseOrFail(t, `{"a":1}`), "missing")
	got := renderCompact(t, Sanitize(s))
	if got != "null\n" {
		t.Errorf("got %q, want %q", got, "null\n")
	}
}

func TestAtKey_NullInputYieldsNull(t *testing.T) {
	s := NewAtKey(parseOrFail(t, `null`), "a")
	got := renderCompact(t, Sanitize(s))
	if got != "null\n" {
		t.Errorf("got %q, want %q", got, "null\n")
	}
}

func TestAtKey_NestedValueForwardedWhole(t *testing.T) {
	s := NewAtKey(parseOrFail(t, `{"a":{"x":1,"y":[1,2]}}`), "a")
	got := renderCompact(t, Sanitize(s))
	if got != `{"x":1,"y":[1,2]}`+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestAtKey_StrictErrorsOnArray(t *testing.T) {
	s := NewAtKey(parseOrFail(t, `[1,2]`), "a")
	item, ok := s.Next()
	if !ok || item.Err == nil {
		t.Fatalf("expected a StreamOperationFailed error, got ok=%v err=%v", ok, item.Err)
	}
	if item.Err.Kind != KindStreamOperationFailed {
		t.Errorf("got %v, want StreamOperationFailed", item.Err.Kind)
	}
}

func TestAtKeySuppress_SkipsNonNullScalarMismatch(t *testing.T) {
	// See DESIGN.md "Resolved spec-internal inconsistency: scenario 5 vs
	// §4.5": suppressed at_key over a non-null scalar produces no output
	// for that document, not a synthetic Null.
	s := NewAtKeySuppress(parseOrFail(t, `1 "x" null`), "foo")
	got := renderCompact(t, Sanitize(s))
	if got != "null\n" {
		t.Errorf("got %q, want a single null (only the literal null input yields one)", got)
	}
}

func TestAtIndex_Positive(t *testing.T) {
	s := NewAtIndex(parseOrFail(t, `[10,20,30]`), 1)
	got := renderCompact(t, Sanitize(s))
	if got != "20\n" {
		t.Errorf("got %q, want %q", got, "20\n")
	}
}

func TestAtIndex_OutOfRangeYieldsNull(t *testing.T) {
	s := NewAtIndex(parseOrFail(t, `[1,2]`), 5)
	got := renderCompact(t, Sanitize(s))
	if got != "null\n" {
		t.Errorf("got %q, want %q", got, "null\n")
	}
}

func TestAtIndexNeg_SecondToLastElement(t *testing.T) {
	s := NewAtIndexNeg(parseOrFail(t, `[10,20,30,40]`), 2)
	got := renderCompact(t, Sanitize(s))
	if got != "30\n" {
		t.Errorf("got %q, want %q", got, "30\n")
	}
}

func TestAtIndexNeg_EmptyArrayYieldsNull(t *testing.T) {
	s := NewAtIndexNeg(parseOrFail(t, `[]`), 1)
	got := renderCompact(t, Sanitize(s))
	if got != "null\n" {
		t.Errorf("got %q, want %q", got, "null\n")
	}
}

func TestAtIndexNeg_ShorterThanRingYieldsNull(t *testing.T) {
	s := NewAtIndexNeg(parseOrFail(t, `[1,2]`), 5)
	got := renderCompact(t, Sanitize(s))
	if got != "null\n" {
		t.Errorf("got %q, want %q", got, "null\n")
	}
}

func TestAtNumberIndex_RoundsPerDirection(t *testing.T) {
	// -1.5 ceils to -1 (last element); 1.5 floors to 1 (second element).
	neg := AtNumberIndex(parseOrFail(t, `[10,20,30]`), -1.5, false)
	if got := renderCompact(t, Sanitize(neg)); got != "30\n" {
		t.Errorf("ceil(-1.5)=-1: got %q, want %q", got, "30\n")
	}
	pos := AtNumberIndex(parseOrFail(t, `[10,20,30]`), 1.5, false)
	if got := renderCompact(t, Sanitize(pos)); got != "20\n" {
		t.Errorf("floor(1.5)=1: got %q, want %q", got, "20\n")
	}
}

func TestValues_Array(t *testing.T) {
	s := NewValues(parseOrFail(t, `[1,2,3]`))
	got := renderCompact(t, Sanitize(s))
	if got != "1\n2\n3\n" {
		t.Errorf("got %q, want %q", got, "1\n2\n3\n")
	}
}

func TestValues_ObjectYieldsValuesNotKeys(t *testing.T) {
	s := NewValues(parseOrFail(t, `{"a":1,"b":2}`))
	got := renderCompact(t, Sanitize(s))
	if got != "1\n2\n" {
		t.Errorf("got %q, want %q", got, "1\n2\n")
	}
}

func TestValues_EmptyArrayYieldsNothing(t *testing.T) {
	s := NewValues(parseOrFail(t, `[]`))
	got := renderCompact(t, Sanitize(s))
	if got != "" {
		t.Errorf("got %q, want empty output", got)
	}
}

func TestValuesSuppress_SkipsScalars(t *testing.T) {
	s := NewValuesSuppress(parseOrFail(t, `1 [2,3] "x"`))
	got := renderCompact(t, Sanitize(s))
	if got != "2\n3\n" {
		t.Errorf("got %q, want %q", got, "2\n3\n")
	}
}

func TestValues_StrictErrorsOnScalar(t *testing.T) {
	s := NewValues(parseOrFail(t, `1`))
	item, ok := s.Next()
	if !ok || item.Err == nil {
		t.Fatalf("expected a StreamOperationFailed error, got ok=%v err=%v", ok, item.Err)
	}
}

func TestSlurp_WrapsMultipleDocuments(t *testing.T) {
	s := NewSlurp(parseOrFail(t, `1 2 3`))
	got := renderCompact(t, Sanitize(s))
	if got != "[1,2,3]\n" {
		t.Errorf("got %q, want %q", got, "[1,2,3]\n")
	}
}

func TestSlurp_EmptyInputYieldsEmptyArray(t *testing.T) {
	s := NewSlurp(parseOrFail(t, ``))
	got := renderCompact(t, Sanitize(s))
	if got != "[]\n" {
		t.Errorf("got %q, want %q", got, "[]\n")
	}
}

func TestSlurp_SingleCompositeDocument(t *testing.T) {
	s := NewSlurp(parseOrFail(t, `{"a":1}`))
	got := renderCompact(t, Sanitize(s))
	if got != `[{"a":1}]`+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestChain_AtKeyThenValues(t *testing.T) {
	inner := NewAtKey(parseOrFail(t, `{"items":[1,2,3]}`), "items")
	outer := NewValues(Sanitize(inner))
	got := renderCompact(t, Sanitize(outer))
	if got != "1\n2\n3\n" {
		t.Errorf("got %q, want %q", got, "1\n2\n3\n")
	}
}

func TestPretty_NonEmptyObjectIndents(t *testing.T) {
	s := parseOrFail(t, `{"a":1,"b":[2,3]}`)
	pc := NewPrettyChars(s)
	var sb strings.Builder
	for {
		r, ok := pc.Next()
		if !ok {
			if err := pc.Err(); err != nil {
				t.Fatalf("render error: %v", err)
			}
			break
		}
		sb.WriteRune(r)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestPretty_EmptyContainersRenderInline(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{`{}`, "{}"},
		{`[]`, "[]"},
	} {
		s := parseOrFail(t, tt.in)
		pc := NewPrettyChars(s)
		var sb strings.Builder
		for {
			r, ok := pc.Next()
			if !ok {
				break
			}
			sb.WriteRune(r)
		}
		if sb.String() != tt.want {
			t.Errorf("%s: got %q, want %q", tt.in, sb.String(), tt.want)
		}
	}
}

func TestNullSource(t *testing.T) {
	got := renderCompact(t, Sanitize(Null()))
	if got != "null\n" {
		t.Errorf("got %q, want %q", got, "null\n")
	}
}
