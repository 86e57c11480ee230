package charstream

import (
	"strings"
	"testing"
)

func TestCharLocator_LineColTracking(t *testing.T) {
	c := New(strings.NewReader("ab\ncd"))

	want := []struct {
		r    rune
		line int
		col  int
	}{
		{'a', 0, 0},
		{'b', 0, 1},
		{'\n', 0, 2},
		{'c', 1, 0},
		{'d', 1, 1},
	}

	for i, w := range want {
		r, loc, ok := c.Next()
		if !ok {
			t.Fatalf("rune %d: expected a rune, got EOF", i)
		}
		if r != w.r || loc.Line != w.line || loc.Col != w.col {
			t.Errorf("rune %d: got %q at %d:%d, want %q at %d:%d", i, r, loc.Line, loc.Col, w.r, w.line, w.col)
		}
	}

	if _, _, ok := c.Next(); ok {
		t.Fatal("expected EOF after consuming the whole input")
	}
}

func TestCharLocator_PeekDoesNotConsume(t *testing.T) {
	c := New(strings.NewReader("xy"))

	r1, loc1, ok := c.Peek()
	if !ok || r1 != 'x' {
		t.Fatalf("Peek() = %q, %v, want 'x', true", r1, ok)
	}
	r2, loc2, ok := c.Peek()
	if !ok || r2 != 'x' || loc1 != loc2 {
		t.Fatalf("second Peek() = %q, %v, want 'x', true with same location", r2, ok)
	}

	r3, _, ok := c.Next()
	if !ok || r3 != 'x' {
		t.Fatalf("Next() = %q, %v, want 'x', true", r3, ok)
	}

	r4, _, ok := c.Next()
	if !ok || r4 != 'y' {
		t.Fatalf("Next() = %q, %v, want 'y', true", r4, ok)
	}
}

func TestCharLocator_LocationReportsNextUnread(t *testing.T) {
	c := New(strings.NewReader("ab"))
	if loc := c.Location(); loc != (Location{0, 0}) {
		t.Fatalf("Location() before any read = %v, want 0:0", loc)
	}
	c.Next()
	if loc := c.Location(); loc != (Location{0, 1}) {
		t.Fatalf("Location() after one read = %v, want 0:1", loc)
	}
}

func TestLocation_String(t *testing.T) {
	loc := Location{Line: 3, Col: 7}
	if got := loc.String(); got != "3:7" {
		t.Errorf("String() = %q, want %q", got, "3:7")
	}
}
