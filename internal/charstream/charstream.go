package charstream

import (
	"bufio"
	"io"
)

// CharLocator pulls runes from an io.Reader one at a time, reporting the
// Location each rune was read from. It keeps a single rune of lookahead so
// callers (the lexer, mainly) can decide how to tokenize before consuming.
//
// A CharLocator is not safe for concurrent use; like the rest of this
// module's streams, it is meant to be driven from a single goroutine.
type CharLocator struct {
	r       *bufio.Reader
	nextLoc Location

	havePeek bool
	peekR    rune
	peekLoc  Location
}

// New wraps r with position tracking starting at line 0, column 0.
func New(r io.Reader) *CharLocator {
	return &CharLocator{r: bufio.NewReader(r)}
}

func (c *CharLocator) fill() {
	if c.havePeek {
		return
	}
	r, _, err := c.r.ReadRune()
	if err != nil {
		return
	}
	c.havePeek = true
	c.peekR = r
	c.peekLoc = c.nextLoc
}

// Peek reports the next rune and the Location it occupies without consuming
// it. ok is false once the underlying reader is exhausted.
func (c *CharLocator) Peek() (r rune, loc Location, ok bool) {
	c.fill()
	return c.peekR, c.peekLoc, c.havePeek
}

// Next consumes and returns the next rune along with the Location it was
// read from. ok is false once the underlying reader is exhausted; once
// false, Next keeps returning false (the reader is fused, matching the
// lexer's all-errors-and-EOF-are-terminal contract).
func (c *CharLocator) Next() (r rune, loc Location, ok bool) {
	c.fill()
	if !c.havePeek {
		return 0, c.nextLoc, false
	}
	r, loc = c.peekR, c.peekLoc
	if r == '\n' {
		c.nextLoc = Location{Line: loc.Line + 1, Col: 0}
	} else {
		c.nextLoc = Location{Line: loc.Line, Col: loc.Col + 1}
	}
	c.havePeek = false
	return r, loc, true
}

// Location reports the position of the next unread rune, i.e. where Next
// (or Peek) would place it.
func (c *CharLocator) Location() Location {
	if c.havePeek {
		return c.peekLoc
	}
	return c.nextLoc
}
