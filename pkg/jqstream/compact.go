package jqstream

import (
	"strconv"

	"github.com/shapestone/jqstream/internal/automaton"
)

// CompactChars renders a sanitized token stream as compact JSON text,
// terminating in the first error (retrievable via Err) or cleanly once
// upstream ends. It queues at most one token's worth of characters at a
// time, matching this module's "no unbounded buffering" resource policy.
type CompactChars struct {
	upstream pathStream
	queue    []rune
	pos      int
	done     bool
	err      *automaton.Err
}

// NewCompactChars builds the compact renderer over upstream.
func NewCompactChars(upstream pathStream) *CompactChars {
	return &CompactChars{upstream: upstream}
}

// Err reports the error that ended the stream, if any.
func (c *CompactChars) Err() *automaton.Err { return c.err }

// Next implements CharStream.
func (c *CompactChars) Next() (rune, bool) {
	for c.pos >= len(c.queue) {
		if c.done {
			return 0, false
		}
		item, ok := c.upstream.Next()
		if !ok {
			c.done = true
			return 0, false
		}
		if item.Err != nil {
			c.done = true
			c.err = item.Err
			return 0, false
		}

		c.queue = renderCompactToken(item.Tok)
		if len(c.upstream.Path()) == 0 && isDocBoundary(item.Tok.Kind) {
			c.queue = append(c.queue, '\n')
		}
		c.pos = 0
	}
	r := c.queue[c.pos]
	c.pos++
	return r, true
}

func renderCompactToken(tok automaton.Token) []rune {
	switch tok.Kind {
	case automaton.ObjectStart:
		return []rune{'{'}
	case automaton.ObjectEnd:
		return []rune{'}'}
	case automaton.ArrayStart:
		return []rune{'['}
	case automaton.ArrayEnd:
		return []rune{']'}
	case automaton.Colon:
		return []rune{':'}
	case automaton.Comma:
		return []rune{','}
	case automaton.String:
		return quoteRunes(tok.Text)
	case automaton.Number:
		return []rune(tok.Text)
	case automaton.ParsedNumber:
		return []rune(strconv.FormatFloat(tok.Num, 'g', -1, 64))
	case automaton.True:
		return []rune("true")
	case automaton.False:
		return []rune("false")
	case automaton.Null:
		return []rune("null")
	default:
		return nil
	}
}

// quoteRunes re-escapes a decoded string for output. The stored text is
// already unescaped (no escape sequences survive tokenizing), so this is
// the renderer's own responsibility, not a round-trip of the original
// source text.
func quoteRunes(s string) []rune {
	out := make([]rune, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		switch r {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		default:
			if r < 0x20 {
				out = append(out, []rune(`\u00`)...)
				out = append(out, hexDigit(byte(r)>>4), hexDigit(byte(r)&0xf))
			} else {
				out = append(out, r)
			}
		}
	}
	out = append(out, '"')
	return out
}

func hexDigit(b byte) rune {
	const digits = "0123456789abcdef"
	return rune(digits[b&0xf])
}
