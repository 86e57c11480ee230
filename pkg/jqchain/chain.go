// Package jqchain provides a fluent builder over pkg/jqstream's operator
// family, the way pkg/jsonpath exposes a chained selector API over its own
// query engine. A Chain wraps one Stream at a time; each method consumes
// the current stream and returns a new Chain wrapping the next stage, so
// calls compose left to right in source order:
//
//	jqchain.New(r).AtKey("users").Values().AtKey("name").Compact(w)
package jqchain

import (
	"bufio"
	"io"
	"strings"

	"github.com/shapestone/jqstream/internal/automaton"
	"github.com/shapestone/jqstream/pkg/jqstream"
)

// Chain wraps the current stage of an operator pipeline.
type Chain struct {
	stream automaton.Stream
}

// New starts a chain by parsing JSON text from r.
func New(r io.Reader) *Chain {
	return &Chain{stream: jqstream.Parse(r)}
}

// FromStream starts a chain from an already-built Stream, e.g. one coming
// from another Chain's Stream method.
func FromStream(s automaton.Stream) *Chain {
	return &Chain{stream: s}
}

// Null starts a chain over a single synthetic Null value, matching
// jqstream.Null's convenience role for probing operator behavior without
// a real document.
func Null() *Chain {
	return &Chain{stream: jqstream.Null()}
}

// Stream returns the chain's current Stream, for handing off to another
// Chain or to a caller that wants to drive Next itself.
func (c *Chain) Stream() automaton.Stream {
	return c.stream
}

// sanitized re-validates and fuses the current stream, producing a
// PathAware stream the next depth-sensitive stage can consume. Every
// operator's output is itself a well-formed token stream, so re-sanitizing
// between stages is how a Chain recovers scope tracking after an operator
// that does not itself expose Path().
func (c *Chain) sanitized() *jqstream.Sanitized {
	return jqstream.Sanitize(c.stream)
}

// AtKey applies the strict `.key` operator.
func (c *Chain) AtKey(key string) *Chain {
	return &Chain{stream: jqstream.NewAtKey(c.sanitized(), key)}
}

// AtKeySuppress applies the `.key?` operator.
func (c *Chain) AtKeySuppress(key string) *Chain {
	return &Chain{stream: jqstream.NewAtKeySuppress(c.sanitized(), key)}
}

// AtIndex applies the strict `.[i]` operator for any integer index,
// positive or negative.
func (c *Chain) AtIndex(i int) *Chain {
	if i < 0 {
		return &Chain{stream: jqstream.NewAtIndexNeg(c.sanitized(), -i)}
	}
	return &Chain{stream: jqstream.NewAtIndex(c.sanitized(), i)}
}

// AtIndexSuppress applies the `.[i]?` operator for any integer index.
func (c *Chain) AtIndexSuppress(i int) *Chain {
	if i < 0 {
		return &Chain{stream: jqstream.NewAtIndexNegSuppress(c.sanitized(), -i)}
	}
	return &Chain{stream: jqstream.NewAtIndexSuppress(c.sanitized(), i)}
}

// AtNumberIndex is the deprecated float-index entry point preserved for
// callers translating a JQ-style numeric literal directly; prefer AtIndex.
//
// Deprecated: use AtIndex with an integer index.
func (c *Chain) AtNumberIndex(f float64, suppress bool) *Chain {
	return &Chain{stream: jqstream.AtNumberIndex(c.sanitized(), f, suppress)}
}

// Values applies the strict `.[]` operator.
func (c *Chain) Values() *Chain {
	return &Chain{stream: jqstream.NewValues(c.sanitized())}
}

// ValuesSuppress applies the `.[]?` operator.
func (c *Chain) ValuesSuppress() *Chain {
	return &Chain{stream: jqstream.NewValuesSuppress(c.sanitized())}
}

// Slurp wraps all remaining top-level values into one synthetic array.
func (c *Chain) Slurp() *Chain {
	return &Chain{stream: jqstream.NewSlurp(c.sanitized())}
}

// Compact renders the chain's remaining output as compact JSON text onto w,
// returning the first error encountered (lexical, grammar, or operator).
func (c *Chain) Compact(w io.Writer) error {
	return drain(jqstream.NewCompactChars(c.sanitized()), w)
}

// ToString renders the chain's remaining output as a single compact JSON
// string.
func (c *Chain) ToString() (string, error) {
	return collect(jqstream.NewCompactChars(c.sanitized()))
}

// Pretty renders the chain's remaining output as indented JSON text onto w.
func (c *Chain) Pretty(w io.Writer) error {
	return drain(jqstream.NewPrettyChars(c.sanitized()), w)
}

// ToStringPretty renders the chain's remaining output as a single indented
// JSON string.
func (c *Chain) ToStringPretty() (string, error) {
	return collect(jqstream.NewPrettyChars(c.sanitized()))
}

// errStream is implemented by both renderer types; it exposes the terminal
// error a CharStream itself has no room to carry.
type errStream interface {
	jqstream.CharStream
	Err() *jqstream.Err
}

func drain(cs errStream, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for {
		r, ok := cs.Next()
		if !ok {
			if err := cs.Err(); err != nil {
				return err
			}
			return bw.Flush()
		}
		if _, err := bw.WriteRune(r); err != nil {
			return err
		}
	}
}

func collect(cs errStream) (string, error) {
	var sb strings.Builder
	for {
		r, ok := cs.Next()
		if !ok {
			if err := cs.Err(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}
