// Package jqstream implements a streaming, lazily-pulled JSON query engine:
// a tokenizer and grammar validator feeding a small family of stream
// operators (at_key, at_index, values, slurp) and two renderers (compact,
// pretty), composed the way a JQ pipeline composes filters, but without
// ever materializing a document tree.
//
// Every exported stream type implements Stream and is meant to be driven
// from a single goroutine: Next is not safe for concurrent use.
package jqstream

import (
	"io"

	"github.com/shapestone/jqstream/internal/automaton"
	"github.com/shapestone/jqstream/internal/charstream"
	"github.com/shapestone/jqstream/internal/lexer"
)

// Re-exported vocabulary so callers never need to import this module's
// internal packages directly.
type (
	Kind     = automaton.Kind
	Token    = automaton.Token
	Scope    = automaton.Scope
	ScopeKind = automaton.ScopeKind
	Item     = automaton.Item
	ErrKind  = automaton.ErrKind
	Err      = automaton.Err
	Location = charstream.Location
	Span     = charstream.Span
)

const (
	ObjectStart  = automaton.ObjectStart
	ObjectEnd    = automaton.ObjectEnd
	ArrayStart   = automaton.ArrayStart
	ArrayEnd     = automaton.ArrayEnd
	Colon        = automaton.Colon
	Comma        = automaton.Comma
	StringKind   = automaton.String
	NumberKind   = automaton.Number
	ParsedNumber = automaton.ParsedNumber
	TrueKind     = automaton.True
	FalseKind    = automaton.False
	NullKind     = automaton.Null
)

const (
	KindUnexpectedEOF            = automaton.UnexpectedEOF
	KindUnexpectedCharacter      = automaton.UnexpectedCharacter
	KindIllegalLeading0          = automaton.IllegalLeading0
	KindUnescapedEscapeCharacter = automaton.UnescapedEscapeCharacter
	KindInvalidEscapeSequence    = automaton.InvalidEscapeSequence
	KindInvalidStream            = automaton.InvalidStream
	KindStreamOperationFailed    = automaton.StreamOperationFailed
)

// Stream is the single pull capability every stage of a pipeline exposes.
type Stream = automaton.Stream

// CharStream is a lazy source or sink of Unicode scalar values.
type CharStream = automaton.CharStream

// ScopeArray, ScopeObject, and ScopeObjectAtKey name the three shapes a
// Scope frame can take.
const (
	ScopeArray      = automaton.ScopeArray
	ScopeObject     = automaton.ScopeObject
	ScopeObjectAtKey = automaton.ScopeObjectAtKey
)

// PathAware is implemented by every stream that tracks structural depth,
// letting operators built on top of it make depth-based decisions before
// consuming the next token.
type PathAware interface {
	Stream
	Path() []Scope
}

// Tokenize builds a fresh (unvalidated) lexical token stream over r. Most
// callers want Parse instead, which also validates the grammar.
func Tokenize(r io.Reader) *lexer.Lexer {
	return lexer.New(r)
}

// Parse builds a grammar-validated, fused token stream over r: a
// RawTokenStream driving the lexer. This is the usual entry point for
// turning raw JSON text into a Stream usable by the operator family.
func Parse(r io.Reader) *Sanitized {
	return Sanitize(NewRawTokenStream(r))
}
