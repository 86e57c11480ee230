package jqstream

import (
	"io"

	"github.com/shapestone/jqstream/internal/automaton"
	"github.com/shapestone/jqstream/internal/lexer"
)

// RawTokenStream drives the grammar validator directly from the lexer's
// lexical tokens, so a grammar violation is reported as an
// UnexpectedCharacter at the offending token's source location rather
// than as a bare InvalidStream.
type RawTokenStream struct {
	lex     *lexer.Lexer
	machine *automaton.Machine
	done    bool
}

// NewRawTokenStream builds a RawTokenStream reading JSON text from r.
func NewRawTokenStream(r io.Reader) *RawTokenStream {
	return &RawTokenStream{lex: lexer.New(r), machine: automaton.New()}
}

// Path reports the current scope stack; see automaton.Machine.Path.
func (s *RawTokenStream) Path() []automaton.Scope {
	return s.machine.Path()
}

// Next implements Stream.
func (s *RawTokenStream) Next() (automaton.Item, bool) {
	if s.done {
		return automaton.Item{}, false
	}

	item, ok := s.lex.Next()
	if !ok {
		s.done = true
		if s.machine.Depth() != 0 {
			// Input ended inside an unclosed container.
			return automaton.Item{Err: automaton.EOF()}, true
		}
		return automaton.Item{}, false
	}
	if item.Err != nil {
		s.done = true
		return automaton.Item{Err: item.Err}, true
	}

	if !s.machine.Step(item.Tok.Kind, item.Tok.Text) {
		s.done = true
		return automaton.Item{Err: automaton.AtLoc(automaton.UnexpectedCharacter, item.Span.Start)}, true
	}

	return automaton.Item{Tok: item.Tok}, true
}
