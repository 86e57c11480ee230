package jqstream

import "github.com/shapestone/jqstream/internal/automaton"

// StreamContext drives the grammar validator from an already-tokenized
// upstream (any Stream, including another operator's output). Unlike
// RawTokenStream it has no source location to attach to a rejected
// transition, so it reports InvalidStream instead.
type StreamContext struct {
	upstream automaton.Stream
	machine  *automaton.Machine
	done     bool
}

// NewStreamContext wraps upstream with grammar validation and path
// tracking.
func NewStreamContext(upstream automaton.Stream) *StreamContext {
	return &StreamContext{upstream: upstream, machine: automaton.New()}
}

// Path reports the current scope stack; see automaton.Machine.Path.
func (s *StreamContext) Path() []automaton.Scope {
	return s.machine.Path()
}

// Next implements Stream.
func (s *StreamContext) Next() (automaton.Item, bool) {
	if s.done {
		return automaton.Item{}, false
	}

	item, ok := s.upstream.Next()
	if !ok {
		s.done = true
		return automaton.Item{}, false
	}
	if item.Err != nil {
		s.done = true
		return item, true
	}

	if !s.machine.Step(item.Tok.Kind, item.Tok.Text) {
		s.done = true
		return automaton.Item{Err: automaton.Invalid()}, true
	}

	return item, true
}
