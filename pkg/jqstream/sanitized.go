package jqstream

import "github.com/shapestone/jqstream/internal/automaton"

// FuseOnError wraps any Stream and guarantees that once it has yielded an
// Err item, or its upstream has signalled clean exhaustion, every later
// Next call reports ok=false forever. This is what lets every downstream
// operator assume "no further output after an error" without re-checking
// upstream itself.
type FuseOnError struct {
	upstream automaton.Stream
	done     bool
}

// Fuse wraps upstream.
func Fuse(upstream automaton.Stream) *FuseOnError {
	return &FuseOnError{upstream: upstream}
}

// Next implements Stream.
func (f *FuseOnError) Next() (automaton.Item, bool) {
	if f.done {
		return automaton.Item{}, false
	}
	item, ok := f.upstream.Next()
	if !ok {
		f.done = true
		return automaton.Item{}, false
	}
	if item.Err != nil {
		f.done = true
	}
	return item, true
}

// Sanitized guarantees the two properties every operator in this module
// depends on: the token sequence is valid JSON (delegated to an internal
// StreamContext) and the stream is fused on its first error. It also
// exposes Path so operators built on top of it can make depth-based
// decisions.
type Sanitized struct {
	ctx *StreamContext
}

// Sanitize promotes any token stream to a Sanitized one. Sanitizing an
// already-sanitized stream is idempotent in effect: grammar validation
// simply re-confirms what is already true and fusing an already-fused
// stream changes nothing observable.
func Sanitize(upstream automaton.Stream) *Sanitized {
	return &Sanitized{ctx: NewStreamContext(Fuse(upstream))}
}

// Path reports the current scope stack.
func (s *Sanitized) Path() []automaton.Scope {
	return s.ctx.Path()
}

// Next implements Stream.
func (s *Sanitized) Next() (automaton.Item, bool) {
	return s.ctx.Next()
}
