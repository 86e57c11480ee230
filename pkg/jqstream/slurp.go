package jqstream

import "github.com/shapestone/jqstream/internal/automaton"

// pathStream is the subset of PathAware this operator needs: a Stream
// whose current scope depth is observable between pulls.
type pathStream interface {
	automaton.Stream
	Path() []automaton.Scope
}

type slurpState int

const (
	slurpBegin slurpState = iota
	slurpForwarding
	slurpArmedComma
	slurpArmedEnd
	slurpDone
)

// Slurp wraps zero or more top-level values from upstream in a synthetic
// outer array, turning a multi-document stream into a single array value.
type Slurp struct {
	upstream   pathStream
	state      slurpState
	bufTok     *automaton.Token
	pendingErr *automaton.Err
}

// NewSlurp builds the slurp operator over a path-aware upstream (typically
// a *Sanitized stream or another operator's output wrapped by Sanitize).
func NewSlurp(upstream pathStream) *Slurp {
	return &Slurp{upstream: upstream}
}

// Next implements Stream.
func (s *Slurp) Next() (automaton.Item, bool) {
	if s.pendingErr != nil {
		e := s.pendingErr
		s.pendingErr = nil
		s.state = slurpDone
		return automaton.Item{Err: e}, true
	}

	switch s.state {
	case slurpBegin:
		s.state = slurpForwarding
		return automaton.Item{Tok: automaton.Token{Kind: automaton.ArrayStart}}, true
	case slurpDone:
		return automaton.Item{}, false
	case slurpArmedComma:
		s.state = slurpForwarding
		return automaton.Item{Tok: automaton.Token{Kind: automaton.Comma}}, true
	case slurpArmedEnd:
		s.state = slurpDone
		return automaton.Item{Tok: automaton.Token{Kind: automaton.ArrayEnd}}, true
	}

	var tok automaton.Token
	if s.bufTok != nil {
		tok = *s.bufTok
		s.bufTok = nil
	} else {
		item, ok := s.upstream.Next()
		if !ok {
			// No top-level values were ever produced: empty input.
			s.state = slurpDone
			return automaton.Item{Tok: automaton.Token{Kind: automaton.ArrayEnd}}, true
		}
		if item.Err != nil {
			s.state = slurpDone
			return item, true
		}
		tok = item.Tok
	}

	if len(s.upstream.Path()) == 0 && isDocBoundary(tok.Kind) {
		peek, ok := s.upstream.Next()
		switch {
		case !ok:
			s.state = slurpArmedEnd
		case peek.Err != nil:
			s.pendingErr = peek.Err
			s.state = slurpForwarding
		case peek.Tok.Kind.IsValueStart():
			t := peek.Tok
			s.bufTok = &t
			s.state = slurpArmedComma
		default:
			s.pendingErr = automaton.Invalid()
			s.state = slurpForwarding
		}
	}

	return automaton.Item{Tok: tok}, true
}

func isDocBoundary(k automaton.Kind) bool {
	return k.IsLeaf() || k == automaton.ArrayEnd || k == automaton.ObjectEnd
}
