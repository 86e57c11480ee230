package jqstream

import (
	"math"

	"github.com/shapestone/jqstream/internal/automaton"
)

type atIndexState int

const (
	atIndexStart atIndexState = iota
	atIndexForwarding
)

// AtIndex navigates into each top-level value and, when it is an array,
// forwards its i-th element (i >= 0) directly, by counting commas.
type AtIndex struct {
	upstream   automaton.Stream
	index      int
	suppress   bool
	state      atIndexState
	innerDepth int
	pendingErr *automaton.Err
}

// NewAtIndex builds the strict `.[i]` operator for a non-negative index.
// Use NewAtIndexNeg for negative indices.
func NewAtIndex(upstream automaton.Stream, index int) *AtIndex {
	return &AtIndex{upstream: upstream, index: index}
}

// NewAtIndexSuppress builds the `.[i]?` operator for a non-negative index.
func NewAtIndexSuppress(upstream automaton.Stream, index int) *AtIndex {
	return &AtIndex{upstream: upstream, index: index, suppress: true}
}

// Next implements Stream.
func (a *AtIndex) Next() (automaton.Item, bool) {
	if a.pendingErr != nil {
		e := a.pendingErr
		a.pendingErr = nil
		return automaton.Item{Err: e}, true
	}
	if a.state == atIndexForwarding {
		return a.continueForward()
	}

	for {
		item, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if item.Err != nil {
			return item, true
		}

		switch item.Tok.Kind {
		case automaton.Null:
			return item, true

		case automaton.ArrayStart:
			return a.enterArray()

		case automaton.ObjectStart:
			ok2, err2 := skipContainer(a.upstream)
			if !ok2 {
				return automaton.Item{}, false
			}
			if err2 != nil {
				return automaton.Item{Err: err2}, true
			}
			if !a.suppress {
				return automaton.Item{Err: automaton.OpFailed("Cannot index object with number")}, true
			}
			continue

		default:
			if !a.suppress {
				return automaton.Item{Err: automaton.OpFailed("Cannot index %s with number", describeKind(item.Tok.Kind))}, true
			}
			continue
		}
	}
}

func (a *AtIndex) enterArray() (automaton.Item, bool) {
	count := 0
	for {
		if count == a.index {
			first, ok := a.upstream.Next()
			if !ok {
				return automaton.Item{}, false
			}
			if first.Err != nil {
				return first, true
			}
			if first.Tok.Kind == automaton.ArrayEnd {
				return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
			}
			switch first.Tok.Kind {
			case automaton.ObjectStart, automaton.ArrayStart:
				a.state = atIndexForwarding
				a.innerDepth = 1
			default:
				a.state = atIndexStart
				if ok2, err2 := drainArrayTail(a.upstream); ok2 && err2 != nil {
					a.pendingErr = err2
				}
			}
			return first, true
		}

		skipped, ok2, err2 := collectElement(a.upstream)
		if !ok2 {
			return automaton.Item{}, false
		} else if err2 != nil {
			return automaton.Item{Err: err2}, true
		}
		if skipped[0].Kind == automaton.ArrayEnd {
			// Empty array: there is no element to skip.
			return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
		}

		sep, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if sep.Err != nil {
			return sep, true
		}
		if sep.Tok.Kind == automaton.ArrayEnd {
			return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
		}
		count++
	}
}

func (a *AtIndex) continueForward() (automaton.Item, bool) {
	item, ok := a.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if item.Err != nil {
		a.state = atIndexStart
		return item, true
	}
	switch item.Tok.Kind {
	case automaton.ObjectStart, automaton.ArrayStart:
		a.innerDepth++
	case automaton.ObjectEnd, automaton.ArrayEnd:
		a.innerDepth--
	}
	if a.innerDepth == 0 {
		a.state = atIndexStart
		if ok2, err2 := drainArrayTail(a.upstream); ok2 && err2 != nil {
			a.pendingErr = err2
		}
	}
	return item, true
}

// AtIndexNeg implements `.[i]` for i < 0: the element's position from the
// end is unknown until the array closes, so it keeps a ring buffer of the
// last |i| elements' full token lists and replays the right one once the
// array ends.
type AtIndexNeg struct {
	upstream automaton.Stream
	n        int // |i|
	suppress bool

	replay   []automaton.Token
	replayAt int
	replaying bool
}

// NewAtIndexNeg builds the strict `.[i]` operator for a negative index. i
// must be negative; n is |i|. Use NewAtIndexNegSuppress for `.[i]?`.
func NewAtIndexNeg(upstream automaton.Stream, n int) *AtIndexNeg {
	return &AtIndexNeg{upstream: upstream, n: n}
}

// NewAtIndexNegSuppress builds the `.[i]?` operator for a negative index.
func NewAtIndexNegSuppress(upstream automaton.Stream, n int) *AtIndexNeg {
	return &AtIndexNeg{upstream: upstream, n: n, suppress: true}
}

// Next implements Stream.
func (a *AtIndexNeg) Next() (automaton.Item, bool) {
	if a.replaying {
		if a.replayAt < len(a.replay) {
			tok := a.replay[a.replayAt]
			a.replayAt++
			if a.replayAt == len(a.replay) {
				a.replaying = false
				a.replay = nil
			}
			return automaton.Item{Tok: tok}, true
		}
		a.replaying = false
	}

	item, ok := a.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if item.Err != nil {
		return item, true
	}

	switch item.Tok.Kind {
	case automaton.Null:
		return item, true
	case automaton.ArrayStart:
		return a.collectAndReplay()
	default:
		if item.Tok.Kind == automaton.ObjectStart {
			if ok2, err2 := skipContainer(a.upstream); !ok2 {
				return automaton.Item{}, false
			} else if err2 != nil {
				return automaton.Item{Err: err2}, true
			}
		}
		if a.suppress {
			return a.Next()
		}
		return automaton.Item{Err: automaton.OpFailed("Cannot index %s with number", describeKind(item.Tok.Kind))}, true
	}
}

func (a *AtIndexNeg) collectAndReplay() (automaton.Item, bool) {
	var ring [][]automaton.Token

	for {
		peek, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if peek.Err != nil {
			return peek, true
		}
		if peek.Tok.Kind == automaton.ArrayEnd {
			break
		}

		toks := []automaton.Token{peek.Tok}
		depth := 0
		switch peek.Tok.Kind {
		case automaton.ObjectStart, automaton.ArrayStart:
			depth = 1
		}
		for depth > 0 {
			inner, ok2 := a.upstream.Next()
			if !ok2 {
				return automaton.Item{}, false
			}
			if inner.Err != nil {
				return inner, true
			}
			toks = append(toks, inner.Tok)
			switch inner.Tok.Kind {
			case automaton.ObjectStart, automaton.ArrayStart:
				depth++
			case automaton.ObjectEnd, automaton.ArrayEnd:
				depth--
			}
		}

		ring = append(ring, toks)
		if len(ring) > a.n {
			ring = ring[1:]
		}

		sep, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if sep.Err != nil {
			return sep, true
		}
		if sep.Tok.Kind == automaton.ArrayEnd {
			break
		}
	}

	if len(ring) < a.n {
		return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
	}

	chosen := ring[len(ring)-a.n]
	if len(chosen) == 0 {
		return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
	}
	first := chosen[0]
	if len(chosen) > 1 {
		a.replay = chosen[1:]
		a.replayAt = 0
		a.replaying = true
	}
	return automaton.Item{Tok: first}, true
}

// AtNumberIndex is the deprecated float-index entry point: f is converted
// to an integer index using ceil for negative values and floor for
// non-negative ones, matching reference JQ's public contract, and the
// resulting stream behaves exactly like AtIndex/AtIndexNeg.
func AtNumberIndex(upstream automaton.Stream, f float64, suppress bool) automaton.Stream {
	var idx int
	if f < 0 {
		idx = int(math.Ceil(f))
	} else {
		idx = int(math.Floor(f))
	}
	if idx < 0 {
		if suppress {
			return NewAtIndexNegSuppress(upstream, -idx)
		}
		return NewAtIndexNeg(upstream, -idx)
	}
	if suppress {
		return NewAtIndexSuppress(upstream, idx)
	}
	return NewAtIndex(upstream, idx)
}
