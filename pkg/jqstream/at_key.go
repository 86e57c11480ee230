package jqstream

import "github.com/shapestone/jqstream/internal/automaton"

type atKeyState int

const (
	atKeyStart atKeyState = iota
	atKeyForwarding
)

// AtKey navigates into each top-level value of its upstream and, when that
// value is an object, forwards the member whose key matches. See
// NewAtKey / NewAtKeySuppress.
type AtKey struct {
	upstream   automaton.Stream
	key        string
	suppress   bool
	state      atKeyState
	innerDepth int
	pendingErr *automaton.Err
}

// NewAtKey builds the strict `.[key]` operator.
func NewAtKey(upstream automaton.Stream, key string) *AtKey {
	return &AtKey{upstream: upstream, key: key}
}

// NewAtKeySuppress builds the `.[key]?` operator: type mismatches are
// skipped instead of raised.
func NewAtKeySuppress(upstream automaton.Stream, key string) *AtKey {
	return &AtKey{upstream: upstream, key: key, suppress: true}
}

// Next implements Stream.
func (a *AtKey) Next() (automaton.Item, bool) {
	if a.pendingErr != nil {
		e := a.pendingErr
		a.pendingErr = nil
		return automaton.Item{Err: e}, true
	}
	if a.state == atKeyForwarding {
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

		case automaton.ObjectStart:
			return a.enterObject()

		case automaton.ArrayStart:
			ok2, err2 := skipContainer(a.upstream)
			if !ok2 {
				return automaton.Item{}, false
			}
			if err2 != nil {
				return automaton.Item{Err: err2}, true
			}
			if !a.suppress {
				return automaton.Item{Err: automaton.OpFailed("Cannot index array with string %q", a.key)}, true
			}
			continue

		default:
			if !a.suppress {
				return automaton.Item{Err: automaton.OpFailed("Cannot index %s with string %q", describeKind(item.Tok.Kind), a.key)}, true
			}
			continue
		}
	}
}

// enterObject has just consumed ObjectStart and searches for the matching
// key among this object's members.
func (a *AtKey) enterObject() (automaton.Item, bool) {
	for {
		keyItem, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if keyItem.Err != nil {
			return keyItem, true
		}
		if keyItem.Tok.Kind == automaton.ObjectEnd {
			return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
		}
		key := keyItem.Tok.Text

		colonItem, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if colonItem.Err != nil {
			return colonItem, true
		}

		firstVal, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if firstVal.Err != nil {
			return firstVal, true
		}

		if key == a.key {
			switch firstVal.Tok.Kind {
			case automaton.ObjectStart, automaton.ArrayStart:
				a.state = atKeyForwarding
				a.innerDepth = 1
			default:
				a.state = atKeyStart
				if ok2, err2 := drainObjectTail(a.upstream); ok2 && err2 != nil {
					a.pendingErr = err2
				}
			}
			return firstVal, true
		}

		// firstVal is already consumed: only a container has a remainder
		// left to skip.
		switch firstVal.Tok.Kind {
		case automaton.ObjectStart, automaton.ArrayStart:
			if ok2, err2 := skipContainer(a.upstream); !ok2 {
				return automaton.Item{}, false
			} else if err2 != nil {
				return automaton.Item{Err: err2}, true
			}
		}

		sep, ok := a.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if sep.Err != nil {
			return sep, true
		}
		if sep.Tok.Kind == automaton.ObjectEnd {
			return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
		}
		// sep.Tok.Kind == automaton.Comma: loop to read the next key.
	}
}

func (a *AtKey) continueForward() (automaton.Item, bool) {
	item, ok := a.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if item.Err != nil {
		a.state = atKeyStart
		return item, true
	}
	switch item.Tok.Kind {
	case automaton.ObjectStart, automaton.ArrayStart:
		a.innerDepth++
	case automaton.ObjectEnd, automaton.ArrayEnd:
		a.innerDepth--
	}
	if a.innerDepth == 0 {
		a.state = atKeyStart
		if ok2, err2 := drainObjectTail(a.upstream); ok2 && err2 != nil {
			a.pendingErr = err2
		}
	}
	return item, true
}
