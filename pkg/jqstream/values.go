package jqstream

import "github.com/shapestone/jqstream/internal/automaton"

type valuesState int

const (
	valuesStart valuesState = iota
	valuesForwarding
	valuesBetween
)

// Values implements `.[]` / `.[]?`: for each top-level input value, it
// yields every array element, or every object member's value, as its own
// separate top-level output value.
type Values struct {
	upstream   automaton.Stream
	suppress   bool
	state      valuesState
	innerDepth int
	container  automaton.Kind // ArrayStart or ObjectStart, while inside one
	pendingErr *automaton.Err
}

// NewValues builds the strict `.[]` operator.
func NewValues(upstream automaton.Stream) *Values {
	return &Values{upstream: upstream}
}

// NewValuesSuppress builds the `.[]?` operator.
func NewValuesSuppress(upstream automaton.Stream) *Values {
	return &Values{upstream: upstream, suppress: true}
}

// Next implements Stream.
func (v *Values) Next() (automaton.Item, bool) {
	if v.pendingErr != nil {
		e := v.pendingErr
		v.pendingErr = nil
		return automaton.Item{Err: e}, true
	}

	switch v.state {
	case valuesForwarding:
		return v.continueForward()
	case valuesBetween:
		return v.afterElement()
	}

	for {
		item, ok := v.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if item.Err != nil {
			return item, true
		}

		switch item.Tok.Kind {
		case automaton.ArrayStart:
			v.container = automaton.ArrayStart
			return v.startElement()
		case automaton.ObjectStart:
			v.container = automaton.ObjectStart
			return v.startMember()
		default:
			if !v.suppress {
				return automaton.Item{Err: automaton.OpFailed("Cannot iterate over %s", describeKind(item.Tok.Kind))}, true
			}
			continue
		}
	}
}

// startElement has just consumed ArrayStart and forwards the first element
// (or finishes immediately on an empty array).
func (v *Values) startElement() (automaton.Item, bool) {
	first, ok := v.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if first.Err != nil {
		return first, true
	}
	if first.Tok.Kind == automaton.ArrayEnd {
		v.state = valuesStart
		return v.Next()
	}
	return v.beginForward(first)
}

// startMember has just consumed ObjectStart; object iteration yields
// values, so the key and colon are consumed without being forwarded.
func (v *Values) startMember() (automaton.Item, bool) {
	keyItem, ok := v.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if keyItem.Err != nil {
		return keyItem, true
	}
	if keyItem.Tok.Kind == automaton.ObjectEnd {
		v.state = valuesStart
		return v.Next()
	}
	colonItem, ok := v.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if colonItem.Err != nil {
		return colonItem, true
	}
	first, ok := v.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if first.Err != nil {
		return first, true
	}
	return v.beginForward(first)
}

func (v *Values) beginForward(first automaton.Item) (automaton.Item, bool) {
	switch first.Tok.Kind {
	case automaton.ObjectStart, automaton.ArrayStart:
		v.state = valuesForwarding
		v.innerDepth = 1
	default:
		v.state = valuesBetween
	}
	return first, true
}

func (v *Values) continueForward() (automaton.Item, bool) {
	item, ok := v.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if item.Err != nil {
		v.state = valuesStart
		return item, true
	}
	switch item.Tok.Kind {
	case automaton.ObjectStart, automaton.ArrayStart:
		v.innerDepth++
	case automaton.ObjectEnd, automaton.ArrayEnd:
		v.innerDepth--
	}
	if v.innerDepth == 0 {
		v.state = valuesBetween
	}
	return item, true
}

// afterElement has just completed one element/member and expects either a
// separator (continue iterating) or the container's close (done).
func (v *Values) afterElement() (automaton.Item, bool) {
	sep, ok := v.upstream.Next()
	if !ok {
		return automaton.Item{}, false
	}
	if sep.Err != nil {
		v.state = valuesStart
		return sep, true
	}

	switch sep.Tok.Kind {
	case automaton.Comma:
		if v.container == automaton.ArrayStart {
			v.state = valuesStart
			return v.startElement()
		}
		// Object: consume the next key/colon, then forward its value.
		keyItem, ok := v.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if keyItem.Err != nil {
			return keyItem, true
		}
		colonItem, ok := v.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if colonItem.Err != nil {
			return colonItem, true
		}
		first, ok := v.upstream.Next()
		if !ok {
			return automaton.Item{}, false
		}
		if first.Err != nil {
			return first, true
		}
		return v.beginForward(first)

	case automaton.ArrayEnd, automaton.ObjectEnd:
		v.state = valuesStart
		return v.Next()

	default:
		v.state = valuesStart
		return automaton.Item{Err: automaton.Invalid()}, true
	}
}
