package jqstream

import "github.com/shapestone/jqstream/internal/automaton"

// describeKind renders a Kind the way an operator's StreamOperationFailed
// message names the offending JSON type.
func describeKind(k automaton.Kind) string {
	switch k {
	case automaton.ObjectStart:
		return "object"
	case automaton.ArrayStart:
		return "array"
	case automaton.String:
		return "string"
	case automaton.Number:
		return "number"
	case automaton.True, automaton.False:
		return "boolean"
	case automaton.Null:
		return "null"
	default:
		return "value"
	}
}

// collectElement pulls one complete value from upstream (including every
// token of any nested containers) and returns its full token list.
func collectElement(upstream automaton.Stream) (toks []automaton.Token, ok bool, err *automaton.Err) {
	first, ok := upstream.Next()
	if !ok {
		return nil, false, nil
	}
	if first.Err != nil {
		return nil, true, first.Err
	}
	toks = []automaton.Token{first.Tok}
	depth := 0
	switch first.Tok.Kind {
	case automaton.ObjectStart, automaton.ArrayStart:
		depth = 1
	}
	for depth > 0 {
		item, ok2 := upstream.Next()
		if !ok2 {
			return nil, false, nil
		}
		if item.Err != nil {
			return nil, true, item.Err
		}
		toks = append(toks, item.Tok)
		switch item.Tok.Kind {
		case automaton.ObjectStart, automaton.ArrayStart:
			depth++
		case automaton.ObjectEnd, automaton.ArrayEnd:
			depth--
		}
	}
	return toks, true, nil
}

// skipValue discards exactly one complete value from upstream.
func skipValue(upstream automaton.Stream) (ok bool, err *automaton.Err) {
	_, ok, err = collectElement(upstream)
	return ok, err
}

// skipContainer discards the remainder of a container whose Start token has
// already been consumed by the caller.
func skipContainer(upstream automaton.Stream) (ok bool, err *automaton.Err) {
	depth := 1
	for depth > 0 {
		item, ok2 := upstream.Next()
		if !ok2 {
			return false, nil
		}
		if item.Err != nil {
			return true, item.Err
		}
		switch item.Tok.Kind {
		case automaton.ObjectStart, automaton.ArrayStart:
			depth++
		case automaton.ObjectEnd, automaton.ArrayEnd:
			depth--
		}
	}
	return true, nil
}

// drainObjectTail discards whatever members remain after the value of the
// member currently being processed has just fully closed, stopping exactly
// at the enclosing object's ObjectEnd.
func drainObjectTail(upstream automaton.Stream) (ok bool, err *automaton.Err) {
	for {
		item, ok2 := upstream.Next()
		if !ok2 {
			return false, nil
		}
		if item.Err != nil {
			return true, item.Err
		}
		switch item.Tok.Kind {
		case automaton.ObjectEnd:
			return true, nil
		case automaton.Comma:
			if _, ok3 := upstream.Next(); !ok3 { // key
				return false, nil
			}
			if _, ok4 := upstream.Next(); !ok4 { // colon
				return false, nil
			}
			if ok5, err5 := skipValue(upstream); !ok5 || err5 != nil {
				return ok5, err5
			}
		default:
			return true, automaton.Invalid()
		}
	}
}

// drainArrayTail discards whatever elements remain after the element
// currently being processed has just fully closed, stopping exactly at the
// enclosing array's ArrayEnd.
func drainArrayTail(upstream automaton.Stream) (ok bool, err *automaton.Err) {
	for {
		item, ok2 := upstream.Next()
		if !ok2 {
			return false, nil
		}
		if item.Err != nil {
			return true, item.Err
		}
		switch item.Tok.Kind {
		case automaton.ArrayEnd:
			return true, nil
		case automaton.Comma:
			if ok3, err3 := skipValue(upstream); !ok3 || err3 != nil {
				return ok3, err3
			}
		default:
			return true, automaton.Invalid()
		}
	}
}
