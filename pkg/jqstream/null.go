package jqstream

import "github.com/shapestone/jqstream/internal/automaton"

// NullSource is a convenience upstream that yields a single Null token and
// then ends. It is useful as the identity starting point of a chain that
// doesn't otherwise begin from parsed text (e.g. pkg/jqchain.Null).
type NullSource struct {
	done bool
}

// Null builds a fresh NullSource.
func Null() *NullSource {
	return &NullSource{}
}

// Next implements Stream.
func (n *NullSource) Next() (automaton.Item, bool) {
	if n.done {
		return automaton.Item{}, false
	}
	n.done = true
	return automaton.Item{Tok: automaton.Token{Kind: automaton.Null}}, true
}
