package automaton

// Machine is the push-down automaton shared by the raw, character-driven
// token stream and the token-driven stream context. Both drive the exact
// same transition table; they differ only in how they report a rejected
// transition (a source Location vs. a bare InvalidStream) and in what kind
// of upstream failure they additionally have to propagate.
type Machine struct {
	state State
	stack []Scope
}

// New returns a Machine ready to validate a fresh top-level document.
func New() *Machine {
	return &Machine{state: StateValue}
}

// Path reports the current scope stack, outermost first. The slice is
// owned by the Machine; callers must treat it as read-only and must not
// retain it across the next call to Step.
func (m *Machine) Path() []Scope {
	return m.stack
}

// Depth reports the current nesting depth (0 at top level).
func (m *Machine) Depth() int {
	return len(m.stack)
}

func (m *Machine) top() *Scope {
	if len(m.stack) == 0 {
		return nil
	}
	return &m.stack[len(m.stack)-1]
}

func (m *Machine) push(s Scope) {
	m.stack = append(m.stack, s)
}

func (m *Machine) pop() {
	m.stack = m.stack[:len(m.stack)-1]
}

// popRule applies the shared "after popping a container" rule: back to
// AfterValue if something still encloses us, otherwise ready for another
// top-level document.
func (m *Machine) popRule() {
	if len(m.stack) > 0 {
		m.state = StateAfterValue
	} else {
		m.state = StateValue
	}
}

// startValue handles the transitions shared by "we're about to read a
// fresh value" states: Value, FirstArrayValue, and (when the stack is
// empty, i.e. a new top-level document) AfterValue.
func (m *Machine) startValue(kind Kind) bool {
	switch kind {
	case ObjectStart:
		m.push(Scope{Kind: ScopeObject})
		m.state = StateFirstObjectKey
		return true
	case ArrayStart:
		m.push(Scope{Kind: ScopeArray})
		m.state = StateFirstArrayValue
		return true
	default:
		if kind.IsLeaf() {
			m.state = StateAfterValue
			return true
		}
		return false
	}
}

// Step advances the automaton for a token about to be yielded. text is
// only consulted when kind is String and the validator is expecting an
// object key. It returns false when the transition is illegal; callers
// translate that into a located or unlocated error depending on what kind
// of upstream they are driving the automaton from.
func (m *Machine) Step(kind Kind, text string) bool {
	switch m.state {
	case StateValue, StateFirstArrayValue:
		if m.state == StateFirstArrayValue && kind == ArrayEnd {
			m.pop()
			m.popRule()
			return true
		}
		return m.startValue(kind)

	case StateFirstObjectKey, StateObjectKey:
		if m.state == StateFirstObjectKey && kind == ObjectEnd {
			m.pop()
			m.popRule()
			return true
		}
		if kind != String {
			return false
		}
		top := m.top()
		if top == nil || top.Kind != ScopeObject {
			return false
		}
		*top = Scope{Kind: ScopeObjectAtKey, Index: top.Index, Key: text}
		m.state = StateObjectColon
		return true

	case StateObjectColon:
		if kind != Colon {
			return false
		}
		m.state = StateValue
		return true

	case StateAfterValue:
		switch kind {
		case Comma:
			top := m.top()
			if top == nil {
				return false
			}
			switch top.Kind {
			case ScopeArray:
				top.Index++
				m.state = StateValue
				return true
			case ScopeObjectAtKey:
				*top = Scope{Kind: ScopeObject, Index: top.Index + 1}
				m.state = StateObjectKey
				return true
			default:
				return false
			}
		case ArrayEnd:
			top := m.top()
			if top == nil || top.Kind != ScopeArray {
				return false
			}
			m.pop()
			m.popRule()
			return true
		case ObjectEnd:
			top := m.top()
			if top == nil || (top.Kind != ScopeObject && top.Kind != ScopeObjectAtKey) {
				return false
			}
			m.pop()
			m.popRule()
			return true
		default:
			// A fresh value-start or container-open is only legal here
			// when nothing encloses us: the multi-document case.
			if len(m.stack) != 0 {
				return false
			}
			return m.startValue(kind)
		}

	default:
		return false
	}
}
