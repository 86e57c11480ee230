// Package pathlang is the tiny outer-layer parser that turns a JQ-like path
// string such as ".a.b[0][]?" into a pkg/jqchain.Chain, standing in for
// the proc-macro collaborator the core spec keeps outside itself. It
// recognizes only the grammar the operator-chain table already exposes and
// never reinterprets or loosens a core invariant: a parsed Program is just
// a recorded sequence of Chain method calls.
//
//	.key               AtKey("key")
//	.key?              AtKeySuppress("key")
//	[N]                AtIndex(N)       (N may be negative)
//	[N]?               AtIndexSuppress(N)
//	[]                 Values()
//	[]?                ValuesSuppress()
//	| slurp            Slurp()
//	| tostring         ToString (terminal)
//	| topretty         ToStringPretty (terminal)
package pathlang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shapestone/jqstream/pkg/jqchain"
)

// opKind enumerates the path segments and pipe stages this grammar accepts.
type opKind int

const (
	opAtKey opKind = iota
	opAtIndex
	opValues
	opSlurp
	opToString
	opToPretty
)

type step struct {
	kind     opKind
	key      string
	index    int
	suppress bool
}

// Program is a parsed path expression: an ordered list of Chain operations.
type Program struct {
	steps []step
}

// Compile parses expr into a Program, or returns a descriptive error at the
// first malformed segment.
func Compile(expr string) (*Program, error) {
	p := &parser{input: expr}
	steps, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Program{steps: steps}, nil
}

// Apply runs every parsed step against c in order, returning the resulting
// Chain. A Program containing a terminal stage (tostring/topretty) still
// returns a Chain; call the terminal render method separately via
// RenderString if one was requested.
func (pr *Program) Apply(c *jqchain.Chain) *jqchain.Chain {
	for _, s := range pr.steps {
		switch s.kind {
		case opAtKey:
			if s.suppress {
				c = c.AtKeySuppress(s.key)
			} else {
				c = c.AtKey(s.key)
			}
		case opAtIndex:
			if s.suppress {
				c = c.AtIndexSuppress(s.index)
			} else {
				c = c.AtIndex(s.index)
			}
		case opValues:
			if s.suppress {
				c = c.ValuesSuppress()
			} else {
				c = c.Values()
			}
		case opSlurp:
			c = c.Slurp()
		case opToString, opToPretty:
			// Terminal stages are read by RenderString; Apply leaves the
			// Chain positioned right before them.
		}
	}
	return c
}

// ForceSuppress marks every at_key/at_index/values step as suppressing
// (the `?` forms), letting a caller apply a global --suppress flag without
// requiring the path expression to spell out `?` on each segment.
func (pr *Program) ForceSuppress() {
	for i := range pr.steps {
		switch pr.steps[i].kind {
		case opAtKey, opAtIndex, opValues:
			pr.steps[i].suppress = true
		}
	}
}

// Pretty reports whether the program ends in a "| topretty" stage (as
// opposed to "| tostring" or no terminal stage at all).
func (pr *Program) Pretty() bool {
	if len(pr.steps) == 0 {
		return false
	}
	last := pr.steps[len(pr.steps)-1]
	return last.kind == opToPretty
}

// RenderString applies every step, then renders the result using whichever
// terminal render stage (if any) the program ended with, defaulting to
// compact.
func (pr *Program) RenderString(c *jqchain.Chain) (string, error) {
	c = pr.Apply(c)
	if pr.Pretty() {
		return c.ToStringPretty()
	}
	return c.ToString()
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parse() ([]step, error) {
	var steps []step

	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '.':
			s, err := p.parseKey()
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)
		case '[':
			s, err := p.parseIndexOrValues()
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)
		case '|':
			s, err := p.parsePipeStage()
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)
		case ' ', '\t':
			p.pos++
		default:
			return nil, fmt.Errorf("pathlang: unexpected character %q at position %d", p.input[p.pos], p.pos)
		}
	}

	return steps, nil
}

func (p *parser) parseKey() (step, error) {
	p.pos++ // consume '.'
	start := p.pos
	for p.pos < len(p.input) && isIdentRune(rune(p.input[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return step{}, fmt.Errorf("pathlang: expected key name after '.' at position %d", start)
	}
	key := p.input[start:p.pos]
	suppress := p.consumeSuppress()
	return step{kind: opAtKey, key: key, suppress: suppress}, nil
}

func (p *parser) parseIndexOrValues() (step, error) {
	open := p.pos
	p.pos++ // consume '['
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != ']' {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return step{}, fmt.Errorf("pathlang: unterminated '[' at position %d", open)
	}
	body := p.input[start:p.pos]
	p.pos++ // consume ']'
	suppress := p.consumeSuppress()

	if body == "" {
		return step{kind: opValues, suppress: suppress}, nil
	}
	n, err := strconv.Atoi(body)
	if err != nil {
		return step{}, fmt.Errorf("pathlang: invalid array index %q at position %d", body, start)
	}
	return step{kind: opAtIndex, index: n, suppress: suppress}, nil
}

func (p *parser) parsePipeStage() (step, error) {
	p.pos++ // consume '|'
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.input) && isIdentRune(rune(p.input[p.pos])) {
		p.pos++
	}
	name := p.input[start:p.pos]
	switch strings.ToLower(name) {
	case "slurp":
		return step{kind: opSlurp}, nil
	case "tostring":
		return step{kind: opToString}, nil
	case "topretty":
		return step{kind: opToPretty}, nil
	default:
		return step{}, fmt.Errorf("pathlang: unknown pipe stage %q at position %d", name, start)
	}
}

func (p *parser) consumeSuppress() bool {
	if p.pos < len(p.input) && p.input[p.pos] == '?' {
		p.pos++
		return true
	}
	return false
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
