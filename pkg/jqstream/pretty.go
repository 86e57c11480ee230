package jqstream

import (
	"strconv"
	"strings"

	"github.com/shapestone/jqstream/internal/automaton"
)

// PrettyChars renders a sanitized token stream as indented JSON text.
type PrettyChars struct {
	upstream    pathStream
	indentUnit  string
	indentLevel int
	havePrev    bool
	prevKind    automaton.Kind

	queue []rune
	pos   int
	done  bool
	err   *automaton.Err
}

// NewPrettyChars builds the pretty renderer over upstream, indenting with
// two spaces per level (matching the teacher's RenderIndent default).
func NewPrettyChars(upstream pathStream) *PrettyChars {
	return &PrettyChars{upstream: upstream, indentUnit: "  "}
}

// Err reports the error that ended the stream, if any.
func (p *PrettyChars) Err() *automaton.Err { return p.err }

// Next implements CharStream.
func (p *PrettyChars) Next() (rune, bool) {
	for p.pos >= len(p.queue) {
		if p.done {
			return 0, false
		}
		atTopLevel := len(p.upstream.Path()) == 0

		item, ok := p.upstream.Next()
		if !ok {
			p.done = true
			return 0, false
		}
		if item.Err != nil {
			p.done = true
			p.err = item.Err
			return 0, false
		}

		p.queue = p.renderToken(item.Tok, atTopLevel)
		p.pos = 0
		p.havePrev = true
		p.prevKind = item.Tok.Kind
	}
	r := p.queue[p.pos]
	p.pos++
	return r, true
}

func (p *PrettyChars) indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(p.indentUnit, level)
}

func (p *PrettyChars) renderToken(tok automaton.Token, atTopLevel bool) []rune {
	var out []rune

	switch tok.Kind {
	case automaton.ObjectEnd, automaton.ArrayEnd:
		matchingStart := automaton.ObjectStart
		if tok.Kind == automaton.ArrayEnd {
			matchingStart = automaton.ArrayStart
		}
		empty := p.havePrev && p.prevKind == matchingStart
		p.indentLevel--
		if !empty {
			out = append(out, '\n')
			out = append(out, []rune(p.indent(p.indentLevel))...)
		}
		if tok.Kind == automaton.ObjectEnd {
			out = append(out, '}')
		} else {
			out = append(out, ']')
		}
		return out

	case automaton.Comma:
		out = append(out, ',')
		out = append(out, '\n')
		out = append(out, []rune(p.indent(p.indentLevel))...)
		return out

	case automaton.Colon:
		return []rune(": ")
	}

	if p.havePrev {
		switch {
		case p.prevKind == automaton.ObjectStart || p.prevKind == automaton.ArrayStart:
			out = append(out, '\n')
			out = append(out, []rune(p.indent(p.indentLevel))...)
		case atTopLevel && tok.Kind.IsValueStart():
			out = append(out, '\n')
		}
	}

	switch tok.Kind {
	case automaton.ObjectStart:
		out = append(out, '{')
		p.indentLevel++
	case automaton.ArrayStart:
		out = append(out, '[')
		p.indentLevel++
	case automaton.String:
		out = append(out, quoteRunes(tok.Text)...)
	case automaton.Number:
		out = append(out, []rune(tok.Text)...)
	case automaton.ParsedNumber:
		out = append(out, []rune(strconv.FormatFloat(tok.Num, 'g', -1, 64))...)
	case automaton.True:
		out = append(out, []rune("true")...)
	case automaton.False:
		out = append(out, []rune("false")...)
	case automaton.Null:
		out = append(out, []rune("null")...)
	}

	return out
}
