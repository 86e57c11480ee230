package automaton

import (
	"fmt"

	"github.com/shapestone/jqstream/internal/charstream"
)

// ErrKind enumerates the error taxonomy every stream in this module
// produces. It replaces what the original source expresses as seven
// separate error variants with one family behind a single type, the way
// this corpus's richer compilers split error *categories* rather than
// exported types per variant.
type ErrKind int

const (
	UnexpectedEOF ErrKind = iota
	UnexpectedCharacter
	IllegalLeading0
	UnescapedEscapeCharacter
	InvalidEscapeSequence
	InvalidStream
	StreamOperationFailed
)

// Err is the error type every stream in this module emits. Loc is nil for
// kinds that carry no source location (InvalidStream, StreamOperationFailed).
type Err struct {
	Kind ErrKind
	Loc  *charstream.Location
	Msg  string
}

func (e *Err) Error() string {
	switch e.Kind {
	case UnexpectedEOF:
		return "unexpected EOF"
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character at %s", e.loc())
	case IllegalLeading0:
		return fmt.Sprintf("illegal leading 0 at %s", e.loc())
	case UnescapedEscapeCharacter:
		return fmt.Sprintf("unescaped character requiring escape at %s", e.loc())
	case InvalidEscapeSequence:
		return fmt.Sprintf("invalid escape sequence at %s", e.loc())
	case InvalidStream:
		return "underlying stream was invalid"
	case StreamOperationFailed:
		return fmt.Sprintf("error: %s", e.Msg)
	default:
		return "unknown stream error"
	}
}

func (e *Err) loc() string {
	if e.Loc == nil {
		return "?:?"
	}
	return e.Loc.String()
}

// EOF builds an UnexpectedEOF error.
func EOF() *Err { return &Err{Kind: UnexpectedEOF} }

// AtLoc builds a located error of the given kind.
func AtLoc(kind ErrKind, loc charstream.Location) *Err {
	l := loc
	return &Err{Kind: kind, Loc: &l}
}

// Invalid builds an InvalidStream error.
func Invalid() *Err { return &Err{Kind: InvalidStream} }

// OpFailed builds a StreamOperationFailed error with the given message.
func OpFailed(format string, args ...interface{}) *Err {
	return &Err{Kind: StreamOperationFailed, Msg: fmt.Sprintf(format, args...)}
}
