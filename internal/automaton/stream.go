package automaton

// Item is the element type of every token stream in this module: either a
// Token or a terminal Err. A stream that has produced an Err as its last
// Item is expected to report Next's ok=false forever after (see the fuse
// wrapper in pkg/jqstream).
type Item struct {
	Tok Token
	Err *Err
}

// Stream is the single capability every stage of the pipeline needs from
// its upstream: pull one Item at a time. Using one narrow interface here
// (rather than generics inlining each operator into the next) keeps every
// operator free to wrap any other operator, matching this module's
// "dynamic polymorphism over streams" design choice.
type Stream interface {
	Next() (Item, bool)
}

// CharStream is a lazy source (or sink) of Unicode scalar values.
type CharStream interface {
	Next() (r rune, ok bool)
}
