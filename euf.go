package euf

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. No constants are defined here; it
// is up to the scanner/parser pair in package syntax to define them.
type TokType int

// Token represents an input token, usually produced by a scanner and
// reflecting a terminal of the surface grammar package syntax parses.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions. Every token carries the span it
// was scanned from, for error reporting.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
