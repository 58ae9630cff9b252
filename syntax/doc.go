/*
Package syntax is the front end for this module: a lexmachine-based
scanner and a hand-written recursive-descent parser that turn the concrete
surface grammar into ast.Term and ast.Formula values.

The grammar is small and unambiguous enough that a direct recursive-descent
parser is the idiomatic choice; it does not need general LR/GLR parsing
machinery. Only the scanner is built with a DFA
library, timtadh/lexmachine, used directly rather than through an LR
scanner adapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package syntax

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'euf.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("euf.syntax")
}
