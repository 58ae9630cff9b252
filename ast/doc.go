/*
Package ast implements the first-order term/formula language consumed by
package solver: sorts, function and relation symbols, terms, formulas and
languages (vocabularies).

The core decision procedure (packages cc and solver) only ever looks at the
`Functions` of a Language and at `Equality` formulas built over ground
`Application` terms; everything else in this package — quantifiers,
relation symbols, free variables, multi-sorted terms — is here because a
complete first-order language needs it, not because the solver uses it.
Feeding the solver a quantifier or a non-equality atom is well-typed; the
solver declines to decide it (see package solver's Unknown result).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ast

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'euf.ast'.
func tracer() tracing.Trace {
	return tracing.Select("euf.ast")
}
