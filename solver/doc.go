/*
Package solver implements a satisfiability driver for the quantifier-free
theory of equality with uninterpreted functions: normalization of a
Boolean skeleton of equality atoms into disjunctive normal form,
discharged clause-by-clause through a fresh package cc congruence graph.

Sat is the sole stateless top-level entry point; it allocates a new Solver
(and therefore a new cc.Graph) per clause and never retains state across
calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package solver

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'euf.solver'.
func tracer() tracing.Trace {
	return tracing.Select("euf.solver")
}
