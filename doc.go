/*
Package euf implements a decision procedure for the quantifier-free theory
of equality with uninterpreted functions (QF_EUF).

Package structure is as follows:

■ ast: Package ast implements the term/formula AST that the solver consumes —
sorts, function and relation symbols, terms, formulas, and languages.

■ cc: Package cc implements a persistent congruence-closure graph over
ground terms (union-find over a hash-consed term DAG).

■ solver: Package solver implements the QF_EUF satisfiability driver: DNF/CNF
normalization of a Boolean skeleton, discharged clause-by-clause through cc.

■ syntax: Package syntax implements the surface parser and scanner that turn
the grammar `t = u`, `!`, `/\`, `\/`, `->` into ast values.

■ cmd/euf-repl: A REPL reading one formula per line and printing sat/unsat/unknown.

The base package contains the token and span types package syntax builds on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package euf
