package solver

import (
	"context"

	"github.com/eufsolve/euf/ast"
	"github.com/eufsolve/euf/cc"
)

// literal is a signed atomic formula: negated flags whether it appears
// negated within its clause.
type literal struct {
	negated bool
	atom    ast.Formula
}

// clause is a conjunction of signed atomic formulas: one row of a
// disjunctive normal form.
type clause []literal

// clauseSet is a disjunction of clauses.
type clauseSet []clause

func flip(cs clauseSet) clauseSet {
	out := make(clauseSet, len(cs))
	for i, c := range cs {
		flipped := make(clause, len(c))
		for j, l := range c {
			flipped[j] = literal{negated: !l.negated, atom: l.atom}
		}
		out[i] = flipped
	}
	return out
}

// cross is the cartesian product of two clause sets, concatenating literal
// lists pairwise. It is the per-conjunct combinator for DNF conjunction and
// the per-disjunct combinator for CNF disjunction.
func cross(a, b clauseSet) clauseSet {
	out := make(clauseSet, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make(clause, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}
	return out
}

// toDNF converts formula to disjunctive normal form. An empty conjunction
// (true) becomes one always-true empty clause; an empty disjunction
// (false) becomes no clauses at all.
func toDNF(f ast.Formula) clauseSet {
	switch x := f.(type) {
	case ast.Not:
		return flip(toCNF(x.Formula))
	case ast.Implies:
		return toDNF(ast.NewOr([]ast.Formula{ast.NewNot(x.Left), x.Right}))
	case ast.Iff:
		return toDNF(ast.NewAnd([]ast.Formula{
			ast.NewImplies(x.Left, x.Right),
			ast.NewImplies(x.Right, x.Left),
		}))
	case ast.And:
		if len(x.Conjuncts) == 0 {
			return clauseSet{{}}
		}
		head := toDNF(x.Conjuncts[0])
		tail := toDNF(ast.NewAnd(x.Conjuncts[1:]))
		return cross(head, tail)
	case ast.Or:
		var out clauseSet
		for _, d := range x.Disjuncts {
			out = append(out, toDNF(d)...)
		}
		return out
	default:
		// An atomic formula, or a quantifier that survived normalization,
		// is treated as an opaque positive literal; whether the atom is
		// actually decidable is resolved later, in clauseSat.
		return clauseSet{{literal{negated: false, atom: f}}}
	}
}

// toCNF converts formula to conjunctive normal form, the dual of toDNF:
// conjunction concatenates, disjunction cross-multiplies.
func toCNF(f ast.Formula) clauseSet {
	switch x := f.(type) {
	case ast.Not:
		return flip(toDNF(x.Formula))
	case ast.Implies:
		return toCNF(ast.NewOr([]ast.Formula{ast.NewNot(x.Left), x.Right}))
	case ast.Iff:
		return toCNF(ast.NewAnd([]ast.Formula{
			ast.NewImplies(x.Left, x.Right),
			ast.NewImplies(x.Right, x.Left),
		}))
	case ast.And:
		var out clauseSet
		for _, c := range x.Conjuncts {
			out = append(out, toCNF(c)...)
		}
		return out
	case ast.Or:
		if len(x.Disjuncts) == 0 {
			return clauseSet{{}}
		}
		head := toCNF(x.Disjuncts[0])
		tail := toCNF(ast.NewOr(x.Disjuncts[1:]))
		return cross(head, tail)
	default:
		return clauseSet{{literal{negated: false, atom: f}}}
	}
}

// clauseSat decides a single DNF clause using a fresh Solver bound to
// language's vocabulary. A clause containing anything other than an
// equality atom, or an equality over a non-ground term, is Unknown rather
// than a hard failure.
func clauseSat(language *ast.Language, c clause) Result {
	s := NewSolver(language)

	type nodePair struct{ a, b cc.NodeIndex }
	var equalities, disequalities []nodePair

	for _, lit := range c {
		eq, ok := lit.atom.(ast.Equality)
		if !ok {
			tracer().Debugf("clause_sat: unsupported atom %s", lit.atom)
			return Unknown
		}
		n1, err := s.AddTerm(eq.Left)
		if err != nil {
			tracer().Debugf("clause_sat: unsupported term: %v", err)
			return Unknown
		}
		n2, err := s.AddTerm(eq.Right)
		if err != nil {
			tracer().Debugf("clause_sat: unsupported term: %v", err)
			return Unknown
		}
		if lit.negated {
			disequalities = append(disequalities, nodePair{n1, n2})
		} else {
			equalities = append(equalities, nodePair{n1, n2})
		}
	}

	// Equalities are asserted in textual order of the clause's literals.
	// Congruence closure is order-independent, but keeping the ordering
	// stable means a failing case always blames the same atom.
	for _, p := range equalities {
		s.AddEquality(p.a, p.b)
	}
	for _, p := range disequalities {
		if s.CheckEquality(p.a, p.b) {
			tracer().Debugf("clause_sat: unsat, %v and %v forced equal", p.a, p.b)
			return Unsat
		}
	}
	return Sat
}

// Sat decides the satisfiability of formula in the vocabulary of language.
// It is a pure function: it allocates no state outside the call, and
// nothing from one call is visible to the next.
//
// ctx is checked once per DNF clause, never inside a single clause's
// congruence fixpoint; a cancelled context makes Sat return Unknown for
// the remainder of the search rather than blocking the caller indefinitely
// on a pathologically large DNF.
func Sat(ctx context.Context, language *ast.Language, formula ast.Formula) Result {
	dnf := toDNF(formula)
	sawUnknown := false
	for _, c := range dnf {
		select {
		case <-ctx.Done():
			return Unknown
		default:
		}
		switch clauseSat(language, c) {
		case Sat:
			return Sat
		case Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return Unknown
	}
	return Unsat
}
