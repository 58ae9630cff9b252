package syntax

import (
	"context"
	"testing"

	"github.com/eufsolve/euf/solver"
)

// TestRoundTripReparseDecidesIdentically checks that printing a parsed
// formula and parsing the printout again yields a formula the solver
// decides the same way, across a handful of representative end-to-end
// formulas (cyclic congruence, substitutivity, plain disjunction).
func TestRoundTripReparseDecidesIdentically(t *testing.T) {
	cases := []string{
		`f(f(f(a))) = a /\ f(f(f(f(f(a))))) = a /\ f(a) != a`,
		`a = b /\ f(a) != f(b)`,
		`a = b \/ c = d`,
		`f(a) = a /\ f(f(a)) != a`,
		`a = b /\ b = c /\ a != c`,
	}

	for _, input := range cases {
		p1 := NewParser("elem")
		f1, err := p1.ParseFormula(input)
		if err != nil {
			t.Fatalf("parsing %q: %v", input, err)
		}
		want := solver.Sat(context.Background(), p1.Language(), f1)

		printed := f1.String()
		p2 := NewParser("elem")
		f2, err := p2.ParseFormula(printed)
		if err != nil {
			t.Fatalf("re-parsing printout %q of %q: %v", printed, input, err)
		}
		got := solver.Sat(context.Background(), p2.Language(), f2)

		if got != want {
			t.Errorf("%q printed as %q; original decided %s, reparsed decided %s", input, printed, want, got)
		}
	}
}

// The sixth end-to-end scenario, the empty conjunction/disjunction, has no
// surface syntax of its own (the grammar has no token for ⊤/⊥) and so
// cannot round-trip through this package's parser; it is covered directly
// against ast.True()/ast.False() in package solver's tests instead.
