package solver

import (
	"errors"
	"fmt"

	"github.com/eufsolve/euf/ast"
	"github.com/eufsolve/euf/cc"
)

// ErrUnsupportedVariable is returned by AddTerm when the term contains a
// free variable. The solver only accepts ground terms.
var ErrUnsupportedVariable = errors.New("solver: variable terms are not supported, only ground terms")

// Result is the three-valued outcome of a satisfiability decision.
type Result int

const (
	// Unsat means the formula (or clause) has no QF_EUF model.
	Unsat Result = iota
	// Sat means a QF_EUF model was found.
	Sat
	// Unknown means the formula (or clause) contains a fragment the
	// driver cannot decide (a relation application, a quantifier or a
	// variable term), or that Sat stopped because its context was done.
	Unknown
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("solver.Result(%d)", int(r))
	}
}

// Solver discharges ground equalities and disequalities over a single
// symbol table and congruence graph. Sat constructs a fresh Solver per DNF
// clause: one is never reused across clauses.
type Solver struct {
	graph   *cc.Graph
	symbols *ast.SymbolTable
}

// NewSolver captures language's function symbols, in declaration order, as
// the solver's symbol table, and starts with an empty congruence graph.
func NewSolver(language *ast.Language) *Solver {
	return &Solver{
		graph:   cc.New(),
		symbols: language.Functions.Clone(),
	}
}

// AddSymbol resolves sym to its SymbolIndex, appending it to the table if
// it is not already present.
func (s *Solver) AddSymbol(sym *ast.FunctionSymbol) cc.SymbolIndex {
	return cc.SymbolIndex(s.symbols.ResolveOrDefine(sym))
}

// AddTerm recursively inserts a ground term into the congruence graph,
// resolving its function symbols against the solver's symbol table along
// the way. It returns ErrUnsupportedVariable if term contains a Variable.
func (s *Solver) AddTerm(term ast.Term) (cc.NodeIndex, error) {
	switch t := term.(type) {
	case ast.VariableTerm:
		return 0, ErrUnsupportedVariable
	case ast.Application:
		symbolIndex := s.AddSymbol(t.Symbol)
		children := make([]cc.NodeIndex, len(t.Args))
		for i, arg := range t.Args {
			idx, err := s.AddTerm(arg)
			if err != nil {
				return 0, err
			}
			children[i] = idx
		}
		return s.graph.AddNode(symbolIndex, children), nil
	default:
		panic(fmt.Sprintf("solver: AddTerm: unknown term type %T", term))
	}
}

// AddEquality merges the classes of two previously added nodes.
func (s *Solver) AddEquality(n1, n2 cc.NodeIndex) {
	s.graph.Merge(n1, n2)
}

// CheckEquality reports whether n1 and n2 are currently in the same class.
func (s *Solver) CheckEquality(n1, n2 cc.NodeIndex) bool {
	return s.graph.SameClass(n1, n2)
}
