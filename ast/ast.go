package ast

import (
	"fmt"
	"strings"
)

// --- Sorts ------------------------------------------------------------

// Sort is an opaque nominal type tag. Equality is by name.
type Sort struct {
	Name string
}

// NewSort creates a sort with the given name.
func NewSort(name string) *Sort {
	return &Sort{Name: name}
}

func (s *Sort) String() string { return s.Name }

// Equal reports whether two sorts have the same name.
func (s *Sort) Equal(other *Sort) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Name == other.Name
}

// --- Symbols ------------------------------------------------------------

// FunctionSymbol identifies a function by (name, input sorts, output sort).
// A zero-arity function symbol is a constant.
type FunctionSymbol struct {
	Name       string
	InputSorts []*Sort
	OutputSort *Sort
}

// NewFunctionSymbol creates a function symbol.
func NewFunctionSymbol(name string, inputSorts []*Sort, outputSort *Sort) *FunctionSymbol {
	return &FunctionSymbol{Name: name, InputSorts: inputSorts, OutputSort: outputSort}
}

// Arity is the number of arguments the symbol takes.
func (f *FunctionSymbol) Arity() int { return len(f.InputSorts) }

// Equal reports whether two function symbols have the same identity triple.
func (f *FunctionSymbol) Equal(other *FunctionSymbol) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Name != other.Name || len(f.InputSorts) != len(other.InputSorts) {
		return false
	}
	for i, s := range f.InputSorts {
		if !s.Equal(other.InputSorts[i]) {
			return false
		}
	}
	return f.OutputSort.Equal(other.OutputSort)
}

func (f *FunctionSymbol) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(":")
	for _, s := range f.InputSorts {
		b.WriteString(" ")
		b.WriteString(s.String())
	}
	b.WriteString(" -> ")
	b.WriteString(f.OutputSort.String())
	return b.String()
}

// RelationSymbol identifies a relation by (name, input sorts). The solver
// never decides atoms built over these; they exist so the AST can
// represent a complete first-order language.
type RelationSymbol struct {
	Name       string
	InputSorts []*Sort
}

// NewRelationSymbol creates a relation symbol.
func NewRelationSymbol(name string, inputSorts []*Sort) *RelationSymbol {
	return &RelationSymbol{Name: name, InputSorts: inputSorts}
}

func (r *RelationSymbol) Equal(other *RelationSymbol) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Name != other.Name || len(r.InputSorts) != len(other.InputSorts) {
		return false
	}
	for i, s := range r.InputSorts {
		if !s.Equal(other.InputSorts[i]) {
			return false
		}
	}
	return true
}

func (r *RelationSymbol) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString(":")
	for _, s := range r.InputSorts {
		b.WriteString(" ")
		b.WriteString(s.String())
	}
	return b.String()
}

// --- Variables ------------------------------------------------------------

// VariableIndex identifies a bound or free variable.
type VariableIndex int

// Variable is a sorted placeholder occurring in Terms. Ground terms (the
// only kind the solver accepts) contain none.
type Variable struct {
	Index VariableIndex
	Sort  *Sort
}

func (v Variable) String() string { return fmt.Sprintf("x%d:%s", v.Index, v.Sort) }

// --- Terms ------------------------------------------------------------

// Term is either a Variable or the Application of a FunctionSymbol to
// arguments.
type Term interface {
	fmt.Stringer
	isTerm()
	collectFreeVariables(*VariableSet)
}

// VariableTerm wraps a Variable as a Term.
type VariableTerm struct {
	Var *Variable
}

func (VariableTerm) isTerm() {}

func (t VariableTerm) String() string { return t.Var.String() }

func (t VariableTerm) collectFreeVariables(fv *VariableSet) {
	fv.add(*t.Var)
}

// Application applies a function symbol to a (possibly empty) argument
// list. A zero-argument Application is a constant.
type Application struct {
	Symbol *FunctionSymbol
	Args   []Term
}

func (Application) isTerm() {}

func (t Application) String() string {
	if len(t.Args) == 0 {
		return t.Symbol.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", t.Symbol.Name, strings.Join(parts, ", "))
}

func (t Application) collectFreeVariables(fv *VariableSet) {
	for _, a := range t.Args {
		a.collectFreeVariables(fv)
	}
}

// NewVariable builds a Term from a variable occurrence.
func NewVariable(index VariableIndex, sort *Sort) Term {
	return VariableTerm{Var: &Variable{Index: index, Sort: sort}}
}

// NewApplication builds a Term applying symbol to arguments.
func NewApplication(symbol *FunctionSymbol, args []Term) Term {
	return Application{Symbol: symbol, Args: args}
}

// --- Variable sets ------------------------------------------------------

// VariableSet is the free-variable result type returned by FreeVariables
// and FreeVariablesOf.
type VariableSet struct {
	m map[Variable]struct{}
}

func newVariableSet() *VariableSet { return &VariableSet{m: make(map[Variable]struct{})} }

func (s *VariableSet) add(v Variable) { s.m[v] = struct{}{} }

// Contains reports whether v is a member.
func (s *VariableSet) Contains(v Variable) bool {
	_, ok := s.m[v]
	return ok
}

// Len is the number of distinct variables.
func (s *VariableSet) Len() int { return len(s.m) }

// FreeVariables returns the free variables of a term.
func FreeVariables(t Term) *VariableSet {
	fv := newVariableSet()
	t.collectFreeVariables(fv)
	return fv
}

// --- Formulas ------------------------------------------------------------

// Formula is a Boolean combination of atomic (dis)equalities, relation
// applications, and (unsupported by the solver) quantifiers.
type Formula interface {
	fmt.Stringer
	isFormula()
	collectFreeVariables(*VariableSet)
}

// Equality is the atom `Left = Right`.
type Equality struct {
	Left, Right Term
}

func (Equality) isFormula() {}

func (f Equality) String() string { return fmt.Sprintf("%s = %s", f.Left, f.Right) }

func (f Equality) collectFreeVariables(fv *VariableSet) {
	f.Left.collectFreeVariables(fv)
	f.Right.collectFreeVariables(fv)
}

// NewEquality builds an Equality formula.
func NewEquality(left, right Term) Formula { return Equality{Left: left, Right: right} }

// RelationApplication applies a relation symbol to arguments. The solver
// cannot decide atoms of this shape: they force an Unknown result.
type RelationApplication struct {
	Symbol *RelationSymbol
	Args   []Term
}

func (RelationApplication) isFormula() {}

func (f RelationApplication) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Symbol.Name, strings.Join(parts, ", "))
}

func (f RelationApplication) collectFreeVariables(fv *VariableSet) {
	for _, a := range f.Args {
		a.collectFreeVariables(fv)
	}
}

// NewRelationApplication builds a RelationApplication formula.
func NewRelationApplication(symbol *RelationSymbol, args []Term) Formula {
	return RelationApplication{Symbol: symbol, Args: args}
}

// Not is Boolean negation.
type Not struct {
	Formula Formula
}

func (Not) isFormula() {}

func (f Not) String() string { return fmt.Sprintf("¬(%s)", f.Formula) }

func (f Not) collectFreeVariables(fv *VariableSet) { f.Formula.collectFreeVariables(fv) }

// NewNot builds a Not formula.
func NewNot(formula Formula) Formula { return Not{Formula: formula} }

// Implies is `Left -> Right`.
type Implies struct {
	Left, Right Formula
}

func (Implies) isFormula() {}

func (f Implies) String() string { return fmt.Sprintf("(%s → %s)", f.Left, f.Right) }

func (f Implies) collectFreeVariables(fv *VariableSet) {
	f.Left.collectFreeVariables(fv)
	f.Right.collectFreeVariables(fv)
}

// NewImplies builds an Implies formula.
func NewImplies(left, right Formula) Formula { return Implies{Left: left, Right: right} }

// Iff is `Left <-> Right`.
type Iff struct {
	Left, Right Formula
}

func (Iff) isFormula() {}

func (f Iff) String() string { return fmt.Sprintf("(%s ⇔ %s)", f.Left, f.Right) }

func (f Iff) collectFreeVariables(fv *VariableSet) {
	f.Left.collectFreeVariables(fv)
	f.Right.collectFreeVariables(fv)
}

// NewIff builds an Iff formula.
func NewIff(left, right Formula) Formula { return Iff{Left: left, Right: right} }

// And is n-ary conjunction. A zero-ary And is the always-true formula ⊤.
type And struct {
	Conjuncts []Formula
}

func (And) isFormula() {}

func (f And) String() string {
	switch len(f.Conjuncts) {
	case 0:
		return "⊤"
	case 1:
		return f.Conjuncts[0].String()
	}
	parts := make([]string, len(f.Conjuncts))
	for i, c := range f.Conjuncts {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ∧ ") + ")"
}

func (f And) collectFreeVariables(fv *VariableSet) {
	for _, c := range f.Conjuncts {
		c.collectFreeVariables(fv)
	}
}

// NewAnd builds a conjunction over conjuncts.
func NewAnd(conjuncts []Formula) Formula { return And{Conjuncts: conjuncts} }

// True is the empty conjunction, ⊤.
func True() Formula { return And{} }

// Or is n-ary disjunction. A zero-ary Or is the always-false formula ⊥.
type Or struct {
	Disjuncts []Formula
}

func (Or) isFormula() {}

func (f Or) String() string {
	switch len(f.Disjuncts) {
	case 0:
		return "⊥"
	case 1:
		return f.Disjuncts[0].String()
	}
	parts := make([]string, len(f.Disjuncts))
	for i, d := range f.Disjuncts {
		parts[i] = d.String()
	}
	return "(" + strings.Join(parts, " ∨ ") + ")"
}

func (f Or) collectFreeVariables(fv *VariableSet) {
	for _, d := range f.Disjuncts {
		d.collectFreeVariables(fv)
	}
}

// NewOr builds a disjunction over disjuncts.
func NewOr(disjuncts []Formula) Formula { return Or{Disjuncts: disjuncts} }

// False is the empty disjunction, ⊥.
func False() Formula { return Or{} }

// ForAll is universal quantification. Unsupported by the solver: it always
// yields Unknown when it survives into a clause.
type ForAll struct {
	Var  *Variable
	Body Formula
}

func (ForAll) isFormula() {}

func (f ForAll) String() string { return fmt.Sprintf("∀%s (%s)", f.Var, f.Body) }

func (f ForAll) collectFreeVariables(fv *VariableSet) {
	collectQuantified(f.Var, f.Body, fv)
}

// NewForAll builds a ForAll formula.
func NewForAll(v *Variable, body Formula) Formula { return ForAll{Var: v, Body: body} }

// Exists is existential quantification. Unsupported by the solver.
type Exists struct {
	Var  *Variable
	Body Formula
}

func (Exists) isFormula() {}

func (f Exists) String() string { return fmt.Sprintf("∃%s (%s)", f.Var, f.Body) }

func (f Exists) collectFreeVariables(fv *VariableSet) {
	collectQuantified(f.Var, f.Body, fv)
}

// NewExists builds an Exists formula.
func NewExists(v *Variable, body Formula) Formula { return Exists{Var: v, Body: body} }

func collectQuantified(v *Variable, body Formula, fv *VariableSet) {
	hadBefore := fv.Contains(*v)
	body.collectFreeVariables(fv)
	if !hadBefore {
		delete(fv.m, *v)
	}
}

// FreeVariablesOf returns the free variables of a formula.
func FreeVariablesOf(f Formula) *VariableSet {
	fv := newVariableSet()
	f.collectFreeVariables(fv)
	return fv
}
