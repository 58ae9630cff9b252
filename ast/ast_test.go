package ast

import "testing"

func TestFunctionSymbolEqualityIsStructural(t *testing.T) {
	sortA := NewSort("A")
	f1 := NewFunctionSymbol("f", []*Sort{sortA}, sortA)
	f2 := NewFunctionSymbol("f", []*Sort{sortA}, sortA)
	if f1 == f2 {
		t.Fatal("expected distinct pointers for this test")
	}
	if !f1.Equal(f2) {
		t.Error("expected structurally identical symbols to be Equal")
	}
	g := NewFunctionSymbol("g", []*Sort{sortA}, sortA)
	if f1.Equal(g) {
		t.Error("expected symbols with different names to differ")
	}
}

func TestSymbolTableResolveOrDefine(t *testing.T) {
	sortA := NewSort("A")
	table := NewSymbolTable(nil)
	a := NewFunctionSymbol("a", nil, sortA)
	f := NewFunctionSymbol("f", []*Sort{sortA}, sortA)

	ia := table.ResolveOrDefine(a)
	iaAgain := table.ResolveOrDefine(a)
	if ia != iaAgain {
		t.Errorf("ResolveOrDefine should be idempotent, got %d then %d", ia, iaAgain)
	}

	ifn := table.ResolveOrDefine(f)
	if ifn == ia {
		t.Error("distinct symbols must get distinct indices")
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 symbols, got %d", table.Len())
	}

	if _, ok := table.Resolve(NewFunctionSymbol("unknown", nil, sortA)); ok {
		t.Error("Resolve should report unknown symbols as absent, not panic")
	}
}

func TestFreeVariablesOfGroundTermIsEmpty(t *testing.T) {
	sortA := NewSort("A")
	a := NewFunctionSymbol("a", nil, sortA)
	f := NewFunctionSymbol("f", []*Sort{sortA}, sortA)
	term := NewApplication(f, []Term{NewApplication(a, nil)})
	if FreeVariables(term).Len() != 0 {
		t.Error("a ground term should have no free variables")
	}
}

func TestFreeVariablesOfQuantifiedFormula(t *testing.T) {
	sortA := NewSort("A")
	v := &Variable{Index: 0, Sort: sortA}
	r := NewRelationSymbol("R", []*Sort{sortA})
	body := NewRelationApplication(r, []Term{NewVariable(v.Index, v.Sort)})
	bound := NewForAll(v, body)
	if FreeVariablesOf(bound).Contains(*v) {
		t.Error("variable bound by ForAll must not be free")
	}
	if FreeVariablesOf(body).Len() != 1 {
		t.Error("the same variable, unbound, must be free")
	}
}

func TestFormulaStringMatchesEmptyConnectiveConvention(t *testing.T) {
	if True().String() != "⊤" {
		t.Errorf("expected ⊤ for True(), got %q", True().String())
	}
	if False().String() != "⊥" {
		t.Errorf("expected ⊥ for False(), got %q", False().String())
	}
}
