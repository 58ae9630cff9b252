package ast

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// sortComparator orders sorts by name, used only for the Language's
// bookkeeping sets below (the core never relies on sort order).
func sortComparator(a, b interface{}) int {
	return utils.StringComparator(a.(*Sort).Name, b.(*Sort).Name)
}

func relationComparator(a, b interface{}) int {
	return utils.StringComparator(a.(*RelationSymbol).Name, b.(*RelationSymbol).Name)
}

// Language is an enumerated vocabulary: sorts, function symbols and
// relation symbols. The solver reads only Functions; Sorts and Relations
// exist so ast can model a complete first-order language and so the
// parser (package syntax) has somewhere to register the vocabulary it
// discovers.
type Language struct {
	sorts     *treeset.Set
	relations *treeset.Set
	Functions *SymbolTable
}

// NewLanguage creates a Language from its declared vocabulary, in
// declaration order for Functions (symbol indices are positional).
func NewLanguage(sorts []*Sort, functions []*FunctionSymbol, relations []*RelationSymbol) *Language {
	l := &Language{
		sorts:     treeset.NewWith(sortComparator),
		relations: treeset.NewWith(relationComparator),
		Functions: NewSymbolTable(functions),
	}
	for _, s := range sorts {
		l.sorts.Add(s)
	}
	for _, r := range relations {
		l.relations.Add(r)
	}
	return l
}

// Sorts returns the declared sorts, ordered by name.
func (l *Language) Sorts() []*Sort {
	values := l.sorts.Values()
	out := make([]*Sort, len(values))
	for i, v := range values {
		out[i] = v.(*Sort)
	}
	return out
}

// Relations returns the declared relation symbols, ordered by name.
func (l *Language) Relations() []*RelationSymbol {
	values := l.relations.Values()
	out := make([]*RelationSymbol, len(values))
	for i, v := range values {
		out[i] = v.(*RelationSymbol)
	}
	return out
}

// SymbolTable is an ordered list of function symbols; a SymbolIndex is a
// zero-based position into it. Resolve reports a miss; ResolveOrDefine
// inserts on a miss instead of failing, so looking up an unknown symbol
// through it always succeeds.
type SymbolTable struct {
	symbols []*FunctionSymbol
}

// NewSymbolTable creates a symbol table seeded with the given symbols, in
// order; duplicate identities are collapsed to their first occurrence.
func NewSymbolTable(initial []*FunctionSymbol) *SymbolTable {
	t := &SymbolTable{}
	for _, s := range initial {
		t.ResolveOrDefine(s)
	}
	return t
}

// Len is the number of distinct symbols currently in the table.
func (t *SymbolTable) Len() int { return len(t.symbols) }

// At returns the symbol at a given SymbolIndex.
func (t *SymbolTable) At(index int) *FunctionSymbol { return t.symbols[index] }

// Resolve looks up sym's index by identity. ok is false if absent.
func (t *SymbolTable) Resolve(sym *FunctionSymbol) (index int, ok bool) {
	for i, s := range t.symbols {
		if s.Equal(sym) {
			return i, true
		}
	}
	return -1, false
}

// ResolveOrDefine returns sym's index, appending it as a new entry first if
// it is not already present. Looking up an unknown symbol therefore always
// succeeds instead of aborting.
func (t *SymbolTable) ResolveOrDefine(sym *FunctionSymbol) int {
	if i, ok := t.Resolve(sym); ok {
		return i
	}
	t.symbols = append(t.symbols, sym)
	index := len(t.symbols) - 1
	tracer().Debugf("resolve_or_define: new symbol %s at index %d", sym, index)
	return index
}

// Clone returns an independent copy of the table, sharing the underlying
// *FunctionSymbol values but not their slice header. Package solver clones
// a Language's table per Solver so that clause-local symbol discovery (a
// literal naming a symbol absent from the declared vocabulary) never
// mutates the Language it was built from.
func (t *SymbolTable) Clone() *SymbolTable {
	cp := make([]*FunctionSymbol, len(t.symbols))
	copy(cp, t.symbols)
	return &SymbolTable{symbols: cp}
}
