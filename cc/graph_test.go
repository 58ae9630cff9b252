package cc

import "testing"

func TestHashConsingDedupesIdenticalNodes(t *testing.T) {
	g := New()
	a := g.AddNode(0, nil)
	fa1 := g.AddNode(1, []NodeIndex{a})
	fa2 := g.AddNode(1, []NodeIndex{a})
	if fa1 != fa2 {
		t.Fatalf("expected hash-consing to dedupe identical (symbol, children), got %d and %d", fa1, fa2)
	}
	if g.NumNodes() != 2 {
		t.Fatalf("expected 2 distinct nodes, got %d", g.NumNodes())
	}
}

func TestAddNodeRejectsInvalidChild(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected AddNode to panic on an invalid child index")
		}
	}()
	g := New()
	g.AddNode(1, []NodeIndex{42})
}

func TestSameClassIsReflexiveSymmetricTransitive(t *testing.T) {
	g := New()
	a := g.AddNode(0, nil)
	b := g.AddNode(1, nil)
	c := g.AddNode(2, nil)

	if !g.SameClass(a, a) {
		t.Error("same_class must be reflexive")
	}

	g.Merge(a, b)
	if g.SameClass(a, b) != g.SameClass(b, a) {
		t.Error("same_class must be symmetric")
	}

	g.Merge(b, c)
	if !g.SameClass(a, c) {
		t.Error("same_class must be transitive: a=b, b=c implies a=c")
	}
}

func TestMonotonicity(t *testing.T) {
	g := New()
	a := g.AddNode(0, nil)
	b := g.AddNode(1, nil)
	g.Merge(a, b)
	if !g.SameClass(a, b) {
		t.Fatal("expected a and b to be merged")
	}
	// further unrelated merges must not un-merge a and b
	c := g.AddNode(2, nil)
	d := g.AddNode(3, nil)
	g.Merge(c, d)
	if !g.SameClass(a, b) {
		t.Error("merging unrelated nodes must not separate an existing class")
	}
}

// TestCongruencePropagation checks that merging f(a) with a forces
// f(f(a)) into the same class as a via congruence closure.
func TestCongruencePropagation(t *testing.T) {
	g := New()
	const fSym SymbolIndex = 1
	a := g.AddNode(0, nil)
	fa := g.AddNode(fSym, []NodeIndex{a})
	ffa := g.AddNode(fSym, []NodeIndex{fa})

	g.Merge(fa, a)

	if !g.SameClass(ffa, a) {
		t.Error("expected congruence closure to derive f(f(a)) = a from f(a) = a")
	}
}

// TestThreeAndFiveCycle checks that f^3(a) = a and f^5(a) = a together
// force f(a) = a by congruence closure (gcd(3,5) = 1).
func TestThreeAndFiveCycle(t *testing.T) {
	g := New()
	const fSym SymbolIndex = 1
	a := g.AddNode(0, nil)
	terms := []NodeIndex{a}
	for i := 0; i < 5; i++ {
		terms = append(terms, g.AddNode(fSym, []NodeIndex{terms[len(terms)-1]}))
	}
	// terms[0]=a, terms[1]=f(a), ..., terms[5]=f^5(a)
	g.Merge(terms[3], terms[0]) // f^3(a) = a
	g.Merge(terms[5], terms[0]) // f^5(a) = a

	if !g.SameClass(terms[1], terms[0]) {
		t.Error("expected f(a) = a to follow from the 3-cycle and 5-cycle")
	}
}

// TestHashConsingBucketDistinguishesDistinctTuples guards against a
// consKey bucket collision silently merging two different term nodes: it
// forces many distinct (symbol, children) tuples to share a symbol and
// argument count, then checks that AddNode's exact comparison loop still
// tells them apart. A bucket collision would show up here as two distinct
// tuples getting the same index, or a re-add landing on the wrong member
// of the bucket.
func TestHashConsingBucketDistinguishesDistinctTuples(t *testing.T) {
	g := New()
	const fSym SymbolIndex = 7
	const n = 32

	leaves := make([]NodeIndex, n)
	for i := range leaves {
		leaves[i] = g.AddNode(SymbolIndex(i), nil)
	}

	apps := make([]NodeIndex, n)
	for i := range apps {
		apps[i] = g.AddNode(fSym, []NodeIndex{leaves[i]})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if apps[i] == apps[j] {
				t.Fatalf("f(leaf%d) and f(leaf%d) hash-consed to the same index %d despite distinct children", i, j, apps[i])
			}
		}
	}

	for i, want := range apps {
		if got := g.AddNode(fSym, []NodeIndex{leaves[i]}); got != want {
			t.Fatalf("re-adding f(leaf%d) returned %d, expected the original index %d", i, got, want)
		}
	}
	if g.NumNodes() != 2*n {
		t.Fatalf("expected %d nodes (no spurious dedup or duplication), got %d", 2*n, g.NumNodes())
	}
}

func TestHaveCongruentChildrenRequiresEqualArity(t *testing.T) {
	g := New()
	a := g.AddNode(0, nil)
	b := g.AddNode(1, nil)
	fa := g.AddNode(2, []NodeIndex{a})
	gab := g.AddNode(3, []NodeIndex{a, b})
	if g.HaveCongruentChildren(fa, gab) {
		t.Error("nodes of different arity cannot be congruent")
	}
}
