package cc

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// NodeIndex addresses a term node within a Graph.
type NodeIndex int

// SymbolIndex addresses a function symbol in the solver's symbol table
// (package solver). The graph itself treats symbols opaquely — only
// identity matters.
type SymbolIndex int

// noParent marks a node as a congruence-class root.
const noParent NodeIndex = -1

type node struct {
	symbol      SymbolIndex
	children    []NodeIndex
	parents     []NodeIndex // nodes that list this node as a child; drives congruence propagation
	classParent NodeIndex   // noParent if this node is a class root
	classHeight int         // union-by-rank upper bound, meaningful only at roots
}

// Graph is a persistent congruence closure engine over ground terms. The
// zero value is not usable; construct one with New.
type Graph struct {
	nodes   []node
	consKey map[string][]NodeIndex // hash-consing buckets, keyed by structural hash
}

// New returns an empty congruence graph.
func New() *Graph {
	return &Graph{consKey: make(map[string][]NodeIndex)}
}

// consSignature is hashed with structhash to produce a hash-consing bucket
// key for (symbol, children); ties within a bucket are broken by an exact
// comparison in AddNode.
type consSignature struct {
	Symbol   SymbolIndex
	Children []NodeIndex
}

func hashConsKey(symbol SymbolIndex, children []NodeIndex) string {
	key, err := structhash.Hash(consSignature{Symbol: symbol, Children: children}, 1)
	if err != nil {
		// structhash only fails on unsupported field types; consSignature
		// has none, so this would indicate a library contract violation.
		panic(fmt.Sprintf("cc: failed to hash node signature: %v", err))
	}
	return key
}

func sameChildren(a, b []NodeIndex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AddNode inserts a term node for symbol applied to children, returning its
// index. If a node with the identical (symbol, children) tuple already
// exists, its index is returned instead (hash-consing). Every entry of
// children must be a valid, previously returned NodeIndex; violating this
// is a programmer error and panics.
func (g *Graph) AddNode(symbol SymbolIndex, children []NodeIndex) NodeIndex {
	for _, c := range children {
		if int(c) < 0 || int(c) >= len(g.nodes) {
			panic(fmt.Sprintf("cc: AddNode: child index %d does not exist", c))
		}
	}
	key := hashConsKey(symbol, children)
	for _, idx := range g.consKey[key] {
		if g.nodes[idx].symbol == symbol && sameChildren(g.nodes[idx].children, children) {
			return idx
		}
	}
	idx := NodeIndex(len(g.nodes))
	childrenCopy := append([]NodeIndex(nil), children...)
	g.nodes = append(g.nodes, node{
		symbol:      symbol,
		children:    childrenCopy,
		classParent: noParent,
		classHeight: 0,
	})
	for _, c := range children {
		g.nodes[c].parents = append(g.nodes[c].parents, idx)
	}
	g.consKey[key] = append(g.consKey[key], idx)
	tracer().Debugf("add_node symbol=%d children=%v -> %d", symbol, children, idx)
	return idx
}

// Find returns the current representative of n's congruence class, with
// path compression.
func (g *Graph) Find(n NodeIndex) NodeIndex {
	root := n
	for g.nodes[root].classParent != noParent {
		root = g.nodes[root].classParent
	}
	for g.nodes[n].classParent != noParent && n != root {
		next := g.nodes[n].classParent
		g.nodes[n].classParent = root
		n = next
	}
	return root
}

// SameClass reports whether n1 and n2 are in the same congruence class.
func (g *Graph) SameClass(n1, n2 NodeIndex) bool {
	return g.Find(n1) == g.Find(n2)
}

// HaveCongruentChildren reports whether n1 and n2 have equal-length
// children sequences whose corresponding entries are pairwise same-class.
func (g *Graph) HaveCongruentChildren(n1, n2 NodeIndex) bool {
	c1, c2 := g.nodes[n1].children, g.nodes[n2].children
	if len(c1) != len(c2) {
		return false
	}
	for i := range c1 {
		if g.Find(c1[i]) != g.Find(c2[i]) {
			return false
		}
	}
	return true
}

type pendingPair struct{ a, b NodeIndex }

// Merge enforces Find(n1) == Find(n2) and restores the congruence-closure
// fixpoint before returning. The merge work list is an arraystack
// (github.com/emirpasic/gods).
//
// Union-by-rank always re-parents a chosen root onto the other (standard
// union-find). Congruence propagation considers the parents of every node
// currently in either merged class, not just the two roots' own direct
// parents, by scanning class membership after each union rather than doing
// a full all-pairs rescan of the whole graph.
func (g *Graph) Merge(n1, n2 NodeIndex) {
	work := arraystack.New()
	work.Push(pendingPair{n1, n2})
	for !work.Empty() {
		v, _ := work.Pop()
		p := v.(pendingPair)
		ra, rb := g.Find(p.a), g.Find(p.b)
		if ra == rb {
			continue
		}
		var newRoot, absorbed NodeIndex
		switch {
		case g.nodes[ra].classHeight < g.nodes[rb].classHeight:
			newRoot, absorbed = rb, ra
		case g.nodes[rb].classHeight < g.nodes[ra].classHeight:
			newRoot, absorbed = ra, rb
		default:
			newRoot, absorbed = ra, rb
			g.nodes[ra].classHeight++
		}
		g.nodes[absorbed].classParent = newRoot
		tracer().Debugf("merge: class %d absorbed into %d", absorbed, newRoot)

		for _, cand := range g.congruentParentPairs(newRoot) {
			work.Push(cand)
		}
	}
}

// congruentParentPairs scans every node currently in root's class, collects
// their structural parents, and returns every distinct pair among those
// parents that share a symbol and are congruent under the current classes
// but are not already merged.
func (g *Graph) congruentParentPairs(root NodeIndex) []pendingPair {
	var candidates []NodeIndex
	for i := range g.nodes {
		if g.Find(NodeIndex(i)) == root {
			candidates = append(candidates, g.nodes[i].parents...)
		}
	}
	var pairs []pendingPair
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			x, y := candidates[i], candidates[j]
			if x == y || g.SameClass(x, y) {
				continue
			}
			if g.nodes[x].symbol == g.nodes[y].symbol && g.HaveCongruentChildren(x, y) {
				pairs = append(pairs, pendingPair{x, y})
			}
		}
	}
	return pairs
}

// NumNodes returns the number of term nodes currently in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// String renders the graph for debugging: one line per node with its
// symbol, class representative, parents and children.
func (g *Graph) String() string {
	s := ""
	for i := range g.nodes {
		n := NodeIndex(i)
		s += fmt.Sprintf("%d: symbol=%d, class=%d", i, g.nodes[i].symbol, g.Find(n))
		if len(g.nodes[i].parents) > 0 {
			s += fmt.Sprintf(", parents=%v", g.nodes[i].parents)
		}
		if len(g.nodes[i].children) > 0 {
			s += fmt.Sprintf(", children=%v", g.nodes[i].children)
		}
		if i+1 < len(g.nodes) {
			s += "\n"
		}
	}
	return s
}
