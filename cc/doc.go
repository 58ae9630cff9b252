/*
Package cc implements a congruence closure engine: a hash-consed, mutable
DAG of term nodes paired with a union-find structure over congruence
classes.

A Graph starts empty. Nodes are added and classes are merged, never
removed; after any sequence of AddNode/Merge calls the classes form the
smallest congruence relation containing the asserted equalities. Invalid
child node indices passed to AddNode are programmer errors and panic
rather than returning an error. The graph does not know symbol arities and
does not check that a symbol is always used with the same number of
children.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cc

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'euf.cc'.
func tracer() tracing.Trace {
	return tracing.Select("euf.cc")
}
