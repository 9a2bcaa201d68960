// Package hmetis writes a hypergraph.Hypergraph in the plain-text input format
// of the hMETIS partitioner.
//
// Layout (every value followed by a single space, lines end with '\n'):
//
//	<E> <V> <fmt>
//	[<edgeWeight> ]<nodeId> <nodeId> ...      one line per edge, ascending edge id
//	[<nodeWeight>]                            one line per node, ascending node id,
//	                                          only when nodes are weighted
//
// fmt is "11" (both weighted), "10" (nodes only), "1" (edges only) or empty.
// The header always carries the separator before fmt, so an unweighted header
// reads "4 7 " with a trailing space. Edge lines end with a space too. Node
// weight lines do not. Consumers depend on these exact bytes.
//
// Node ids are written as stored. hMETIS documents contiguous numbering; stores
// with gaps (after RemoveNode, or sparse Explicit ids) can opt in to
// WithRemappedIDs(base) to renumber nodes base, base+1, ... in ascending id order.
//
// Export is read-only: it works on a Snapshot taken under one read lock, and its
// only failure mode is the destination writer's own error.
package hmetis
