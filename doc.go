// Package hyperlath is an in-memory hypergraph toolkit: a thread-safe store
// of weighted nodes and weighted hyperedges, a deterministic hMETIS exporter,
// and seeded generators for test and benchmark inputs.
//
// What is in the box?
//
//	hypergraph/     the store: ids, nodes, hyperedges, cascading removal,
//	                duplicate-edge detection, clones and snapshots
//	hmetis/         byte-exact hMETIS serializer over a consistent snapshot
//	builder/        Windows, Star, CompleteUniform, RandomUniform constructors
//	cmd/hyperlath/  CLI: generate hypergraphs and export them, manage config
//
// Quick start:
//
//	g := hypergraph.New(hypergraph.WithWeightedEdges())
//	a, _ := g.AddNode(1)
//	b, _ := g.AddNode(1)
//	_, _ = g.AddEdge([]hypergraph.NodeID{a, b}, 3)
//	_ = hmetis.Write(os.Stdout, g) // "1 2 1\n3 0 1 \n"
//
// Guarantees:
//   - Every failed mutation leaves the store unchanged.
//   - Enumeration is ascending by id, so exports are reproducible.
//   - One RWMutex per store; Snapshot gives exporters a single consistent view.
package hyperlath
