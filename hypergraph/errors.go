// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// errors.go: sentinel errors for the hypergraph store.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Methods wrap sentinels with operation context ("AddEdge(id=3): ...: %w").
//   • A failed operation never leaves a partial mutation behind.
//   • Nothing here panics on user input; option constructors panic on nil arguments.

package hypergraph

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID indicates an add with an id already present in the relevant store.
	ErrDuplicateID = errors.New("hypergraph: duplicate id")

	// ErrNotFound is the umbrella for lookups of absent ids.
	// ErrNodeNotFound and ErrEdgeNotFound both satisfy errors.Is(err, ErrNotFound).
	ErrNotFound = errors.New("hypergraph: not found")

	// ErrNodeNotFound indicates an operation referenced a node id absent from the node store.
	ErrNodeNotFound = fmt.Errorf("hypergraph: node %w", errNotFoundTail)

	// ErrEdgeNotFound indicates an operation referenced an edge id absent from the edge store.
	ErrEdgeNotFound = fmt.Errorf("hypergraph: edge %w", errNotFoundTail)

	// ErrEmptyEdge indicates an attempt to create an edge over zero nodes.
	ErrEmptyEdge = errors.New("hypergraph: edge must reference at least one node")

	// ErrUnknownNode indicates an edge referencing a node that was never added.
	ErrUnknownNode = errors.New("hypergraph: edge references unknown node")

	// ErrDuplicateEdgeContent indicates two edges would share the same node-id set
	// while duplicate detection is enabled.
	ErrDuplicateEdgeContent = errors.New("hypergraph: duplicate edge content")

	// ErrIDRequired indicates the Explicit policy received an add without an id option.
	ErrIDRequired = errors.New("hypergraph: explicit id required")

	// ErrExplicitIDNotAllowed indicates the Sequential policy received an id option.
	ErrExplicitIDNotAllowed = errors.New("hypergraph: explicit id not allowed by sequential policy")

	// ErrUnknownPolicy indicates ParsePolicy received a name it does not recognise.
	ErrUnknownPolicy = errors.New("hypergraph: unknown id policy")
)

// errNotFoundTail lets the node/edge flavours unwrap to ErrNotFound while
// keeping their own identity for errors.Is.
var errNotFoundTail = notFound{}

type notFound struct{}

func (notFound) Error() string { return "not found" }

func (notFound) Is(target error) bool { return target == ErrNotFound }
