package hmetis

import "errors"

var (
	// ErrNilGraph indicates Write or Marshal received a nil *hypergraph.Hypergraph.
	ErrNilGraph = errors.New("hmetis: graph is nil")

	// ErrNilWriter indicates Write received a nil io.Writer.
	ErrNilWriter = errors.New("hmetis: writer is nil")
)
