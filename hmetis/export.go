// SPDX-License-Identifier: MIT
// Package: hyperlath/hmetis
//
// export.go: single-pass hMETIS serializer.

package hmetis

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Format codes placed at the end of the header line.
const (
	FormatUnweighted    = ""
	FormatEdgeWeights   = "1"
	FormatNodeWeights   = "10"
	FormatBothWeighted  = "11"
	separator           = ' '
	lineTerminator      = '\n'
	initialLineCapacity = 64
)

// FormatCode returns the header fmt token for the given weight flags.
func FormatCode(weightedNodes, weightedEdges bool) string {
	switch {
	case weightedNodes && weightedEdges:
		return FormatBothWeighted
	case weightedNodes:
		return FormatNodeWeights
	case weightedEdges:
		return FormatEdgeWeights
	default:
		return FormatUnweighted
	}
}

// Write serializes g to w in hMETIS format.
//
// Implementation:
//   - Stage 1: Take a consistent Snapshot of g.
//   - Stage 2: Delegate to WriteSnapshot.
//
// Errors:
//   - ErrNilGraph / ErrNilWriter on nil arguments.
//   - Any error returned by w, wrapped.
func Write(w io.Writer, g *hypergraph.Hypergraph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}

	return WriteSnapshot(w, g.Snapshot(), opts...)
}

// WriteSnapshot serializes an already captured snapshot.
//
// Implementation:
//   - Stage 1: Header "<E> <V> " + fmt.
//   - Stage 2: One line per edge: optional weight, then each member, each followed by a space.
//   - Stage 3: One weight line per node when nodes are weighted.
//
// Lines are assembled with strconv.Append* into a reused buffer and pushed
// through a bufio.Writer; the writer's sticky error surfaces at Flush.
//
// Complexity: O(V + Σk) time, O(max line) extra space.
func WriteSnapshot(w io.Writer, s hypergraph.Snapshot, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	cfg := newExportConfig(opts...)
	rename := nodeRenamer(s.Nodes, cfg)

	bw := bufio.NewWriter(w)
	line := make([]byte, 0, initialLineCapacity)

	// header
	line = strconv.AppendInt(line, int64(len(s.Edges)), 10)
	line = append(line, separator)
	line = strconv.AppendInt(line, int64(len(s.Nodes)), 10)
	line = append(line, separator)
	line = append(line, FormatCode(s.WeightedNodes, s.WeightedEdges)...)
	line = append(line, lineTerminator)
	_, _ = bw.Write(line)

	for _, e := range s.Edges {
		line = line[:0]
		if s.WeightedEdges {
			line = strconv.AppendInt(line, e.Weight, 10)
			line = append(line, separator)
		}
		for _, id := range e.NodeIDs {
			line = strconv.AppendInt(line, int64(rename(id)), 10)
			line = append(line, separator)
		}
		line = append(line, lineTerminator)
		_, _ = bw.Write(line)
	}

	if s.WeightedNodes {
		for _, n := range s.Nodes {
			line = strconv.AppendInt(line[:0], n.Weight, 10)
			line = append(line, lineTerminator)
			_, _ = bw.Write(line)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("hmetis: write: %w", err)
	}

	return nil
}

// Marshal returns the hMETIS encoding of g.
func Marshal(g *hypergraph.Hypergraph, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// nodeRenamer returns the id mapping for this export: identity by default,
// rank-in-ascending-order + base with WithRemappedIDs.
func nodeRenamer(nodes []hypergraph.Node, cfg exportConfig) func(hypergraph.NodeID) int {
	if !cfg.remap {
		return func(id hypergraph.NodeID) int { return int(id) }
	}
	rank := make(map[hypergraph.NodeID]int, len(nodes))
	for i, n := range nodes {
		rank[n.ID] = cfg.base + i
	}

	return func(id hypergraph.NodeID) int { return rank[id] }
}
