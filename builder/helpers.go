// Package builder: shared helpers used by the constructors.
//
// Helpers honour the target store's id policy: Sequential stores assign ids
// themselves, Explicit stores receive ids just past the highest present one.
package builder

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// addNodes inserts n nodes and returns their ids in insertion order.
// Node weights come from cfg.nodeWeightFn when g exports node weights, else 0.
//
// Complexity: O(n) plus one O(V log V) scan for the Explicit base id.
func addNodes(g *hypergraph.Hypergraph, n int, cfg builderConfig, method string) ([]hypergraph.NodeID, error) {
	explicit := g.Policy() == hypergraph.Explicit
	var base hypergraph.NodeID
	if explicit {
		base = nextNodeID(g)
	}
	useWeight := g.WeightedNodes()

	ids := make([]hypergraph.NodeID, 0, n)
	var (
		i    int
		w    int64
		opts []hypergraph.NodeOption
	)
	for i = 0; i < n; i++ {
		w = 0
		if useWeight {
			w = cfg.nodeWeightFn(cfg.rng)
		}
		opts = opts[:0]
		if explicit {
			opts = append(opts, hypergraph.WithNodeID(base+hypergraph.NodeID(i)))
		}
		id, err := g.AddNode(w, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// edgeEmitter adds edges on behalf of one constructor call, tracking the next
// Explicit edge id locally so the store is scanned once.
type edgeEmitter struct {
	g         *hypergraph.Hypergraph
	cfg       builderConfig
	method    string
	explicit  bool
	useWeight bool
	next      hypergraph.EdgeID
}

func newEdgeEmitter(g *hypergraph.Hypergraph, cfg builderConfig, method string) *edgeEmitter {
	em := &edgeEmitter{
		g:         g,
		cfg:       cfg,
		method:    method,
		explicit:  g.Policy() == hypergraph.Explicit,
		useWeight: g.WeightedEdges(),
	}
	if em.explicit {
		em.next = nextEdgeID(g)
	}

	return em
}

// emit adds one edge over members. Edge weight comes from cfg.edgeWeightFn
// when g exports edge weights, else 0.
func (em *edgeEmitter) emit(members []hypergraph.NodeID) (hypergraph.EdgeID, error) {
	var w int64
	if em.useWeight {
		w = em.cfg.edgeWeightFn(em.cfg.rng)
	}
	var opts []hypergraph.EdgeOption
	if em.explicit {
		opts = append(opts, hypergraph.WithEdgeID(em.next))
	}
	id, err := em.g.AddEdge(members, w, opts...)
	if err != nil {
		return 0, fmt.Errorf("%s: AddEdge(%v): %w", em.method, members, err)
	}
	if em.explicit {
		em.next++
	}

	return id, nil
}

// nextNodeID returns one past the highest node id present, or 0.
func nextNodeID(g *hypergraph.Hypergraph) hypergraph.NodeID {
	ids := g.NodeIDList()
	if len(ids) == 0 {
		return 0
	}

	return ids[len(ids)-1] + 1
}

// nextEdgeID returns one past the highest edge id present, or 0.
func nextEdgeID(g *hypergraph.Hypergraph) hypergraph.EdgeID {
	ids := g.EdgeIDList()
	if len(ids) == 0 {
		return 0
	}

	return ids[len(ids)-1] + 1
}

// binomial returns C(n,k), saturating at limit+1 once it exceeds limit.
// limit is clamped to math.MaxInt-1 so the saturated value stays representable.
// Each step multiplies into 128 bits and divides back exactly, so large n
// saturates instead of wrapping.
func binomial(n, k, limit int) int {
	if k < 0 || k > n {
		return 0
	}
	if limit >= math.MaxInt {
		limit = math.MaxInt - 1
	}
	if k > n-k {
		k = n - k
	}
	c := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(c, uint64(n-k+i))
		if hi >= uint64(i) {
			return limit + 1
		}
		c, _ = bits.Div64(hi, lo, uint64(i))
		if c > uint64(limit) {
			return limit + 1
		}
	}

	return int(c)
}
