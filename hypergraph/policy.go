// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// policy.go: id allocation strategies.
//
// Two policies exist and the set is closed (IDPolicy has unexported methods):
//
//	Explicit:   caller supplies every id; members kept in input order;
//	            duplicate detection off unless WithDuplicateDetection(true).
//	Sequential: store assigns ids; members kept ascending;
//	            duplicate detection on unless WithDuplicateDetection(false).
//
// Sequential allocation is a high-water mark: the next id is one past the
// highest id ever assigned, so ids freed by removal are never reused.

package hypergraph

import (
	"fmt"
	"strings"
)

// IDPolicy decides how node and edge ids are obtained and how edge members are ordered.
type IDPolicy interface {
	// Name returns the lowercase policy name ("explicit" or "sequential").
	Name() string

	// allocate resolves the id for one insertion. high is the highest id the
	// store has seen (-1 when empty).
	allocate(call callOpts, high int) (int, error)
	// dedupByDefault is the duplicate-detection setting used when the caller did not choose.
	dedupByDefault() bool
	// sortsMembers reports whether edge members are stored ascending.
	sortsMembers() bool
}

// Policy names accepted by ParsePolicy.
const (
	PolicyExplicit   = "explicit"
	PolicySequential = "sequential"
)

var (
	// Explicit requires WithNodeID / WithEdgeID on every add.
	Explicit IDPolicy = explicitPolicy{}

	// Sequential assigns 0, 1, 2, ... and rejects caller-supplied ids.
	Sequential IDPolicy = sequentialPolicy{}
)

type explicitPolicy struct{}

func (explicitPolicy) Name() string { return PolicyExplicit }

func (explicitPolicy) allocate(call callOpts, _ int) (int, error) {
	if !call.hasID {
		return 0, ErrIDRequired
	}

	return call.id, nil
}

func (explicitPolicy) dedupByDefault() bool { return false }

func (explicitPolicy) sortsMembers() bool { return false }

type sequentialPolicy struct{}

func (sequentialPolicy) Name() string { return PolicySequential }

func (sequentialPolicy) allocate(call callOpts, high int) (int, error) {
	if call.hasID {
		return 0, ErrExplicitIDNotAllowed
	}

	return high + 1, nil
}

func (sequentialPolicy) dedupByDefault() bool { return true }

func (sequentialPolicy) sortsMembers() bool { return true }

// ParsePolicy maps a policy name (case-insensitive) to its IDPolicy.
func ParsePolicy(name string) (IDPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyExplicit:
		return Explicit, nil
	case PolicySequential, "":
		return Sequential, nil
	default:
		return nil, fmt.Errorf("ParsePolicy(%q): %w", name, ErrUnknownPolicy)
	}
}
