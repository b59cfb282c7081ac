// Package msf provides the optimality checker: four independently
// falsifiable conditions a minimum spanning forest must satisfy.
package msf

import (
	"fmt"
	"math"

	"github.com/veleth/spanforest/ewgraph"
	"github.com/veleth/spanforest/unionfind"
)

// Verify checks f against g and returns nil when all optimality conditions
// hold. A non-nil return is an internal-inconsistency diagnostic (the
// builder, not the input, is at fault); it names the violated condition and
// the offending edge.
//
// Checks, in order:
//  1. Weight consistency — the recomputed sum of forest edge weights equals
//     f.Weight() within the configured tolerance (WithTolerance, default
//     DefaultTolerance; only relevant for non-integral weights).
//  2. Acyclicity — inserting forest edges into a fresh DisjointSet never
//     merges two already-connected endpoints.
//  3. Spanning coverage — after all forest edges are inserted, no edge of g
//     crosses two different resulting components.
//  4. Cut optimality — for every forest edge e, rebuild a DisjointSet from
//     all forest edges except e (identity comparison by handle); every edge
//     of g crossing the induced cut must weigh at least as much as e.
//
// Cost: O(E·V·α(V)) worst case — one union-find rebuild per forest edge.
// Acceptable as a diagnostic, never on a hot path.
func Verify(g *ewgraph.Graph, f *Forest, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return ErrNilGraph
	}
	if f == nil {
		return ErrNilForest
	}
	if f.V() != g.V() {
		return fmt.Errorf("%w: forest V=%d, graph V=%d", ErrForestMismatch, f.V(), g.V())
	}

	forestEdges := f.Edges()
	graphEdges := g.Edges()

	// 1. Weight consistency.
	var total float64
	for _, e := range forestEdges {
		total += e.Weight()
	}
	if math.Abs(total-f.Weight()) > cfg.Tolerance {
		return fmt.Errorf("%w: recomputed %v, recorded %v", ErrWeightMismatch, total, f.Weight())
	}

	// 2. Acyclicity.
	ds, err := unionfind.New(g.V())
	if err != nil {
		return err
	}
	for _, e := range forestEdges {
		v := e.Either()
		w := e.Other(v)
		if ds.Connected(v, w) {
			return fmt.Errorf("%w: edge %s closes a cycle", ErrCycle, e)
		}
		ds.Union(v, w)
	}

	// 3. Spanning coverage: the forest components must match the graph's.
	for _, e := range graphEdges {
		v := e.Either()
		w := e.Other(v)
		if !ds.Connected(v, w) {
			return fmt.Errorf("%w: edge %s crosses two forest components", ErrNotSpanning, e)
		}
	}

	// 4. Cut optimality, one reduced partition per forest edge.
	for _, e := range forestEdges {
		cut, err := unionfind.New(g.V())
		if err != nil {
			return err
		}
		for _, other := range forestEdges {
			if other.ID() == e.ID() {
				continue // exclude by identity, not by value
			}
			x := other.Either()
			cut.Union(x, other.Other(x))
		}
		for _, crossing := range graphEdges {
			x := crossing.Either()
			y := crossing.Other(x)
			if cut.Connected(x, y) {
				continue // does not cross the cut induced by removing e
			}
			if crossing.Weight() < e.Weight() {
				return fmt.Errorf("%w: edge %s beats forest edge %s across its cut",
					ErrCutViolation, crossing, e)
			}
		}
	}

	return nil
}
