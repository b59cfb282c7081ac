// Package msf provides the Prim forest builder: one indexed-frontier pass
// per connected component over an *ewgraph.Graph.
package msf

import (
	"math"

	"github.com/veleth/spanforest/ewgraph"
	"github.com/veleth/spanforest/indexpq"
)

// Forest is the result of one Build: for every non-root vertex, the edge
// that attached it to its tree, plus the derived total weight. A Forest is
// read-only after construction.
type Forest struct {
	v          int
	components int
	attach     []ewgraph.Edge // attaching edge per vertex, valid when attached[v]
	attached   []bool         // false for component roots
	edges      []ewgraph.Edge // non-root attaching edges, ascending vertex order
	weight     float64
}

// V returns the vertex count of the graph the forest was built from.
func (f *Forest) V() int { return f.v }

// Components returns the number of trees in the forest, which equals the
// number of connected components of the source graph.
func (f *Forest) Components() int { return f.components }

// Weight returns the total weight of the forest. Complexity: O(1).
func (f *Forest) Weight() float64 { return f.weight }

// Len returns the number of forest edges (V minus Components).
func (f *Forest) Len() int { return len(f.edges) }

// Edges returns the forest edges in ascending attached-vertex order.
// The slice is a fresh copy. Complexity: O(V).
func (f *Forest) Edges() []ewgraph.Edge {
	out := make([]ewgraph.Edge, len(f.edges))
	copy(out, f.edges)

	return out
}

// EdgeTo returns the edge that attached vertex v to its tree, or ok=false
// when v is a component root or out of range.
func (f *Forest) EdgeTo(v int) (ewgraph.Edge, bool) {
	if v < 0 || v >= f.v || !f.attached[v] {
		return ewgraph.Edge{}, false
	}

	return f.attach[v], true
}

// Build computes the minimum spanning forest of g using Prim's algorithm
// with a vertex-indexed priority frontier.
//
// Steps:
//  1. Validate g != nil.
//  2. Allocate per-call buffers: distTo (init +Inf), edgeTo (init NoEdge),
//     marked, and one indexpq frontier sized to V. Nothing is shared with
//     other invocations.
//  3. For every vertex s not yet marked (so disconnected inputs are covered
//     by one independent Prim pass per component): set distTo[s]=0, insert
//     s, then repeatedly extract the minimum-key vertex, mark it, and relax
//     its incident edges — an edge to an unmarked neighbor w improves the
//     frontier when its weight is strictly below distTo[w] (decrease-key if
//     w is enqueued, insert otherwise). Self-loops are skipped implicitly:
//     the opposite endpoint of a settled vertex is already marked.
//  4. Collect the surviving edgeTo entries into the forest edge set and
//     sum their weights.
//
// Tie-breaking among equal frontier keys follows binary-heap extraction
// order, which is deterministic for a fixed graph: rebuilding from the same
// graph always yields the same forest, though it may be any one of the
// equal-weight optima.
//
// With WithVerify() the full optimality check runs on the result and its
// error, if any, is returned alongside a nil forest.
//
// Complexity: O(E log V) time, O(V) extra space.
func Build(g *ewgraph.Graph, opts ...Option) (*Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	v := g.V()
	b := &builder{
		g:      g,
		distTo: make([]float64, v),
		edgeTo: make([]ewgraph.EdgeID, v),
		marked: make([]bool, v),
		pq:     indexpq.New(v),
	}
	for i := 0; i < v; i++ {
		b.distTo[i] = math.Inf(1)
		b.edgeTo[i] = ewgraph.NoEdge
	}

	// One Prim pass per connected component.
	components := 0
	for s := 0; s < v; s++ {
		if b.marked[s] {
			continue
		}
		components++
		if err := b.grow(s); err != nil {
			return nil, err
		}
	}

	f := &Forest{
		v:          v,
		components: components,
		attach:     make([]ewgraph.Edge, v),
		attached:   make([]bool, v),
		edges:      make([]ewgraph.Edge, 0, v-components),
	}
	for vertex, id := range b.edgeTo {
		if id == ewgraph.NoEdge {
			continue
		}
		e, err := g.Edge(id)
		if err != nil {
			return nil, err
		}
		f.attach[vertex] = e
		f.attached[vertex] = true
		f.edges = append(f.edges, e)
		f.weight += e.Weight()
	}

	if cfg.Verify {
		if err := Verify(g, f, WithTolerance(cfg.Tolerance)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// builder holds the mutable state of a single Build execution.
type builder struct {
	g      *ewgraph.Graph
	distTo []float64        // best known weight of an edge connecting v to the tree
	edgeTo []ewgraph.EdgeID // that edge
	marked []bool           // v is settled
	pq     *indexpq.IndexMinPQ
}

// grow runs one Prim pass over the component containing s.
func (b *builder) grow(s int) error {
	b.distTo[s] = 0
	b.pq.Insert(s, 0)
	for !b.pq.IsEmpty() {
		if err := b.scan(b.pq.DelMin()); err != nil {
			return err
		}
	}

	return nil
}

// scan settles vertex v and relaxes its incident edges into the frontier.
func (b *builder) scan(v int) error {
	b.marked[v] = true
	incident, err := b.g.Adjacent(v)
	if err != nil {
		return err
	}
	for _, e := range incident {
		w := e.Other(v)
		if b.marked[w] {
			continue // obsolete edge (covers self-loops)
		}
		if e.Weight() < b.distTo[w] {
			b.distTo[w] = e.Weight()
			b.edgeTo[w] = e.ID()
			if b.pq.Contains(w) {
				b.pq.DecreaseKey(w, b.distTo[w])
			} else {
				b.pq.Insert(w, b.distTo[w])
			}
		}
	}

	return nil
}
