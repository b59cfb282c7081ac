package ewgraph

import "fmt"

// Graph is an edge-weighted undirected graph over vertices [0, V).
//
// Edges are stored in an append-only arena indexed by EdgeID; adjacency
// lists hold handles, not copies, so an edge occupies one arena slot no
// matter how many lists reference it. The graph is built once and read by
// the algorithms; it is not safe for concurrent mutation, but any number
// of readers may share it (the msf sensitivity workers do).
type Graph struct {
	v     int
	edges []Edge
	adj   [][]EdgeID
}

// New creates a graph with v vertices and no edges.
// Returns ErrNegativeVertices if v < 0.
// Complexity: O(V).
func New(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Graph{v: v, adj: make([][]EdgeID, v)}, nil
}

// V returns the number of vertices. Complexity: O(1).
func (g *Graph) V() int { return g.v }

// E returns the number of edges. Complexity: O(1).
func (g *Graph) E() int { return len(g.edges) }

// AddEdge adds an undirected edge between v and w with the given weight and
// returns its handle. Endpoints are normalized so Either() reports the
// lower-numbered vertex. Self-loops and parallel edges are both accepted;
// a self-loop is listed twice in its endpoint's adjacency.
// Returns ErrVertexRange if either endpoint lies outside [0, V).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, w int, weight float64) (EdgeID, error) {
	if err := g.validate(v); err != nil {
		return NoEdge, err
	}
	if err := g.validate(w); err != nil {
		return NoEdge, err
	}
	if v > w {
		v, w = w, v
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{id: id, v: v, w: w, wt: weight})
	g.adj[v] = append(g.adj[v], id)
	g.adj[w] = append(g.adj[w], id)

	return id, nil
}

// Edge returns the edge named by id.
// Returns ErrEdgeRange if id names no edge of this graph.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d (E=%d)", ErrEdgeRange, id, len(g.edges))
	}

	return g.edges[int(id)], nil
}

// Edges returns all edges in handle order. The slice is a fresh copy; the
// caller may iterate it any number of times or reorder it freely.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Adjacent returns the edges incident to v, in insertion order. Self-loops
// appear twice. The slice is a fresh copy.
// Returns ErrVertexRange if v lies outside [0, V).
// Complexity: O(deg(v)).
func (g *Graph) Adjacent(v int) ([]Edge, error) {
	if err := g.validate(v); err != nil {
		return nil, err
	}

	out := make([]Edge, len(g.adj[v]))
	for i, id := range g.adj[v] {
		out[i] = g.edges[int(id)]
	}

	return out, nil
}

// WithoutEdge builds a new graph with the same vertex count containing
// every edge except the one named by id. Exclusion is by handle, so a
// parallel edge with identical endpoints and weight is preserved. The copy
// re-numbers its arena; handles do not carry over.
// Returns ErrEdgeRange if id names no edge of this graph.
// Complexity: O(V + E).
func (g *Graph) WithoutEdge(id EdgeID) (*Graph, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return nil, fmt.Errorf("%w: %d (E=%d)", ErrEdgeRange, id, len(g.edges))
	}

	reduced, err := New(g.v)
	if err != nil {
		return nil, err
	}
	for _, e := range g.edges {
		if e.id == id {
			continue
		}
		if _, err = reduced.AddEdge(e.v, e.w, e.wt); err != nil {
			return nil, err
		}
	}

	return reduced, nil
}

// validate returns ErrVertexRange when v lies outside [0, V).
func (g *Graph) validate(v int) error {
	if v < 0 || v >= g.v {
		return fmt.Errorf("%w: %d (V=%d)", ErrVertexRange, v, g.v)
	}

	return nil
}
