// Package ewgraph declares the Edge value type, the EdgeID handle and the
// sentinel errors shared by the graph methods.
package ewgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and access.
var (
	// ErrNegativeVertices indicates New was asked for a negative vertex count.
	ErrNegativeVertices = errors.New("ewgraph: vertex count must be non-negative")

	// ErrVertexRange indicates a vertex outside [0, V).
	ErrVertexRange = errors.New("ewgraph: vertex out of range")

	// ErrEdgeRange indicates an EdgeID that names no edge of this graph.
	ErrEdgeRange = errors.New("ewgraph: edge handle out of range")

	// ErrForeignVertex is the panic value of Edge.Other for a vertex that is
	// neither endpoint of the edge.
	ErrForeignVertex = errors.New("ewgraph: vertex is not an endpoint of this edge")

	// ErrBadFormat indicates malformed Parse input; it is wrapped with the
	// offending line.
	ErrBadFormat = errors.New("ewgraph: malformed graph description")
)

// EdgeID is a stable handle into a graph's edge arena. Handles are dense,
// issued in AddEdge order, and valid only for the graph that issued them.
type EdgeID int

// NoEdge is the EdgeID sentinel meaning "no edge" (e.g. a forest root).
const NoEdge EdgeID = -1

// Edge is an immutable weighted undirected edge between two vertices.
// The zero Edge is not meaningful; obtain edges from a Graph.
type Edge struct {
	id   EdgeID
	v, w int
	wt   float64
}

// ID returns the handle identifying this edge within its graph.
func (e Edge) ID() EdgeID { return e.id }

// Either returns one endpoint of the edge (the lower-numbered one).
func (e Edge) Either() int { return e.v }

// Other returns the endpoint opposite to vertex.
// Panics with ErrForeignVertex when vertex is neither endpoint.
func (e Edge) Other(vertex int) int {
	switch vertex {
	case e.v:
		return e.w
	case e.w:
		return e.v
	default:
		panic(fmt.Errorf("%w: %d on %s", ErrForeignVertex, vertex, e))
	}
}

// Weight returns the edge weight. Weights may be negative, zero, and need
// not be distinct across edges.
func (e Edge) Weight() float64 { return e.wt }

// String renders the edge as "v-w weight" with five fractional digits,
// e.g. "4-5 0.35000". The rendering is stable and feeds the alphanumeric
// report ordering.
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d %.5f", e.v, e.w, e.wt)
}
