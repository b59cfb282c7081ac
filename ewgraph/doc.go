// Package ewgraph defines the edge-weighted undirected graph consumed by the
// msf engine: vertices are dense integers in [0, V), edges live in an arena
// and are addressed by stable EdgeID handles.
//
// What & Why
//
//   - Vertices carry identity only. Algorithms over the graph index straight
//     into per-vertex buffers (distTo, marked, parent arrays) without any
//     map lookups or ID translation.
//
//   - Edges are immutable once added and are compared *by handle*, never by
//     (endpoints, weight) value. Two parallel edges with equal endpoints and
//     equal weight remain distinct, which the sensitivity driver depends on:
//     "remove edge E" means "exclude handle E", and the duplicate survives.
//
//   - WithoutEdge builds the one-edge-reduced copy the driver feeds back
//     into the forest builder. The copy re-numbers its arena, so handles are
//     only meaningful relative to the graph that issued them.
//
// Shape
//
//	Graph    — V(), E(), AddEdge, Edge(id), Edges(), Adjacent(v), WithoutEdge(id)
//	Edge     — ID(), Either(), Other(v), Weight(), String() ("v-w %.5f")
//	Parse    — boundary reader for the "V / E / v w weight" line format
//
// Self-loops and parallel edges are both legal; a self-loop appears twice in
// its endpoint's adjacency list, mirroring the usual adjacency convention
// for undirected graphs.
//
// Error semantics
//
// Constructors and mutators return sentinel errors (ErrNegativeVertices,
// ErrVertexRange, ErrEdgeRange); Parse wraps ErrBadFormat with line context.
// Edge.Other panics with ErrForeignVertex when handed a vertex that is not
// an endpoint — a programmer error, mirroring the container packages.
package ewgraph
