// Package spanforest computes minimum spanning forests of edge-weighted
// undirected graphs, verifies them against the cut-optimality conditions,
// and measures how the optimum reacts to the removal of each tree edge.
//
// 🌲 What is spanforest?
//
//	A small, focused library built from cooperating subpackages:
//		• ewgraph/   — edge-weighted undirected graph with handle-addressed edges
//		• unionfind/ — weighted quick-union with path compression by halving
//		• indexpq/   — vertex-indexed min-priority queue with decrease-key
//		• msf/       — Prim's algorithm, the optimality checker and the
//		               edge-sensitivity driver
//		• alnum/     — alphanumeric comparator used to order report lines
//
// The pipeline reads bottom-up: a Graph feeds msf.Build, which produces a
// Forest; msf.Verify cross-examines the Forest against the cut property;
// msf.Sensitivity rebuilds the forest once per tree edge with that edge
// excluded and reports the resulting weights.
//
// ✨ Design points
//
//   - Edges are addressed by stable handles, so parallel edges with equal
//     endpoints and weight remain distinguishable: removal is by identity,
//     never by (endpoints, weight) value.
//   - Every msf.Build call owns its scratch buffers; nothing is shared
//     between invocations, which lets the sensitivity driver fan out over
//     workers safely.
//   - The optimality checker is a deliberately quadratic diagnostic, kept
//     behind an option rather than wired into the hot path.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a square with four vertices and four weighted edges; its MSF drops the
//	heaviest edge of the cycle.
//
// See each subpackage's doc.go for contracts, complexity and error semantics.
//
//	go get github.com/veleth/spanforest
package spanforest
