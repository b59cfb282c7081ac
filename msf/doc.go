// Package msf computes minimum spanning forests with Prim's algorithm,
// verifies them against the cut-optimality conditions, and drives the
// per-edge removal sensitivity analysis.
//
// What & Why
//
//   - Given an edge-weighted undirected *ewgraph.Graph, Build grows one
//     minimum spanning tree per connected component; their union is the
//     minimum spanning forest (MSF). Weights may be negative, zero, or
//     repeated — Prim's cut-based greedy choice needs no sign assumptions.
//
//   - Verify is a self-check, not an input validator: a failure means the
//     builder (or a caller mutating shared state) is buggy. It recomputes
//     the total weight, proves acyclicity and spanning coverage with a
//     fresh unionfind.DisjointSet, and probes the cut property edge by edge.
//
//   - Sensitivity answers "what does the optimum cost without this tree
//     edge?" by rebuilding the forest once per forest edge on a copy of
//     the graph that excludes exactly that edge handle. A bridge removal
//     shows up as a higher component count on the record, never an error.
//
// Algorithm (Build)
//
//   - Per-call owned buffers distTo (+Inf), edgeTo (NoEdge), marked, plus
//     one indexpq.IndexMinPQ frontier keyed by best known connecting weight.
//   - For every still-unmarked vertex s: seed distTo[s]=0, then repeatedly
//     extract the minimum-key vertex, mark it, and relax its incident edges
//     into the frontier (decrease-key when already enqueued). Self-loops
//     drop out implicitly — the opposite endpoint is already marked.
//   - Equal keys resolve by binary-heap extraction order, which is fixed
//     for a given insertion sequence; a fixed graph therefore always yields
//     the same forest, though it may be any one of the equal-weight optima.
//
// Complexity
//
//	– Build:       O(E log V) time, O(V) extra space.
//	– Verify:      O(E·V·α(V)) — deliberately quadratic diagnostics; keep it
//	  behind WithVerify, off production hot paths.
//	– Sensitivity: one Build per forest edge, ≈ O(V·E log V) serial; the
//	  iterations share nothing and fan out over WithWorkers goroutines.
//
// Error Conditions
//
//   - ErrNilGraph / ErrNilForest     : nil inputs.
//   - ErrForestMismatch              : forest built from a different-sized graph.
//   - ErrWeightMismatch, ErrCycle, ErrNotSpanning, ErrCutViolation :
//     the four independently falsifiable verification failures, each wrapped
//     with the offending edge.
//   - context errors                 : Sensitivity stops between per-edge
//     recomputations when ctx is cancelled and propagates ctx.Err().
//
// For usage, see example_test.go in this package.
package msf
