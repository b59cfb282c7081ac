// Package indexpq implements an indexed min-priority queue over the dense
// index range [0, n) with float64 keys.
//
// What & Why
//
//   - A plain binary heap answers "what is the smallest key?"; an *indexed*
//     heap additionally answers "is index i enqueued?" and supports lowering
//     the key of an enqueued index in place (decrease-key). That is exactly
//     the frontier contract Prim's algorithm needs: one live entry per
//     not-yet-settled vertex, keyed by the best known connecting weight.
//
//   - The alternative — pushing duplicate entries and skipping stale ones on
//     extraction — trades O(V) heap size for O(E). This package keeps the
//     frontier at one entry per vertex so extraction order, and therefore
//     tie-breaking, depends only on the insertion sequence.
//
// Operations
//
//	Insert(i, key)      — enqueue index i with the given key.
//	DecreaseKey(i, key) — lower i's key; the new key must be strictly smaller.
//	DelMin()            — remove and return the index with the smallest key.
//	Contains(i)         — is i currently enqueued?
//	IsEmpty(), Len()    — size queries.
//
// All mutating operations cost O(log n); queries are O(1).
//
// Error semantics
//
// Misuse is a programmer error and panics with a sentinel:
// ErrIndexOutOfRange (index outside [0, n)), ErrDuplicateIndex (Insert of an
// enqueued index), ErrAbsentIndex (DecreaseKey of a missing index),
// ErrKeyNotSmaller (DecreaseKey that does not strictly lower the key) and
// ErrEmptyQueue (DelMin on an empty queue). New panics with
// ErrNegativeCapacity for a negative capacity.
package indexpq
