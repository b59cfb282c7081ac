// Package indexpq provides the vertex-indexed min-heap backing the Prim
// frontier in package msf.
package indexpq

import (
	"errors"
	"fmt"
)

// Sentinel panic values for container misuse. See doc.go for the contract.
var (
	// ErrNegativeCapacity indicates New was called with a negative capacity.
	ErrNegativeCapacity = errors.New("indexpq: capacity must be non-negative")

	// ErrIndexOutOfRange indicates an index outside [0, n).
	ErrIndexOutOfRange = errors.New("indexpq: index out of range")

	// ErrDuplicateIndex indicates Insert of an already-enqueued index.
	ErrDuplicateIndex = errors.New("indexpq: index already enqueued")

	// ErrAbsentIndex indicates DecreaseKey of an index not in the queue.
	ErrAbsentIndex = errors.New("indexpq: index not enqueued")

	// ErrKeyNotSmaller indicates DecreaseKey with a key that is not strictly
	// smaller than the current one.
	ErrKeyNotSmaller = errors.New("indexpq: new key is not strictly smaller")

	// ErrEmptyQueue indicates DelMin on an empty queue.
	ErrEmptyQueue = errors.New("indexpq: queue is empty")
)

// IndexMinPQ is a binary min-heap over indices 0..n-1 with float64 keys.
//
// heap holds enqueued indices in heap order starting at position 1 (the
// classic 1-based layout keeps parent/child arithmetic branch-free);
// pos[i] is i's position in heap, or 0 when i is absent; keys[i] is i's
// current key, meaningful only while pos[i] != 0.
type IndexMinPQ struct {
	heap []int
	pos  []int
	keys []float64
}

// New creates an empty queue able to hold indices in [0, n).
// Panics with ErrNegativeCapacity if n < 0.
// Complexity: O(n).
func New(n int) *IndexMinPQ {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCapacity, n))
	}

	return &IndexMinPQ{
		heap: make([]int, 1, n+1), // slot 0 unused
		pos:  make([]int, n),
		keys: make([]float64, n),
	}
}

// Len returns the number of enqueued indices. Complexity: O(1).
func (pq *IndexMinPQ) Len() int { return len(pq.heap) - 1 }

// IsEmpty reports whether the queue holds no indices. Complexity: O(1).
func (pq *IndexMinPQ) IsEmpty() bool { return pq.Len() == 0 }

// Contains reports whether index i is enqueued.
// Panics with ErrIndexOutOfRange if i is outside [0, n).
func (pq *IndexMinPQ) Contains(i int) bool {
	pq.validate(i)

	return pq.pos[i] != 0
}

// Insert enqueues index i with the given key.
// Panics with ErrIndexOutOfRange or ErrDuplicateIndex on misuse.
// Complexity: O(log n).
func (pq *IndexMinPQ) Insert(i int, key float64) {
	if pq.Contains(i) {
		panic(fmt.Errorf("%w: %d", ErrDuplicateIndex, i))
	}
	pq.heap = append(pq.heap, i)
	pq.pos[i] = pq.Len()
	pq.keys[i] = key
	pq.swim(pq.Len())
}

// DecreaseKey lowers the key of the enqueued index i to key, restoring heap
// order by sifting the entry towards the root.
// Panics with ErrIndexOutOfRange, ErrAbsentIndex or ErrKeyNotSmaller.
// Complexity: O(log n).
func (pq *IndexMinPQ) DecreaseKey(i int, key float64) {
	if !pq.Contains(i) {
		panic(fmt.Errorf("%w: %d", ErrAbsentIndex, i))
	}
	if key >= pq.keys[i] {
		panic(fmt.Errorf("%w: index %d, key %v -> %v", ErrKeyNotSmaller, i, pq.keys[i], key))
	}
	pq.keys[i] = key
	pq.swim(pq.pos[i])
}

// DelMin removes and returns the index with the smallest key. Ties resolve
// by heap order, which is deterministic for a fixed operation sequence.
// Panics with ErrEmptyQueue when the queue is empty.
// Complexity: O(log n).
func (pq *IndexMinPQ) DelMin() int {
	if pq.IsEmpty() {
		panic(ErrEmptyQueue)
	}
	min := pq.heap[1]
	pq.swap(1, pq.Len())
	pq.heap = pq.heap[:len(pq.heap)-1]
	pq.pos[min] = 0
	if pq.Len() > 0 {
		pq.sink(1)
	}

	return min
}

// Key returns the current key of the enqueued index i.
// Panics with ErrIndexOutOfRange or ErrAbsentIndex.
func (pq *IndexMinPQ) Key(i int) float64 {
	if !pq.Contains(i) {
		panic(fmt.Errorf("%w: %d", ErrAbsentIndex, i))
	}

	return pq.keys[i]
}

// swim restores heap order upwards from position k.
func (pq *IndexMinPQ) swim(k int) {
	for k > 1 && pq.less(k, k/2) {
		pq.swap(k, k/2)
		k /= 2
	}
}

// sink restores heap order downwards from position k.
func (pq *IndexMinPQ) sink(k int) {
	n := pq.Len()
	for 2*k <= n {
		j := 2 * k
		if j < n && pq.less(j+1, j) {
			j++
		}
		if !pq.less(j, k) {
			break
		}
		pq.swap(k, j)
		k = j
	}
}

// less compares the keys of the entries at heap positions a and b.
func (pq *IndexMinPQ) less(a, b int) bool {
	return pq.keys[pq.heap[a]] < pq.keys[pq.heap[b]]
}

// swap exchanges the entries at heap positions a and b, keeping pos in sync.
func (pq *IndexMinPQ) swap(a, b int) {
	pq.heap[a], pq.heap[b] = pq.heap[b], pq.heap[a]
	pq.pos[pq.heap[a]] = a
	pq.pos[pq.heap[b]] = b
}

// validate panics with ErrIndexOutOfRange when i lies outside [0, n).
func (pq *IndexMinPQ) validate(i int) {
	if i < 0 || i >= len(pq.pos) {
		panic(fmt.Errorf("%w: %d (n=%d)", ErrIndexOutOfRange, i, len(pq.pos)))
	}
}
