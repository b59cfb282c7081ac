// Package unionfind provides the DisjointSet structure used by the
// optimality checker and any connectivity recomputation in this module.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrNegativeCount indicates that New was asked for a negative number of sites.
var ErrNegativeCount = errors.New("unionfind: site count must be non-negative")

// ErrSiteOutOfRange indicates a site index outside [0, n). It is used as the
// panic value of Find, Union and Connected, wrapped with the offending index.
var ErrSiteOutOfRange = errors.New("unionfind: site index out of range")

// DisjointSet is a weighted quick-union structure over sites 0..n-1.
//
// parent[i] is the parent of site i (roots point to themselves);
// rank[i] approximates the height of the subtree rooted at i and is
// meaningful only while i is a root. count tracks live components.
type DisjointSet struct {
	parent []int
	rank   []byte
	count  int
}

// New creates a DisjointSet of n singleton components.
// Returns ErrNegativeCount if n < 0.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]byte, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds, nil
}

// Find returns the representative (root) of the component containing p,
// compressing the traversed path by halving: each visited site is pointed
// at its grandparent before moving on.
//
// Panics with ErrSiteOutOfRange if p is outside [0, n).
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Find(p int) int {
	ds.validate(p)
	for p != ds.parent[p] {
		ds.parent[p] = ds.parent[ds.parent[p]] // halve the path
		p = ds.parent[p]
	}

	return p
}

// Union merges the components containing p and q. A no-op when they are
// already connected; otherwise the lower-rank root is attached under the
// higher-rank root (on a tie, q's root wins and its rank grows) and the
// component count drops by one.
//
// Panics with ErrSiteOutOfRange if p or q is outside [0, n).
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Union(p, q int) {
	rootP := ds.Find(p)
	rootQ := ds.Find(q)
	if rootP == rootQ {
		return
	}

	switch {
	case ds.rank[rootP] < ds.rank[rootQ]:
		ds.parent[rootP] = rootQ
	case ds.rank[rootP] > ds.rank[rootQ]:
		ds.parent[rootQ] = rootP
	default:
		ds.parent[rootP] = rootQ
		ds.rank[rootQ]++
	}
	ds.count--
}

// Connected reports whether p and q belong to the same component.
// Panics with ErrSiteOutOfRange if p or q is outside [0, n).
func (ds *DisjointSet) Connected(p, q int) bool {
	return ds.Find(p) == ds.Find(q)
}

// Count returns the number of components remaining, between 1 and n
// (or 0 for an empty structure). Complexity: O(1).
func (ds *DisjointSet) Count() int {
	return ds.count
}

// validate panics with ErrSiteOutOfRange when p lies outside [0, n).
func (ds *DisjointSet) validate(p int) {
	if p < 0 || p >= len(ds.parent) {
		panic(fmt.Errorf("%w: %d (n=%d)", ErrSiteOutOfRange, p, len(ds.parent)))
	}
}
