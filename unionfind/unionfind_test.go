package unionfind_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veleth/spanforest/unionfind"
)

// TestNew_Singletons verifies that a fresh structure holds n isolated
// components, each site being its own representative.
func TestNew_Singletons(t *testing.T) {
	ds, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Count())

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i), "singleton must be its own root")
	}
}

// TestNew_NegativeCount verifies the ErrNegativeCount contract.
func TestNew_NegativeCount(t *testing.T) {
	ds, err := unionfind.New(-1)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, unionfind.ErrNegativeCount)
}

// TestNew_Empty verifies that a zero-site structure is legal and has no components.
func TestNew_Empty(t *testing.T) {
	ds, err := unionfind.New(0)
	require.NoError(t, err)
	assert.Zero(t, ds.Count())
}

// TestUnion_ConnectsAndCounts verifies the core invariants:
// after Union(p,q), Connected(p,q) holds, and Count drops by exactly one
// per non-redundant merge and never increases.
func TestUnion_ConnectsAndCounts(t *testing.T) {
	ds, err := unionfind.New(4)
	require.NoError(t, err)

	ds.Union(0, 1)
	assert.True(t, ds.Connected(0, 1))
	assert.Equal(t, 3, ds.Count())

	// Redundant union must not change the count.
	ds.Union(1, 0)
	assert.Equal(t, 3, ds.Count())

	ds.Union(2, 3)
	assert.Equal(t, 2, ds.Count())

	// Transitivity through the merged components.
	ds.Union(1, 2)
	assert.Equal(t, 1, ds.Count())
	assert.True(t, ds.Connected(0, 3))
}

// TestFind_OutOfRange verifies that out-of-range sites panic with
// ErrSiteOutOfRange rather than being silently accepted.
func TestFind_OutOfRange(t *testing.T) {
	ds, err := unionfind.New(3)
	require.NoError(t, err)

	for _, p := range []int{-1, 3, 42} {
		assert.PanicsWithError(t,
			"unionfind: site index out of range: "+strconv.Itoa(p)+" (n=3)",
			func() { ds.Find(p) })
	}
}

// TestUnion_OutOfRange verifies that Union validates both arguments.
func TestUnion_OutOfRange(t *testing.T) {
	ds, err := unionfind.New(2)
	require.NoError(t, err)

	assert.Panics(t, func() { ds.Union(0, 2) })
	assert.Panics(t, func() { ds.Union(-1, 1) })
	// State must be untouched after the failed calls.
	assert.Equal(t, 2, ds.Count())
}

// TestRandomUnions_CountMatchesNaive cross-checks Count against a naive
// component count over a randomized union sequence with a fixed seed.
func TestRandomUnions_CountMatchesNaive(t *testing.T) {
	const n = 64
	ds, err := unionfind.New(n)
	require.NoError(t, err)

	// Naive labelling: relabel the whole array on each merge.
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	r := rand.New(rand.NewSource(7))
	for k := 0; k < 200; k++ {
		p, q := r.Intn(n), r.Intn(n)
		ds.Union(p, q)
		lp, lq := label[p], label[q]
		if lp != lq {
			for i := range label {
				if label[i] == lq {
					label[i] = lp
				}
			}
		}

		distinct := make(map[int]struct{}, n)
		for _, l := range label {
			distinct[l] = struct{}{}
		}
		require.Equal(t, len(distinct), ds.Count(), "after %d unions", k+1)
		require.True(t, ds.Connected(p, q))
	}
}
