package indexpq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veleth/spanforest/indexpq"
)

// TestInsertDelMin_AscendingKeys verifies that DelMin drains indices in
// ascending key order regardless of insertion order.
func TestInsertDelMin_AscendingKeys(t *testing.T) {
	pq := indexpq.New(5)
	pq.Insert(0, 3.5)
	pq.Insert(1, 0.5)
	pq.Insert(2, 2.0)
	pq.Insert(3, -1.0) // negative keys are legal
	pq.Insert(4, 2.5)

	require.Equal(t, 5, pq.Len())

	var drained []int
	for !pq.IsEmpty() {
		drained = append(drained, pq.DelMin())
	}
	assert.Equal(t, []int{3, 1, 2, 4, 0}, drained)
	assert.True(t, pq.IsEmpty())
}

// TestDecreaseKey_ReordersFrontier verifies the decrease-key contract:
// the lowered entry must surface first, and Key must reflect the update.
func TestDecreaseKey_ReordersFrontier(t *testing.T) {
	pq := indexpq.New(3)
	pq.Insert(0, 10)
	pq.Insert(1, 20)
	pq.Insert(2, 30)

	pq.DecreaseKey(2, 5)
	assert.Equal(t, 5.0, pq.Key(2))
	assert.Equal(t, 2, pq.DelMin())
	assert.Equal(t, 0, pq.DelMin())
}

// TestContains_TracksMembership verifies Contains across insert/extract.
func TestContains_TracksMembership(t *testing.T) {
	pq := indexpq.New(2)
	assert.False(t, pq.Contains(0))

	pq.Insert(0, 1)
	assert.True(t, pq.Contains(0))
	assert.False(t, pq.Contains(1))

	_ = pq.DelMin()
	assert.False(t, pq.Contains(0))
}

// TestMisuse_Panics verifies every sentinel panic of the contract.
func TestMisuse_Panics(t *testing.T) {
	assert.Panics(t, func() { indexpq.New(-1) })

	pq := indexpq.New(2)

	// Out of range, empty extraction, absent decrease.
	assert.Panics(t, func() { pq.Insert(2, 1) })
	assert.Panics(t, func() { pq.DelMin() })
	assert.Panics(t, func() { pq.DecreaseKey(0, 1) })

	pq.Insert(0, 1)

	// Duplicate insert; equal then larger key on decrease.
	assert.Panics(t, func() { pq.Insert(0, 2) })
	assert.Panics(t, func() { pq.DecreaseKey(0, 1) })
	assert.Panics(t, func() { pq.DecreaseKey(0, 1.5) })
}

// TestRandomized_MatchesSort drains a randomized queue and cross-checks the
// extraction order against an explicit sort, with interleaved decrease-keys.
func TestRandomized_MatchesSort(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(13))

	pq := indexpq.New(n)
	keys := make([]float64, n)
	for i := 0; i < n; i++ {
		keys[i] = r.Float64() * 100
		pq.Insert(i, keys[i])
	}
	// Lower a third of the keys after insertion.
	for k := 0; k < n/3; k++ {
		i := r.Intn(n)
		if lower := keys[i] - 1 - r.Float64()*10; pq.Contains(i) && lower < keys[i] {
			keys[i] = lower
			pq.DecreaseKey(i, lower)
		}
	}

	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	sort.SliceStable(want, func(a, b int) bool { return keys[want[a]] < keys[want[b]] })

	for _, expect := range want {
		got := pq.DelMin()
		require.Equal(t, keys[expect], keys[got], "keys must drain in ascending order")
	}
}
