package msf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veleth/spanforest/ewgraph"
	"github.com/veleth/spanforest/msf"
)

// TestVerify_PassesOnBuiltForests is the golden path: every forest the
// builder produces must satisfy all four conditions.
func TestVerify_PassesOnBuiltForests(t *testing.T) {
	for name, g := range map[string]*ewgraph.Graph{
		"square":  buildSquare(t),
		"barbell": buildBarbell(t),
		"random":  buildConnectedRandom(t, 25, 50, 3),
	} {
		t.Run(name, func(t *testing.T) {
			f, err := msf.Build(g)
			require.NoError(t, err)
			assert.NoError(t, msf.Verify(g, f))
		})
	}
}

// TestVerify_NilInputs covers the trivial argument errors.
func TestVerify_NilInputs(t *testing.T) {
	g := buildSquare(t)
	f, err := msf.Build(g)
	require.NoError(t, err)

	assert.ErrorIs(t, msf.Verify(nil, f), msf.ErrNilGraph)
	assert.ErrorIs(t, msf.Verify(g, nil), msf.ErrNilForest)
}

// TestVerify_ForestMismatch rejects a forest built from a graph of a
// different size.
func TestVerify_ForestMismatch(t *testing.T) {
	f, err := msf.Build(buildSquare(t))
	require.NoError(t, err)

	other, err := ewgraph.New(7)
	require.NoError(t, err)
	assert.ErrorIs(t, msf.Verify(other, f), msf.ErrForestMismatch)
}

// TestVerify_NotSpanning cross-checks a valid forest against a graph with
// an extra edge bridging two of the forest's components.
func TestVerify_NotSpanning(t *testing.T) {
	// Forest of the two-component graph {0-1}, {2-3}.
	split := buildGraph(t, 4, [][3]float64{{0, 1, 5}, {2, 3, 5}})
	f, err := msf.Build(split)
	require.NoError(t, err)

	// Same vertices, but 1-2 now joins the components; the old forest no
	// longer spans.
	joined := buildGraph(t, 4, [][3]float64{{0, 1, 5}, {2, 3, 5}, {1, 2, 1}})
	assert.ErrorIs(t, msf.Verify(joined, f), msf.ErrNotSpanning)
}

// TestVerify_CutViolation cross-checks a path forest against a graph that
// offers a cheaper edge across one of its cuts.
func TestVerify_CutViolation(t *testing.T) {
	// Forest of the path 0-1(5), 1-2(6).
	path := buildGraph(t, 3, [][3]float64{{0, 1, 5}, {1, 2, 6}})
	f, err := msf.Build(path)
	require.NoError(t, err)

	// The richer graph offers 0-2(1), which beats forest edge 1-2(6)
	// across the cut {0,1} | {2}.
	richer := buildGraph(t, 3, [][3]float64{{0, 1, 5}, {1, 2, 6}, {0, 2, 1}})
	assert.ErrorIs(t, msf.Verify(richer, f), msf.ErrCutViolation)
}

// TestVerify_ToleranceOption verifies WithTolerance validation.
func TestVerify_ToleranceOption(t *testing.T) {
	assert.Panics(t, func() { msf.WithTolerance(-1)(nil) })

	g := buildSquare(t)
	f, err := msf.Build(g)
	require.NoError(t, err)
	// An absurdly loose tolerance must still pass a correct forest.
	assert.NoError(t, msf.Verify(g, f, msf.WithTolerance(10)))
}
