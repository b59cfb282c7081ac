package ewgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veleth/spanforest/ewgraph"
)

// TestParse_RoundTrip verifies the boundary format end to end.
func TestParse_RoundTrip(t *testing.T) {
	const input = `4
4
0 1 1
1 2 2
2 3 1
0 3 3
`
	g, err := ewgraph.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, g.V())
	assert.Equal(t, 4, g.E())

	edges := g.Edges()
	assert.Equal(t, "0-1 1.00000", edges[0].String())
	assert.Equal(t, "0-3 3.00000", edges[3].String())
}

// TestParse_SkipsBlankLines verifies tolerance for blank separator lines.
func TestParse_SkipsBlankLines(t *testing.T) {
	const input = "2\n\n1\n\n0 1 -2.5\n"
	g, err := ewgraph.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, g.E())
	assert.Equal(t, -2.5, g.Edges()[0].Weight())
}

// TestParse_Malformed verifies that every malformed shape propagates
// ErrBadFormat (no recovery path, per the boundary contract).
func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty input":        "",
		"missing edge count": "3\n",
		"non-numeric vertex": "2\n1\nx 1 2\n",
		"non-numeric weight": "2\n1\n0 1 abc\n",
		"short edge line":    "2\n1\n0 1\n",
		"truncated edges":    "3\n2\n0 1 1\n",
		"negative count":     "-2\n0\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ewgraph.Parse(strings.NewReader(input))
			assert.ErrorIs(t, err, ewgraph.ErrBadFormat)
		})
	}
}

// TestParse_VertexOutOfRange verifies that edge endpoints are validated
// against the declared vertex count.
func TestParse_VertexOutOfRange(t *testing.T) {
	_, err := ewgraph.Parse(strings.NewReader("2\n1\n0 5 1\n"))
	assert.ErrorIs(t, err, ewgraph.ErrVertexRange)
}
