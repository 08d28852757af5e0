package linegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildChain builds a path a -(ab)- mid -(mc)- c where mid is a
// non-stop degree-2 node carrying the same line both ways, the
// canonical contractible chain shape.
func buildChain(t *testing.T) (*Graph, NodeID, NodeID, NodeID) {
	t.Helper()
	g := NewGraph()
	a := g.AddNode(0, 0, Stop{ID: "a", Name: "A"})
	mid := g.AddNode(5, 0)
	c := g.AddNode(10, 0, Stop{ID: "c", Name: "C"})

	e1, err := g.AddEdge(a, mid, straightLine(0, 0, 5, 0))
	require.NoError(t, err)
	e2, err := g.AddEdge(mid, c, straightLine(5, 0, 10, 0))
	require.NoError(t, err)

	red := Line{ID: "red"}
	require.NoError(t, g.AddLineOnEdge(e1, red, Forward))
	require.NoError(t, g.AddLineOnEdge(e2, red, Forward))

	return g, a, mid, c
}

func TestContractDegree2NodesMergesChain(t *testing.T) {
	g, a, mid, c := buildChain(t)

	require.NoError(t, g.ContractDegree2Nodes())

	_, err := g.Node(mid)
	assert.ErrorIs(t, err, ErrNodeNotFound, "pivot node should be retired")

	edges := g.Edges()
	require.Len(t, edges, 1)
	merged := edges[0]
	assert.Equal(t, a, merged.From)
	assert.Equal(t, c, merged.To)
	assert.Equal(t, 1, merged.LineCount())
}

func TestContractDegree2NodesSkipsStopNodes(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, 0)
	mid := g.AddNode(5, 0, Stop{ID: "mid", Name: "Mid"}) // mid is itself a stop
	c := g.AddNode(10, 0)

	e1, err := g.AddEdge(a, mid, straightLine(0, 0, 5, 0))
	require.NoError(t, err)
	e2, err := g.AddEdge(mid, c, straightLine(5, 0, 10, 0))
	require.NoError(t, err)
	red := Line{ID: "red"}
	require.NoError(t, g.AddLineOnEdge(e1, red, Forward))
	require.NoError(t, g.AddLineOnEdge(e2, red, Forward))

	require.NoError(t, g.ContractDegree2Nodes())

	_, err = g.Node(mid)
	assert.NoError(t, err, "stop nodes must never be contracted away")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestContractDegree2NodesSkipsDivergingLines(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, 0)
	mid := g.AddNode(5, 0)
	c := g.AddNode(10, 0)

	e1, err := g.AddEdge(a, mid, straightLine(0, 0, 5, 0))
	require.NoError(t, err)
	e2, err := g.AddEdge(mid, c, straightLine(5, 0, 10, 0))
	require.NoError(t, err)
	require.NoError(t, g.AddLineOnEdge(e1, Line{ID: "red"}, Forward))
	require.NoError(t, g.AddLineOnEdge(e2, Line{ID: "blue"}, Forward))

	require.NoError(t, g.ContractDegree2Nodes())

	assert.Equal(t, 2, g.EdgeCount(), "edges with differing line sets must not merge")
}
