package linegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildStationTriangle builds three mutually-adjacent stop nodes close
// together (a clique within dist) plus one far-away stop that is not
// adjacent to any of them.
func buildStationTriangle(t *testing.T) (*Graph, NodeID, NodeID, NodeID, NodeID) {
	t.Helper()
	g := NewGraph()
	s1 := g.AddNode(0, 0, Stop{ID: "s1", Name: "Platform 1"})
	s2 := g.AddNode(1, 0, Stop{ID: "s2", Name: "Platform 2"})
	s3 := g.AddNode(0, 1, Stop{ID: "s3", Name: "Platform 3"})
	far := g.AddNode(100, 100, Stop{ID: "far", Name: "Far Station"})

	_, err := g.AddEdge(s1, s2, straightLine(0, 0, 1, 0))
	require.NoError(t, err)
	_, err = g.AddEdge(s2, s3, straightLine(1, 0, 0, 1))
	require.NoError(t, err)
	_, err = g.AddEdge(s3, s1, straightLine(0, 1, 0, 0))
	require.NoError(t, err)

	return g, s1, s2, s3, far
}

func TestMergeMetaNodesCollapsesClique(t *testing.T) {
	g, s1, s2, s3, far := buildStationTriangle(t)

	require.NoError(t, g.MergeMetaNodes(5.0, 0.5))

	for _, id := range []NodeID{s1, s2, s3} {
		_, err := g.Node(id)
		assert.ErrorIs(t, err, ErrNodeNotFound)
	}
	_, err := g.Node(far)
	assert.NoError(t, err, "node outside the clique must survive untouched")

	var meta *Node
	for _, n := range g.Nodes() {
		if n.ID != far && len(n.Stops) == 3 {
			meta = n
		}
	}
	require.NotNil(t, meta, "expected one merged meta-node with all three stops")
	assert.NotEmpty(t, meta.MetaFootprint())
}

func TestMergeMetaNodesLeavesNonCliqueAlone(t *testing.T) {
	// A path s1-s2-s3 (not a clique: s1 and s3 are not directly
	// adjacent) within dist must not be merged.
	g := NewGraph()
	s1 := g.AddNode(0, 0, Stop{ID: "s1"})
	s2 := g.AddNode(1, 0, Stop{ID: "s2"})
	s3 := g.AddNode(2, 0, Stop{ID: "s3"})
	_, err := g.AddEdge(s1, s2, straightLine(0, 0, 1, 0))
	require.NoError(t, err)
	_, err = g.AddEdge(s2, s3, straightLine(1, 0, 2, 0))
	require.NoError(t, err)

	require.NoError(t, g.MergeMetaNodes(5.0, 0.5))

	assert.Equal(t, 3, g.NodeCount())
}
