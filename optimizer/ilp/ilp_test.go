package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/linegraph"
	"github.com/transitdraw/linemap/optgraph"
)

func line(id string) linegraph.Line { return linegraph.Line{ID: id} }

func straight(x1, y1, x2, y2 float64) geom.Polyline {
	return geom.NewSimple(geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})
}

func buildCrossedPair(t *testing.T) (*optgraph.Graph, *optgraph.Component) {
	t.Helper()
	lg := linegraph.NewGraph()
	a := lg.AddNode(0, 0, linegraph.Stop{ID: "A"})
	b := lg.AddNode(10, 0, linegraph.Stop{ID: "B"})

	e1, err := lg.AddEdge(a, b, straight(0, 0, 10, 0))
	require.NoError(t, err)
	e2, err := lg.AddEdge(a, b, straight(0, 1, 10, 1))
	require.NoError(t, err)

	require.NoError(t, lg.AddLineOnEdge(e1, line("L1"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e1, line("L2"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e2, line("L2"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e2, line("L1"), linegraph.Forward))

	og, err := optgraph.Build(lg)
	require.NoError(t, err)
	comps := og.Components()
	require.Len(t, comps, 1)
	return og, comps[0]
}

func TestBuildModelOneVariablePerLinePair(t *testing.T) {
	og, comp := buildCrossedPair(t)
	m := BuildModel(og, comp)
	// Each of the two edges carries {L1,L2}: one unordered pair per edge.
	assert.Len(t, m.Vars, 2)
}

func TestSolveFindsZeroCrossingAssignment(t *testing.T) {
	og, comp := buildCrossedPair(t)
	cfg := config.Default(config.WithCrossingPenalties(1, 1))

	ordering, err := Solve(og, comp, cfg, 5)
	require.NoError(t, err)

	scorer := optgraph.NewScorer(og, cfg)
	assert.Equal(t, 0.0, scorer.Score(ordering).Total)
}

func TestReachesDetectsCycle(t *testing.T) {
	adj := map[string]map[string]bool{
		"L1": {"L2": true},
		"L2": {"L3": true},
	}
	assert.True(t, reaches(adj, "L1", "L3"))
	assert.False(t, reaches(adj, "L3", "L1"))
}
