package optgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/linegraph"
)

func line(id string) linegraph.Line { return linegraph.Line{ID: id} }

func straight(x1, y1, x2, y2 float64) geom.Polyline {
	return geom.NewSimple(geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})
}

// buildParallelEdges builds two parallel edges A<->B, each carrying
// {L1,L2}, the canonical shape for exercising crossing detection.
func buildParallelEdges(t *testing.T) (*linegraph.Graph, linegraph.EdgeID, linegraph.EdgeID) {
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
	require.NoError(t, lg.AddLineOnEdge(e2, line("L1"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e2, line("L2"), linegraph.Forward))

	return lg, e1, e2
}

// TestScorerSingleCrossing: e1=[L1,L2], e2=[L2,L1] must score exactly
// one crossing under equal weights.
func TestScorerSingleCrossing(t *testing.T) {
	lg, e1, e2 := buildParallelEdges(t)
	og, err := Build(lg)
	require.NoError(t, err)

	cfg := config.Default(config.WithCrossingPenalties(1, 1))
	scorer := NewScorer(og, cfg)

	ordering := OrderCfg{
		e1: {"L1", "L2"},
		e2: {"L2", "L1"},
	}
	score := scorer.Score(ordering)
	assert.Equal(t, 1.0, score.Crossing)
	assert.Equal(t, 1.0, score.Total)
}

// TestScorerAlignedOrderingsNoCrossing checks identical orderings on
// both edges score zero crossings.
func TestScorerAlignedOrderingsNoCrossing(t *testing.T) {
	lg, e1, e2 := buildParallelEdges(t)
	og, err := Build(lg)
	require.NoError(t, err)

	cfg := config.Default(config.WithCrossingPenalties(1, 1))
	scorer := NewScorer(og, cfg)

	ordering := OrderCfg{
		e1: {"L1", "L2"},
		e2: {"L1", "L2"},
	}
	score := scorer.Score(ordering)
	assert.Equal(t, 0.0, score.Crossing)
}

// TestContractionCollapsesChain: path A-e1-M-e2-B, both edges carrying
// {L1,L2} and M degree-2, must collapse to a single OptEdge A<->B.
func TestContractionCollapsesChain(t *testing.T) {
	lg := linegraph.NewGraph()
	a := lg.AddNode(0, 0, linegraph.Stop{ID: "A"})
	m := lg.AddNode(5, 0)
	b := lg.AddNode(10, 0, linegraph.Stop{ID: "B"})

	e1, err := lg.AddEdge(a, m, straight(0, 0, 5, 0))
	require.NoError(t, err)
	e2, err := lg.AddEdge(m, b, straight(5, 0, 10, 0))
	require.NoError(t, err)
	require.NoError(t, lg.AddLineOnEdge(e1, line("L1"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e1, line("L2"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e2, line("L1"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e2, line("L2"), linegraph.Forward))

	og, err := Build(lg)
	require.NoError(t, err)

	edges := og.Edges()
	require.Len(t, edges, 1)
	merged := edges[0]
	assert.ElementsMatch(t, []string{"L1", "L2"}, lineIDs(merged.Lines))

	_, err = lg.Node(m)
	assert.ErrorIs(t, err, linegraph.ErrNodeNotFound)
}

func lineIDs(lines []linegraph.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.ID
	}
	return out
}

func TestComponentsPartitionsDisjointSubgraphs(t *testing.T) {
	lg := linegraph.NewGraph()
	a := lg.AddNode(0, 0, linegraph.Stop{ID: "A"})
	b := lg.AddNode(1, 0, linegraph.Stop{ID: "B"})
	c := lg.AddNode(100, 100, linegraph.Stop{ID: "C"})
	d := lg.AddNode(101, 100, linegraph.Stop{ID: "D"})

	e1, err := lg.AddEdge(a, b, straight(0, 0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, lg.AddLineOnEdge(e1, line("L1"), linegraph.Forward))
	e2, err := lg.AddEdge(c, d, straight(100, 100, 101, 100))
	require.NoError(t, err)
	require.NoError(t, lg.AddLineOnEdge(e2, line("L2"), linegraph.Forward))

	og, err := Build(lg)
	require.NoError(t, err)

	comps := og.Components()
	assert.Len(t, comps, 2)
}

// buildThroughStation builds a path A-e1-N-e2-B where N is itself a
// stop (so ContractDegree2Nodes leaves it alone), both edges carrying
// {L1,L2}. When witnessContinuation is set, N witnesses both lines
// legally continuing from e1 to e2 via RecordContinuation.
func buildThroughStation(t *testing.T, witnessContinuation bool) (*Graph, linegraph.EdgeID, linegraph.EdgeID) {
	t.Helper()
	lg := linegraph.NewGraph()
	a := lg.AddNode(0, 0, linegraph.Stop{ID: "A"})
	n := lg.AddNode(5, 0, linegraph.Stop{ID: "N"})
	b := lg.AddNode(10, 0, linegraph.Stop{ID: "B"})

	e1, err := lg.AddEdge(a, n, straight(0, 0, 5, 0))
	require.NoError(t, err)
	e2, err := lg.AddEdge(n, b, straight(5, 0, 10, 0))
	require.NoError(t, err)

	require.NoError(t, lg.AddLineOnEdge(e1, line("L1"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e1, line("L2"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e2, line("L1"), linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e2, line("L2"), linegraph.Forward))

	if witnessContinuation {
		require.NoError(t, lg.RecordContinuation(n, "L1", e1, e2))
		require.NoError(t, lg.RecordContinuation(n, "L2", e1, e2))
	}

	og, err := Build(lg)
	require.NoError(t, err)
	return og, e1, e2
}

// TestScorerCrossingPenaltyDistinguishesLegalContinuation uses
// asymmetric same/diff weights (so TestScorerSingleCrossing's 1/1
// weights can't mask the distinction) and checks that a crossing
// witnessed as a legal continuation through the shared node scores at
// CrossingPenaltySameSeg, while the identical crossing without a
// witnessed continuation scores at CrossingPenaltyDiffSeg.
func TestScorerCrossingPenaltyDistinguishesLegalContinuation(t *testing.T) {
	cfg := config.Default(config.WithCrossingPenalties(1, 5))

	legalOg, le1, le2 := buildThroughStation(t, true)
	legalScore := NewScorer(legalOg, cfg).Score(OrderCfg{
		le1: {"L1", "L2"},
		le2: {"L1", "L2"},
	})
	assert.Equal(t, 1.0, legalScore.Crossing, "a witnessed continuation must score at the same-segment weight")

	incidentalOg, ie1, ie2 := buildThroughStation(t, false)
	incidentalScore := NewScorer(incidentalOg, cfg).Score(OrderCfg{
		ie1: {"L1", "L2"},
		ie2: {"L1", "L2"},
	})
	assert.Equal(t, 5.0, incidentalScore.Crossing, "an un-witnessed crossing must score at the different-segment weight")
}

func TestOrderCfgCloneIsIndependent(t *testing.T) {
	cfg := OrderCfg{1: {"L1", "L2"}}
	clone := cfg.Clone()
	clone[1][0] = "L2"
	assert.Equal(t, "L1", cfg[1][0])
	assert.False(t, cfg.Equal(clone))
}
