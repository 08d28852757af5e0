package ilp

import (
	"sort"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/linegraph"
	"github.com/transitdraw/linemap/optgraph"
)

// crossingTerm ties two precedence variables decided for the same
// unordered line pair observed at a shared node on two different
// edges: a crossing is counted whenever the two variables' "as seen
// from this node" orientations disagree. flipA/flipB record whether
// each variable's (L1 precedes L2) meaning must be negated to read as
// seen from the node, mirroring optgraph.Scorer's viewedFrom logic
// applied at the variable level instead of the permutation level.
type crossingTerm struct {
	varA, varB   int
	flipA, flipB bool
	weight       float64
}

// problem bundles a Model with the precomputed crossing terms and
// per-edge line orderings the branch-and-bound search and recovery
// step need.
type problem struct {
	model     Model
	varIndex  map[Var]int
	edgeLines map[linegraph.EdgeID][]string
	terms     []crossingTerm
}

// buildProblem flattens component into variables (BuildModel) and
// precomputes crossing terms by replaying optgraph.Scorer's own
// node/edge-pair/shared-line iteration ( rule 1), so the
// objective the branch-and-bound search minimizes is exactly the one
// optgraph.Scorer.Score would report for the recovered ordering.
func buildProblem(og *optgraph.Graph, component *optgraph.Component, cfg config.Config) problem {
	model := BuildModel(og, component)
	p := problem{
		model:     model,
		varIndex:  make(map[Var]int, len(model.Vars)),
		edgeLines: make(map[linegraph.EdgeID][]string),
	}
	for i, v := range model.Vars {
		p.varIndex[v] = i
	}
	for _, eid := range component.Edges {
		e := og.Edge(eid)
		if e == nil {
			continue
		}
		p.edgeLines[eid] = sortedLineIDs(e.Lines)
	}

	lg := og.LineGraph()
	for _, n := range component.Nodes {
		node := og.Node(n)
		if node == nil {
			continue
		}
		edges := node.Edges
		for i := 0; i < len(edges); i++ {
			for j := i + 1; j < len(edges); j++ {
				a := og.Edge(edges[i])
				b := og.Edge(edges[j])
				if a == nil || b == nil {
					continue
				}
				shared := sharedLineIDs(a, b)
				for x := 0; x < len(shared); x++ {
					for y := x + 1; y < len(shared); y++ {
						l1, l2 := shared[x], shared[y]
						va, flipA, okA := p.varFor(a, l1, l2, n)
						vb, flipB, okB := p.varFor(b, l1, l2, n)
						if !okA || !okB {
							continue
						}
						legal := lg.IsLegalContinuation(n, l1, a.ID, b.ID) || lg.IsLegalContinuation(n, l2, a.ID, b.ID)
						weight := cfg.CrossingPenaltyDiffSeg
						if legal {
							weight = cfg.CrossingPenaltySameSeg
						}
						p.terms = append(p.terms, crossingTerm{varA: va, varB: vb, flipA: flipA, flipB: flipB, weight: weight})
					}
				}
			}
		}
	}

	return p
}

// varFor returns the variable index encoding the precedence of
// (l1,l2) on e, plus whether that variable's truth value must be
// flipped to read "as seen from node n" rather than from e's
// canonical From endpoint.
func (p *problem) varFor(e *optgraph.OptEdge, l1, l2 string, n linegraph.NodeID) (idx int, flip bool, ok bool) {
	lo, hi := l1, l2
	if lo > hi {
		lo, hi = hi, lo
	}
	v := Var{Edge: e.ID, L1: lo, L2: hi}
	i, found := p.varIndex[v]
	if !found {
		return 0, false, false
	}
	// varIndex stores (lo precedes hi) from e's From endpoint; viewed
	// from n == e.To, the direction reverses.
	return i, e.To == n, true
}

func sortedLineIDs(lines []linegraph.Line) []string {
	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.ID
	}
	sort.Strings(ids)
	return ids
}

func sharedLineIDs(a, b *optgraph.OptEdge) []string {
	bset := make(map[string]bool, len(b.Lines))
	for _, l := range b.Lines {
		bset[l.ID] = true
	}
	var out []string
	for _, l := range a.Lines {
		if bset[l.ID] {
			out = append(out, l.ID)
		}
	}
	sort.Strings(out)
	return out
}

// BuildModel flattens component's unordered line pairs per edge into a
// Model, the variable set the Solve entrypoint consumes.
func BuildModel(og *optgraph.Graph, component *optgraph.Component) Model {
	var m Model
	for _, eid := range component.Edges {
		e := og.Edge(eid)
		if e == nil {
			continue
		}
		ids := sortedLineIDs(e.Lines)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				m.Vars = append(m.Vars, Var{Edge: eid, L1: ids[i], L2: ids[j]})
			}
		}
	}
	return m
}
