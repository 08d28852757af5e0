package optgraph

import (
	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/linegraph"
	"github.com/transitdraw/linemap/telemetry"
)

// ScoreBreakdown reports the crossing and splitting components of a
// total score separately, so tests can assert on each term directly
// rather than only on the combined scalar.
type ScoreBreakdown struct {
	Crossing  float64
	Splitting float64
	Total     float64
}

// Scorer evaluates an OrderCfg against an OptGraph under a fixed
// configuration of crossing/splitting penalties.
type Scorer struct {
	og  *Graph
	cfg config.Config

	// ComponentID tags EmitScore calls when a caller is evaluating one
	// OptGraph component among several; left at its zero value, a
	// single-component caller doesn't need to set it.
	ComponentID int
	// Hooks, if non-nil, receives one EmitScore call per Score
	// invocation (the pipeline progress observation seam).
	Hooks *telemetry.Hooks
}

// NewScorer returns a Scorer bound to og and cfg. hooks is optional and
// variadic so existing call sites that don't care about progress
// observation don't need to change.
func NewScorer(og *Graph, cfg config.Config, hooks ...*telemetry.Hooks) *Scorer {
	s := &Scorer{og: og, cfg: cfg}
	if len(hooks) > 0 {
		s.Hooks = hooks[0]
	}
	return s
}

// Score computes the crossing score (and, if enabled, the splitting
// score) of ordering over the whole OptGraph.
func (s *Scorer) Score(ordering OrderCfg) ScoreBreakdown {
	var b ScoreBreakdown
	b.Crossing = s.crossingScore(ordering)
	if s.cfg.SplittingOpt {
		b.Splitting = s.splittingScore(ordering) * s.cfg.SplittingPenalty
	}
	b.Total = b.Crossing + b.Splitting
	s.Hooks.EmitScore(s.ComponentID, b.Crossing, b.Splitting, b.Total)
	return b
}

// crossingScore implements the crossing rule: for every node and every
// pair of incident edges, for every pair of lines shared by both edges,
// a crossing is counted if the lines' relative order (as seen from the
// node) disagrees between the two edges. Crossings witnessed as legal
// continuations in the LineGraph's occConns table are weighted
// CrossingPenaltySameSeg; all others, CrossingPenaltyDiffSeg.
func (s *Scorer) crossingScore(ordering OrderCfg) float64 {
	lg := s.og.lg
	var total float64

	for _, n := range s.og.Nodes() {
		edges := n.Edges
		for i := 0; i < len(edges); i++ {
			for j := i + 1; j < len(edges); j++ {
				a := s.og.edges[edges[i]]
				b := s.og.edges[edges[j]]
				if a == nil || b == nil {
					continue
				}
				total += s.crossingBetween(lg, n.ID, a, b, ordering)
			}
		}
	}
	return total
}

func (s *Scorer) crossingBetween(lg *linegraph.Graph, n linegraph.NodeID, a, b *OptEdge, ordering OrderCfg) float64 {
	shared := sharedLines(a, b)
	if len(shared) < 2 {
		return 0
	}

	permA := viewedFrom(n, a, ordering[a.ID])
	permB := viewedFrom(n, b, ordering[b.ID])

	var sum float64
	for i := 0; i < len(shared); i++ {
		for j := i + 1; j < len(shared); j++ {
			l1, l2 := shared[i], shared[j]
			if relativeOrder(permA, l1, l2) == relativeOrder(permB, l1, l2) {
				continue
			}
			legal := lg.IsLegalContinuation(n, l1, a.ID, b.ID) || lg.IsLegalContinuation(n, l2, a.ID, b.ID)
			if legal {
				sum += s.cfg.CrossingPenaltySameSeg
			} else {
				sum += s.cfg.CrossingPenaltyDiffSeg
			}
		}
	}
	return sum
}

// splittingScore implements an edge-pair specialization of the
// splitting rule: for every node and every pair of incident edges
// sharing at least three lines, for every pair of lines adjacent on
// one edge (as seen from the node) but not adjacent on the other,
// count one split. The >=3 shared-line precondition (L1,L2,L3) gates
// when an adjacency break is counted as a meaningful split rather than
// noise from a thin two-line overlap.
func (s *Scorer) splittingScore(ordering OrderCfg) float64 {
	var total float64
	for _, n := range s.og.Nodes() {
		edges := n.Edges
		for i := 0; i < len(edges); i++ {
			for j := 0; j < len(edges); j++ {
				if i == j {
					continue
				}
				a := s.og.edges[edges[i]]
				b := s.og.edges[edges[j]]
				if a == nil || b == nil {
					continue
				}
				shared := sharedLines(a, b)
				if len(shared) < 3 {
					continue
				}
				permA := viewedFrom(n.ID, a, ordering[a.ID])
				permB := viewedFrom(n.ID, b, ordering[b.ID])
				total += countBrokenAdjacencies(permA, permB, shared)
			}
		}
	}
	return total
}

func countBrokenAdjacencies(permA, permB []string, shared []string) float64 {
	sharedSet := make(map[string]bool, len(shared))
	for _, l := range shared {
		sharedSet[l] = true
	}
	var n float64
	filteredA := filter(permA, sharedSet)
	for i := 0; i+1 < len(filteredA); i++ {
		if !adjacentIn(permB, filteredA[i], filteredA[i+1]) {
			n++
		}
	}
	return n
}

func filter(perm []string, keep map[string]bool) []string {
	out := make([]string, 0, len(perm))
	for _, l := range perm {
		if keep[l] {
			out = append(out, l)
		}
	}
	return out
}

func adjacentIn(perm []string, l1, l2 string) bool {
	for i := 0; i+1 < len(perm); i++ {
		if (perm[i] == l1 && perm[i+1] == l2) || (perm[i] == l2 && perm[i+1] == l1) {
			return true
		}
	}
	return false
}

func sharedLines(a, b *OptEdge) []string {
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
	return out
}

// viewedFrom returns perm oriented as seen from node n: unchanged if n
// is e's From endpoint, reversed if n is e's To endpoint.
func viewedFrom(n linegraph.NodeID, e *OptEdge, perm []string) []string {
	if e.From == n {
		return perm
	}
	out := make([]string, len(perm))
	for i, l := range perm {
		out[len(perm)-1-i] = l
	}
	return out
}

func relativeOrder(perm []string, l1, l2 string) bool {
	var p1, p2 int = -1, -1
	for i, l := range perm {
		if l == l1 {
			p1 = i
		}
		if l == l2 {
			p2 = i
		}
	}
	return p1 < p2
}
