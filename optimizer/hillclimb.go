package optimizer

import (
	"math/rand"

	"github.com/transitdraw/linemap/optgraph"
)

// runHillClimb starts from a random initialConfig and repeatedly
// proposes single-edge local moves — here, replacing one edge's
// permutation with a random transposition of two of its lines —
// accepting only strictly improving moves. It terminates when a full
// sweep over every edge yields no improvement.
func runHillClimb(og *optgraph.Graph, component *optgraph.Component, scorer *optgraph.Scorer, opts Options) (optgraph.OrderCfg, Stats) {
	rng := rand.New(rand.NewSource(int64(opts.Seed)))
	cur := initialConfig(og, component, false, rng)
	curScore := scorer.Score(cur).Total

	iterations := 0
	for {
		improved := false
		for _, eid := range component.Edges {
			iterations++
			if opts.StopRequested != nil && opts.StopRequested.Load() {
				return cur, Stats{Algorithm: HillClimb, Iterations: iterations, FinalScore: curScore, Cancelled: true}
			}

			perm := cur[eid]
			if len(perm) < 2 {
				continue
			}
			candidate := cur.Clone()
			transpose(candidate[eid], rng)
			score := scorer.Score(candidate).Total
			accepted := score < curScore
			opts.Hooks.EmitOrderingAttempt(scorer.ComponentID, iterations, score, accepted)
			if accepted {
				cur = candidate
				curScore = score
				improved = true
			}
		}
		if !improved || curScore == 0 {
			break
		}
	}

	return cur, Stats{Algorithm: HillClimb, Iterations: iterations, FinalScore: curScore}
}

// transpose swaps two distinct random positions in perm, in place.
func transpose(perm []string, rng *rand.Rand) {
	if len(perm) < 2 {
		return
	}
	i := rng.Intn(len(perm))
	j := rng.Intn(len(perm))
	for j == i {
		j = rng.Intn(len(perm))
	}
	perm[i], perm[j] = perm[j], perm[i]
}
