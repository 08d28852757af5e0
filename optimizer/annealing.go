package optimizer

import (
	"math"
	"math/rand"

	"github.com/transitdraw/linemap/optgraph"
)

// runAnnealing is runHillClimb's local-move proposal under a
// simulated-annealing acceptance criterion: worsening moves are
// accepted with probability exp(-delta/T), T follows the geometric
// cooling schedule T_{k+1} = alpha*T_k, and the search stops once T
// falls below its floor.
func runAnnealing(og *optgraph.Graph, component *optgraph.Component, scorer *optgraph.Scorer, opts Options) (optgraph.OrderCfg, Stats) {
	rng := rand.New(rand.NewSource(int64(opts.Seed)))
	cur := initialConfig(og, component, false, rng)
	curScore := scorer.Score(cur).Total

	best := cur
	bestScore := curScore

	temp := opts.AnnealingStart
	iterations := 0

	for temp > opts.AnnealingTFloor {
		for _, eid := range component.Edges {
			iterations++
			if opts.StopRequested != nil && opts.StopRequested.Load() {
				return best, Stats{Algorithm: Annealing, Iterations: iterations, FinalScore: bestScore, Cancelled: true}
			}

			perm := cur[eid]
			if len(perm) < 2 {
				continue
			}
			candidate := cur.Clone()
			transpose(candidate[eid], rng)
			score := scorer.Score(candidate).Total
			delta := score - curScore

			accepted := delta < 0 || rng.Float64() < math.Exp(-delta/temp)
			opts.Hooks.EmitOrderingAttempt(scorer.ComponentID, iterations, score, accepted)
			if accepted {
				cur = candidate
				curScore = score
				if curScore < bestScore {
					best = cur
					bestScore = curScore
				}
			}
		}
		if bestScore == 0 {
			break
		}
		temp *= opts.AnnealingAlpha
	}

	return best, Stats{Algorithm: Annealing, Iterations: iterations, FinalScore: bestScore}
}
