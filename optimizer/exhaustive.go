package optimizer

import "github.com/transitdraw/linemap/optgraph"

// runExhaustive enumerates every permutation tuple over component's
// edges in odometer order — next-permutation on edge 0, rolling over
// into edge 1, and so on — tracking the best-scoring configuration
// seen and terminating early if a zero score is reached.
// It produces the provable optimum for the component.
func runExhaustive(og *optgraph.Graph, component *optgraph.Component, scorer *optgraph.Scorer, opts Options) (optgraph.OrderCfg, Stats) {
	edges := component.Edges
	perms := make([][][]string, len(edges))
	for i, eid := range edges {
		e := og.Edge(eid)
		var lines []string
		if e != nil {
			for _, l := range e.Lines {
				lines = append(lines, l.ID)
			}
		}
		perms[i] = allPermutations(lines)
	}

	idx := make([]int, len(edges))
	best := initialConfig(og, component, true, nil)
	bestScore := scorer.Score(best).Total
	iterations := 0

	for {
		iterations++
		if opts.StopRequested != nil && opts.StopRequested.Load() {
			return best, Stats{Algorithm: Exhaustive, Iterations: iterations, FinalScore: bestScore, Cancelled: true}
		}

		cfg := make(optgraph.OrderCfg, len(edges))
		for i, eid := range edges {
			cfg[eid] = perms[i][idx[i]]
		}
		score := scorer.Score(cfg).Total
		accepted := score < bestScore || (score == bestScore && lessTuple(cfg, best))
		opts.Hooks.EmitOrderingAttempt(scorer.ComponentID, iterations, score, accepted)
		if accepted {
			bestScore = score
			best = cfg
		}
		if bestScore == 0 {
			break
		}

		// Odometer increment.
		pos := 0
		for pos < len(edges) {
			idx[pos]++
			if idx[pos] < len(perms[pos]) {
				break
			}
			idx[pos] = 0
			pos++
		}
		if pos == len(edges) {
			break // rolled over past the last edge: enumeration exhausted
		}
	}

	return best, Stats{Algorithm: Exhaustive, Iterations: iterations, FinalScore: bestScore}
}

// allPermutations returns every permutation of items via Heap's
// algorithm, deduplicated by exact sequence (so repeated line IDs in a
// multiset don't blow up the count beyond distinct orderings).
func allPermutations(items []string) [][]string {
	if len(items) == 0 {
		return [][]string{{}}
	}
	var out [][]string
	seen := make(map[string]bool)
	buf := append([]string(nil), items...)

	var heapPermute func(k int)
	heapPermute = func(k int) {
		if k == 1 {
			key := ""
			for _, s := range buf {
				key += s + ","
			}
			if !seen[key] {
				seen[key] = true
				out = append(out, append([]string(nil), buf...))
			}
			return
		}
		for i := 0; i < k; i++ {
			heapPermute(k - 1)
			if k%2 == 0 {
				buf[i], buf[k-1] = buf[k-1], buf[i]
			} else {
				buf[0], buf[k-1] = buf[k-1], buf[0]
			}
		}
	}
	heapPermute(len(buf))
	return out
}
