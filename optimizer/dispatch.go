package optimizer

import (
	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/optgraph"
	"github.com/transitdraw/linemap/optimizer/ilp"
)

// Dispatch runs the Ordering Optimizer variant named by opts.Algorithm
// over one OptGraph component and writes the winning OrderCfg out as a
// HierarOrderCfg. ILP failures fall back to HillClimb
// when opts.ILPFallback is set, a documented escape hatch for an
// unavailable or unreliable back-end.
func Dispatch(og *optgraph.Graph, component *optgraph.Component, scoreCfg config.Config, opts Options) (optgraph.HierarOrderCfg, Stats, error) {
	scorer := optgraph.NewScorer(og, scoreCfg, opts.Hooks)
	if len(component.Nodes) > 0 {
		scorer.ComponentID = int(component.Nodes[0])
	}

	switch opts.Algorithm {
	case NullOptimizer:
		cfg := initialConfig(og, component, true, nil)
		stats := Stats{Algorithm: NullOptimizer, FinalScore: scorer.Score(cfg).Total}
		return writeHierarch(og, cfg), stats, nil

	case Exhaustive:
		cfg, stats := runExhaustive(og, component, scorer, opts)
		return writeHierarch(og, cfg), stats, nil

	case Annealing:
		cfg, stats := runAnnealing(og, component, scorer, opts)
		return writeHierarch(og, cfg), stats, nil

	case ILP:
		if opts.ILPNoSolve {
			cfg := initialConfig(og, component, true, nil)
			return writeHierarch(og, cfg), Stats{Algorithm: ILP, FinalScore: scorer.Score(cfg).Total}, nil
		}
		cfg, err := ilp.Solve(og, component, scoreCfg, opts.ILPTimeLimitS)
		if err != nil {
			if opts.ILPFallback {
				cfg, stats := runHillClimb(og, component, scorer, opts)
				stats.Algorithm = ILP
				return writeHierarch(og, cfg), stats, nil
			}
			return nil, Stats{Algorithm: ILP}, err
		}
		stats := Stats{Algorithm: ILP, FinalScore: scorer.Score(cfg).Total}
		return writeHierarch(og, cfg), stats, nil

	default: // HillClimb
		cfg, stats := runHillClimb(og, component, scorer, opts)
		return writeHierarch(og, cfg), stats, nil
	}
}
