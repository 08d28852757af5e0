// Package optimizer implements the four Ordering Optimizer variants —
// Exhaustive, HillClimb, Annealing, ILP — behind a single dispatcher,
// plus a NullOptimizer no-op baseline. All variants share the
// initialConfig / optimizeComponent / writeHierarch contract, a
// tagged-dispatch shape providing polymorphism over solver families.
package optimizer

import (
	"sync/atomic"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/telemetry"
)

// Algorithm selects which Ordering Optimizer variant Dispatch runs.
type Algorithm int

const (
	// Exhaustive enumerates every permutation tuple in odometer order;
	// provably optimal, tractable only on small components.
	Exhaustive Algorithm = iota
	// HillClimb performs greedy single-edge local search.
	HillClimb
	// Annealing is HillClimb with a geometric-cooling acceptance
	// criterion for worsening moves.
	Annealing
	// ILP delegates to the integer-linear-programming backend
	// (package optimizer/ilp).
	ILP
	// NullOptimizer leaves initialConfig's ordering untouched — a
	// no-op baseline for A/B comparison against the other variants.
	NullOptimizer
)

// Options mirrors config.Config's optimizer-relevant fields, plus a
// cooperative cancellation flag.
type Options struct {
	Algorithm Algorithm

	AnnealingAlpha  float64
	AnnealingTFloor float64
	AnnealingStart  float64

	Seed uint64

	ILPSolver     string
	ILPTimeLimitS int
	ILPNoSolve    bool
	ILPPath       string
	ILPFallback   bool

	// StopRequested, when non-nil and observed true once per outer
	// iteration, makes optimizeComponent return early with whatever
	// best config it has found.
	StopRequested *atomic.Bool

	// Hooks, if non-nil, receives one EmitOrderingAttempt call per
	// candidate ordering considered and is forwarded to the Scorer this
	// run constructs (the pipeline progress observation seam).
	Hooks *telemetry.Hooks
}

// FromConfig derives optimizer Options from a resolved config.Config.
func FromConfig(cfg config.Config) Options {
	return Options{
		Algorithm:       algorithmFromConfig(cfg.Optim),
		AnnealingAlpha:  cfg.AnnealingAlpha,
		AnnealingTFloor: cfg.AnnealingTFloor,
		AnnealingStart:  cfg.AnnealingStart,
		Seed:            cfg.Seed,
		ILPSolver:       cfg.ILPSolver,
		ILPTimeLimitS:   cfg.ILPTimeLimitS,
		ILPNoSolve:      cfg.ILPNoSolve,
		ILPPath:         cfg.ILPPath,
		ILPFallback:     cfg.ILPFallback,
	}
}

func algorithmFromConfig(o config.Optim) Algorithm {
	switch o {
	case config.OptimExhaustive:
		return Exhaustive
	case config.OptimHillClimb:
		return HillClimb
	case config.OptimAnnealing:
		return Annealing
	case config.OptimILP:
		return ILP
	case config.OptimNull:
		return NullOptimizer
	default:
		return HillClimb
	}
}

// Stats reports diagnostics from one optimizeComponent run: a
// result-plus-cost pattern generalized to (score + iteration count).
type Stats struct {
	Algorithm  Algorithm
	Iterations int
	FinalScore float64
	Cancelled  bool
}
