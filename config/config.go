// Package config holds the single configuration object consumed by every
// stage of the line-map rendering pipeline: the ordering Scorer and
// Optimizer (package optimizer), and the Octilinearizer (package octi).
//
// The pipeline never loads this struct from a file or flag set itself —
// that is a collaborator's job. Config only defines the knobs and their
// defaults, resolved through functional options applied over a base
// Default() value.
package config

import "math/rand"

// BaseGraph selects which compass directions the octilinearizer's base
// grid graph may use.
type BaseGraph int

const (
	// OCTIGRID allows all 8 compass directions (45° diagonals included).
	OCTIGRID BaseGraph = iota
	// GRID restricts routing to the 4 orthogonal compass directions.
	GRID
)

// Optim selects which Ordering Optimizer variant runs over each OptGraph
// component.
type Optim int

const (
	// OptimExhaustive enumerates every permutation tuple; provably optimal,
	// only tractable on small components.
	OptimExhaustive Optim = iota
	// OptimHillClimb performs greedy local search from a starting config.
	OptimHillClimb
	// OptimAnnealing performs simulated annealing with geometric cooling.
	OptimAnnealing
	// OptimILP delegates to the integer-linear-programming backend.
	OptimILP
	// OptimNull leaves whatever initialConfig produced untouched.
	OptimNull
)

// Config is the immutable-after-construction set of tunables threaded
// through every pipeline stage. Zero value is not meaningful; always
// start from Default().
type Config struct {
	// Scorer knobs.
	SplittingOpt           bool
	CrossingPenaltySameSeg float64
	CrossingPenaltyDiffSeg float64
	SplittingPenalty       float64

	// Optimizer selection and annealing schedule.
	Optim           Optim
	AnnealingAlpha  float64
	AnnealingTFloor float64
	AnnealingStart  float64

	// Octilinearizer grid geometry.
	GridSize     float64
	BorderRad    float64
	MaxGridDist  float64
	EnfGeoCourse float64
	BaseGraph    BaseGraph

	// Structural toggles.
	Deg2Heur       bool
	RestrLocSearch bool

	// Rendering widths.
	LineWidth   float64
	LineSpacing float64

	// ILP backend.
	ILPSolver     string
	ILPTimeLimitS int
	ILPNoSolve    bool
	ILPPath       string
	ILPFallback   bool // fall back to HillClimb on SolverBackendError

	// Determinism.
	Seed uint64
}

// Option mutates a Config during Default's resolution, following the
// functional-option shape used throughout this module.
type Option func(*Config)

// Default returns a Config populated with conservative defaults:
// splitting disabled, equal crossing penalties, hill-climb optimizer,
// OCTIGRID base graph, and a fixed zero seed for reproducibility.
func Default(opts ...Option) Config {
	cfg := Config{
		SplittingOpt:           false,
		CrossingPenaltySameSeg: 1,
		CrossingPenaltyDiffSeg: 1,
		SplittingPenalty:       1,
		Optim:                  OptimHillClimb,
		AnnealingAlpha:         0.95,
		AnnealingTFloor:        1e-3,
		AnnealingStart:         10,
		GridSize:               1,
		BorderRad:              1,
		MaxGridDist:            4,
		EnfGeoCourse:           1,
		BaseGraph:              OCTIGRID,
		Deg2Heur:               true,
		RestrLocSearch:         false,
		LineWidth:              1,
		LineSpacing:            0.2,
		ILPSolver:              "",
		ILPTimeLimitS:          30,
		ILPNoSolve:             false,
		ILPPath:                "",
		ILPFallback:            true,
		Seed:                   0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSplitting enables the splitting penalty term in the Scorer.
func WithSplitting(enabled bool) Option {
	return func(c *Config) { c.SplittingOpt = enabled }
}

// WithCrossingPenalties sets the same-segment and different-segment
// crossing weights. Panics if diff < same, since scoring requires
// w_diff >= w_same >= 0 — a malformed literal config is a programmer
// error, caught immediately rather than silently misscoring later.
func WithCrossingPenalties(same, diff float64) Option {
	if diff < same || same < 0 {
		panic("config: crossing penalties must satisfy diff >= same >= 0")
	}
	return func(c *Config) {
		c.CrossingPenaltySameSeg = same
		c.CrossingPenaltyDiffSeg = diff
	}
}

// WithSplittingPenalty sets the per-triple splitting penalty weight.
func WithSplittingPenalty(w float64) Option {
	return func(c *Config) { c.SplittingPenalty = w }
}

// WithOptim selects the ordering optimizer variant.
func WithOptim(o Optim) Option {
	return func(c *Config) { c.Optim = o }
}

// WithAnnealing sets the simulated-annealing cooling schedule. Panics if
// alpha is outside (0,1): a malformed literal config is a programmer
// error, not a runtime condition to recover from.
func WithAnnealing(start, floor, alpha float64) Option {
	if alpha <= 0 || alpha >= 1 {
		panic("config: annealing alpha must be in (0,1)")
	}
	return func(c *Config) {
		c.AnnealingStart = start
		c.AnnealingTFloor = floor
		c.AnnealingAlpha = alpha
	}
}

// WithGrid sets the base grid graph's geometry knobs.
func WithGrid(gridSize, borderRad, maxGridDist float64, kind BaseGraph) Option {
	return func(c *Config) {
		c.GridSize = gridSize
		c.BorderRad = borderRad
		c.MaxGridDist = maxGridDist
		c.BaseGraph = kind
	}
}

// WithGeoCourse sets the direction-deviation penalty weight.
func WithGeoCourse(w float64) Option {
	return func(c *Config) { c.EnfGeoCourse = w }
}

// WithDeg2Heur sets Config.Deg2Heur. optgraph.Build contracts degree-2
// chains whatever this flag says; no package in this module reads it.
func WithDeg2Heur(enabled bool) Option {
	return func(c *Config) { c.Deg2Heur = enabled }
}

// WithRestrictedLocalSearch toggles the octilinearizer's post-draw
// neighbor-perturbation pass.
func WithRestrictedLocalSearch(enabled bool) Option {
	return func(c *Config) { c.RestrLocSearch = enabled }
}

// WithLineMetrics sets the per-line render width and inter-line spacing.
func WithLineMetrics(width, spacing float64) Option {
	return func(c *Config) {
		c.LineWidth = width
		c.LineSpacing = spacing
	}
}

// WithILP configures the ILP backend: external solver name, time budget,
// a write-only dry run (ilpNoSolve), the LP dump path, and whether
// SolverBackendError falls back to the HillClimb result.
func WithILP(solver string, timeLimitSec int, noSolve bool, path string, fallback bool) Option {
	return func(c *Config) {
		c.ILPSolver = solver
		c.ILPTimeLimitS = timeLimitSec
		c.ILPNoSolve = noSolve
		c.ILPPath = path
		c.ILPFallback = fallback
	}
}

// WithSeed fixes the RNG seed used by random shuffles and annealing.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}

// NewRand returns a fresh *rand.Rand seeded from Config.Seed: a new
// Rand per deterministic run instead of a shared global source.
func (c Config) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(int64(c.Seed)))
}
