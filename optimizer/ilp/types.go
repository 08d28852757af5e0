// Package ilp implements the exact integer-linear-programming backend
// for the Ordering Optimizer. For each unordered pair of
// lines sharing an edge, a binary precedence variable decides which
// line comes first; antisymmetry is structural (only one variable per
// pair), transitivity is enforced by rejecting inconsistent partial
// assignments during search, and the objective sums linearized
// crossing indicators exactly as optgraph.Scorer does.
//
// Solver is the interface shape for a pluggable MILP back-end
// (CBC/Gurobi/GLPK). No type in this module implements it: the in-repo
// branch-and-bound is the package function Solve, which works on the
// OptGraph component directly.
package ilp

import "github.com/transitdraw/linemap/linegraph"

// Var is one precedence variable x_{e,L1,L2}: true means L1 precedes
// L2 on edge e (looking from e's canonical From endpoint).
type Var struct {
	Edge linegraph.EdgeID
	L1   string
	L2   string
}

// Model is the flattened variable set for one OptGraph component: one
// Var per unordered line pair sharing an edge.
type Model struct {
	Vars []Var
}

// Assignment maps each Var's index in Model.Vars to its decided value.
type Assignment []bool

// Solver finds an assignment minimizing the crossing/splitting
// objective over a Model within a time budget.
type Solver interface {
	Solve(m Model, timeLimitSeconds int) (Assignment, error)
}
