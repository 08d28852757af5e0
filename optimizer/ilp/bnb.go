package ilp

import (
	"sort"
	"time"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/errs"
	"github.com/transitdraw/linemap/linegraph"
	"github.com/transitdraw/linemap/optgraph"
)

// bbEngine is the branch-and-bound search state: one binary decision
// per precedence variable, pruned by an exact partial-cost lower bound
// (the sum of crossing terms whose both variables are already decided
// — admissible since every remaining term contributes >= 0) and by
// rejecting any partial assignment that would make some edge's
// precedence relation cyclic. Uses dense precomputed data, a
// deterministic branch order, and sparse deadline polling.
type bbEngine struct {
	p problem

	assigned []int8 // -1 undecided, 0 false, 1 true
	best     []int8
	bestCost float64
	found    bool

	// adj[edge][line] is the set of lines directly decided to come
	// after line on that edge, used for cycle detection.
	adj map[linegraph.EdgeID]map[string]map[string]bool

	useDeadline bool
	deadline    time.Time
	timedOut    bool
	steps       int
}

const scoreInf = 1e18

// Solve runs the branch-and-bound search over component's variables
// and returns the recovered per-edge permutation (the "recover
// the per-edge permutation by topological sort of each edge's x
// matrix"), or a *errs.SolverBackendError if the time budget is
// exhausted with no feasible assignment found.
func Solve(og *optgraph.Graph, component *optgraph.Component, cfg config.Config, timeLimitSeconds int) (optgraph.OrderCfg, error) {
	p := buildProblem(og, component, cfg)

	e := &bbEngine{p: p}
	e.assigned = make([]int8, len(p.model.Vars))
	e.best = make([]int8, len(p.model.Vars))
	for i := range e.assigned {
		e.assigned[i] = -1
	}
	e.bestCost = scoreInf
	e.adj = make(map[linegraph.EdgeID]map[string]map[string]bool, len(p.edgeLines))
	for eid := range p.edgeLines {
		e.adj[eid] = make(map[string]map[string]bool)
	}

	if timeLimitSeconds > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(time.Duration(timeLimitSeconds) * time.Second)
	}

	e.search(0)

	if !e.found {
		return nil, &errs.SolverBackendError{Solver: "bnb", Reason: "no feasible assignment found within time budget"}
	}

	return recoverOrdering(p, e.best), nil
}

func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if e.timedOut {
		return true
	}
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
		return true
	}
	return false
}

func (e *bbEngine) search(idx int) {
	if e.deadlineCheck() {
		return
	}
	if e.partialCost() >= e.bestCost {
		return
	}
	if idx == len(e.p.model.Vars) {
		cost := e.partialCost()
		if cost < e.bestCost {
			e.bestCost = cost
			copy(e.best, e.assigned)
			e.found = true
		}
		return
	}

	v := e.p.model.Vars[idx]
	for _, val := range [2]bool{false, true} {
		if !e.tryAssign(v, idx, val) {
			continue
		}
		e.search(idx + 1)
		e.undoAssign(v, idx, val)
		if e.timedOut {
			return
		}
	}
}

// tryAssign sets vars[idx] to val and checks that the resulting
// precedes relation on v.Edge stays acyclic; returns false (and leaves
// no trace) if it would not.
func (e *bbEngine) tryAssign(v Var, idx int, val bool) bool {
	from, to := v.L1, v.L2
	if !val {
		from, to = v.L2, v.L1
	}
	adj := e.adj[v.Edge]
	if adj[from] == nil {
		adj[from] = make(map[string]bool)
	}
	if reaches(adj, to, from) {
		return false // would close a cycle: to already precedes from
	}
	adj[from][to] = true
	e.assigned[idx] = boolToInt8(val)
	return true
}

func (e *bbEngine) undoAssign(v Var, idx int, val bool) {
	from, to := v.L1, v.L2
	if !val {
		from, to = v.L2, v.L1
	}
	delete(e.adj[v.Edge][from], to)
	e.assigned[idx] = -1
}

func reaches(adj map[string]map[string]bool, from, to string) bool {
	visited := make(map[string]bool)
	var dfs func(string) bool
	dfs = func(n string) bool {
		if n == to {
			return true
		}
		if visited[n] {
			return false
		}
		visited[n] = true
		for next := range adj[n] {
			if dfs(next) {
				return true
			}
		}
		return false
	}
	return dfs(from)
}

func boolToInt8(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

// partialCost sums every crossing term whose both variables are
// currently decided.
func (e *bbEngine) partialCost() float64 {
	var total float64
	for _, t := range e.p.terms {
		va, vb := e.assigned[t.varA], e.assigned[t.varB]
		if va < 0 || vb < 0 {
			continue
		}
		oa := (va == 1) != t.flipA
		ob := (vb == 1) != t.flipB
		if oa != ob {
			total += t.weight
		}
	}
	return total
}

// recoverOrdering decodes a complete, acyclic assignment into a
// per-edge line permutation via topological sort of each edge's
// decided precedence relation.
func recoverOrdering(p problem, assignment []int8) optgraph.OrderCfg {
	precedes := make(map[Var]bool, len(p.model.Vars))
	for i, v := range p.model.Vars {
		precedes[v] = assignment[i] == 1
	}

	out := make(optgraph.OrderCfg, len(p.edgeLines))
	for eid, lines := range p.edgeLines {
		ordered := append([]string(nil), lines...)
		sort.Slice(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			lo, hi := a, b
			swap := a > b
			if swap {
				lo, hi = b, a
			}
			before := precedes[Var{Edge: eid, L1: lo, L2: hi}]
			if swap {
				return !before
			}
			return before
		})
		out[eid] = ordered
	}
	return out
}
