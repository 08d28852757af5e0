package octi

import (
	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/octi/gridgraph"
	"github.com/transitdraw/linemap/octi/octroute"
)

// maxLocalSearchPasses bounds the number of full node sweeps the local
// search performs if it keeps finding improvements.
const maxLocalSearchPasses = 5

// localSearch perturbs each settled CombNode to a neighboring cell and
// reroutes its incident CombEdges, accepting the move only if every
// affected edge still routes and the combined cost strictly improves.
// Terminates when no neighbor improves.
func localSearch(cg *CombGraph, grid *gridgraph.Grid, drawing *Drawing, cfg config.Config) {
	for pass := 0; pass < maxLocalSearchPasses; pass++ {
		improved := false
		for _, n := range cg.Nodes {
			pos, ok := drawing.Positions[n.ID]
			if !ok {
				continue
			}
			if tryRelocate(cg, grid, drawing, n, pos, cfg) {
				improved = true
			}
		}
		if !improved {
			break
		}
	}
}

var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// tryRelocate attempts to move n from its current cell to each of its
// 8 grid neighbors in turn, rerouting every incident CombEdge from the
// candidate cell; it accepts the first neighbor whose rerouted edges
// all still succeed and whose combined cost strictly improves on n's
// current incident-edge cost.
func tryRelocate(cg *CombGraph, grid *gridgraph.Grid, drawing *Drawing, n *CombNode, from [2]int, cfg config.Config) bool {
	incident := cg.Incident(n.ID)
	baseCost := 0.0
	for _, ce := range incident {
		baseCost += drawing.Costs[ce.ID]
	}

	for _, off := range neighborOffsets {
		to := [2]int{from[0] + off[0], from[1] + off[1]}
		if !grid.InBounds(to[0], to[1]) || grid.IsOccupied(to[0], to[1]) {
			continue
		}

		newPaths := make(map[int][]gridgraph.NodeID, len(incident))
		newCosts := make(map[int]float64, len(incident))
		newTotal := 0.0
		ok := true
		for _, ce := range incident {
			otherPos, known := drawing.Positions[otherEndpoint(ce, n.ID)]
			if !known {
				ok = false
				break
			}
			sources := []gridgraph.NodeID{grid.ParentNode(to[0], to[1])}
			sinks := []gridgraph.NodeID{grid.ParentNode(otherPos[0], otherPos[1])}
			cost := edgeCostFunc(grid, ce, cfg.EnfGeoCourse)
			heur := octroute.BaseGraphHeur(grid, sinks)
			path, total, found := octroute.ShortestPath(grid, sources, sinks, cost, heur)
			if !found {
				ok = false
				break
			}
			newPaths[ce.ID] = path
			newCosts[ce.ID] = total
			newTotal += total
		}
		if !ok || newTotal >= baseCost {
			continue
		}

		grid.Release(from[0], from[1])
		grid.Settle(to[0], to[1], combNodeID(n.ID))
		drawing.Positions[n.ID] = to
		for eid, path := range newPaths {
			drawing.TotalCost += newCosts[eid] - drawing.Costs[eid]
			drawing.Paths[eid] = path
			drawing.Costs[eid] = newCosts[eid]
		}
		return true
	}
	return false
}

func otherEndpoint(ce *CombEdge, n int) int {
	if ce.From == n {
		return ce.To
	}
	return ce.From
}
