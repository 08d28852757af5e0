// Package octroute implements the octilinearizer's routing step: a
// multi-source/multi-sink shortest-path search over a gridgraph.Grid,
// guided by an admissible octile-distance heuristic — turning plain
// Dijkstra into A*.
//
// Uses a lazy-decrease-key container/heap min-priority-queue shape
// (nodeItem/nodePQ); obstacle-blocked hops are simply absent from
// gridgraph.Grid.Edges, so no separate impassability check is needed
// here. Extended with a frontier that starts from several sources and
// stops at the first sink reached, and an admissible heuristic argument
// turning it into A*.
package octroute

import (
	"container/heap"
	"math"

	"github.com/transitdraw/linemap/octi/gridgraph"
)

// CostFunc computes the traversed cost of one grid edge, layering
// geo-penalty/congestion bias on top of gridgraph.Edge.Cost: base grid
// cost, with per-direction geo-penalties added on top where applicable.
type CostFunc func(from, to gridgraph.NodeID, base float64) float64

// Heuristic estimates the remaining cost from a node to the nearest
// sink; must never overestimate the true remaining cost (admissible).
type Heuristic func(n gridgraph.NodeID) float64

// ShortestPath runs A* from sources to the nearest reachable sink,
// returning the node path and its total cost, or ok=false if no sink
// is reachable ( "if no path: fail this ordering").
func ShortestPath(g *gridgraph.Grid, sources, sinks []gridgraph.NodeID, cost CostFunc, heur Heuristic) ([]gridgraph.NodeID, float64, bool) {
	sinkSet := make(map[gridgraph.NodeID]bool, len(sinks))
	for _, s := range sinks {
		sinkSet[s] = true
	}

	dist := make(map[gridgraph.NodeID]float64)
	prev := make(map[gridgraph.NodeID]gridgraph.NodeID)
	visited := make(map[gridgraph.NodeID]bool)

	pq := make(nodePQ, 0, len(sources))
	heap.Init(&pq)
	for _, s := range sources {
		dist[s] = 0
		heap.Push(&pq, &nodeItem{id: s, g: 0, f: heur(s)})
	}

	var goal gridgraph.NodeID
	found := false

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		if sinkSet[u] {
			goal = u
			found = true
			break
		}

		for _, e := range g.Edges(u) {
			if math.IsInf(e.Cost, 1) {
				continue
			}
			w := cost(u, e.To, e.Cost)
			if math.IsInf(w, 1) {
				continue
			}
			nd := dist[u] + w
			if old, ok := dist[e.To]; ok && nd >= old {
				continue
			}
			dist[e.To] = nd
			prev[e.To] = u
			heap.Push(&pq, &nodeItem{id: e.To, g: nd, f: nd + heur(e.To)})
		}
	}

	if !found {
		return nil, 0, false
	}

	var path []gridgraph.NodeID
	for n := goal; ; {
		path = append([]gridgraph.NodeID{n}, path...)
		p, ok := prev[n]
		if !ok {
			break
		}
		n = p
	}
	return path, dist[goal], true
}

type nodeItem struct {
	id   gridgraph.NodeID
	g, f float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
