package optgraph

import "github.com/transitdraw/linemap/linegraph"

// Components partitions the OptGraph into its weakly-connected
// components via a queue-driven breadth-first traversal over OptNodes,
// adapted from shortest-path discovery to plain reachability.
// Optimization runs independently per component and may be dispatched
// in parallel.
func (g *Graph) Components() []*Component {
	visited := make(map[linegraph.NodeID]bool, len(g.nodes))
	var components []*Component

	for start := range g.nodes {
		if visited[start] {
			continue
		}

		comp := &Component{}
		queue := []linegraph.NodeID{start}
		visited[start] = true

		edgeSeen := make(map[linegraph.EdgeID]bool)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp.Nodes = append(comp.Nodes, cur)

			node := g.nodes[cur]
			for _, eid := range node.Edges {
				if edgeSeen[eid] {
					continue
				}
				edgeSeen[eid] = true
				comp.Edges = append(comp.Edges, eid)

				oe := g.edges[eid]
				if oe == nil {
					continue
				}
				next := oe.Other(cur)
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		components = append(components, comp)
	}

	return components
}

// Other returns the OptEdge endpoint that is not n.
func (e *OptEdge) Other(n linegraph.NodeID) linegraph.NodeID {
	if e.From == n {
		return e.To
	}
	return e.From
}
