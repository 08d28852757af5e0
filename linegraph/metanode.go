package linegraph

import "github.com/transitdraw/linemap/geom"

// MergeMetaNodes finds groups of stop nodes that are (a) mutually
// within dist of one another and (b) pairwise directly connected by an
// edge — a clique in the adjacency sense, not merely geographic
// proximity — and collapses each such group into one meta-node. A
// meta-node's Stops is the union of its members' Stops; its position
// is the centroid of the convex hull of its members, and its footprint
// (exposed via MetaFootprint) is that hull buffered outward by
// hullBuffer.
//
// Groups that are geographically close but not a full clique are left
// untouched: merging requires every pair in the group to be directly
// linked, since a near-clique usually indicates two distinct stations
// that happen to sit close together rather than one physical complex.
func (g *Graph) MergeMetaNodes(dist, hullBuffer float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	groups := g.cliqueGroupsLocked(dist)
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		if err := g.mergeGroupLocked(group, hullBuffer); err != nil {
			return err
		}
	}
	return nil
}

// cliqueGroupsLocked partitions the live stop nodes into maximal
// connected components of the "within dist and directly edge-adjacent"
// relation, then keeps only the components that are full cliques under
// that same relation.
func (g *Graph) cliqueGroupsLocked(dist float64) [][]NodeID {
	adj := make(map[NodeID][]NodeID)
	for _, n := range g.nodes {
		if n == nil || !n.IsStop() {
			continue
		}
		for _, eid := range n.out {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			other := e.Other(n.ID)
			if on := g.nodes[other]; on == nil || !on.IsStop() {
				continue
			}
			if g.withinLocked(n.ID, other, dist) {
				adj[n.ID] = append(adj[n.ID], other)
				adj[other] = append(adj[other], n.ID)
			}
		}
		for _, eid := range n.in {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			other := e.Other(n.ID)
			if on := g.nodes[other]; on == nil || !on.IsStop() {
				continue
			}
			if g.withinLocked(n.ID, other, dist) {
				adj[n.ID] = append(adj[n.ID], other)
				adj[other] = append(adj[other], n.ID)
			}
		}
	}

	visited := make(map[NodeID]bool)
	var groups [][]NodeID
	for id := range adj {
		if visited[id] {
			continue
		}
		var component []NodeID
		stack := []NodeID{id}
		visited[id] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, cur)
			for _, nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		if isCliqueLocked(adj, component) {
			groups = append(groups, component)
		}
	}
	return groups
}

func (g *Graph) withinLocked(a, b NodeID, dist float64) bool {
	na, err := g.nodeLocked(a)
	if err != nil {
		return false
	}
	nb, err := g.nodeLocked(b)
	if err != nil {
		return false
	}
	pa := geom.Point{X: na.X, Y: na.Y}
	pb := geom.Point{X: nb.X, Y: nb.Y}
	return pa.Dist(pb) <= dist
}

// isCliqueLocked reports whether every pair of nodes in component
// appears in each other's adjacency list.
func isCliqueLocked(adj map[NodeID][]NodeID, component []NodeID) bool {
	has := func(list []NodeID, target NodeID) bool {
		for _, n := range list {
			if n == target {
				return true
			}
		}
		return false
	}
	for i := range component {
		for j := range component {
			if i == j {
				continue
			}
			if !has(adj[component[i]], component[j]) {
				return false
			}
		}
	}
	return true
}

// mergeGroupLocked replaces the nodes in group with a single new
// meta-node whose position is the centroid of the convex hull of the
// group's positions, and whose footprint is that hull buffered
// outward by hullBuffer. Every edge touching a group member is
// rewired to point at the meta-node instead; edges that ran between
// two group members (now internal to the meta-node) are dropped.
func (g *Graph) mergeGroupLocked(group []NodeID, hullBuffer float64) error {
	members := make(map[NodeID]bool, len(group))
	for _, id := range group {
		members[id] = true
	}

	pts := make([]geom.Point, 0, len(group))
	var allStops []Stop
	mergedOccConns := make(map[string][]ConnWitness)
	for _, id := range group {
		n, err := g.nodeLocked(id)
		if err != nil {
			return err
		}
		pts = append(pts, geom.Point{X: n.X, Y: n.Y})
		allStops = append(allStops, n.Stops...)
		for routeID, witnesses := range n.occConns {
			mergedOccConns[routeID] = append(mergedOccConns[routeID], witnesses...)
		}
	}
	hull := geom.ConvexHull(pts)
	footprint := geom.Buffer(hull, hullBuffer)
	cx, cy := centroid(hull)

	metaID := NodeID(len(g.nodes))
	meta := &Node{
		ID:        metaID,
		X:         cx,
		Y:         cy,
		Stops:     allStops,
		occConns:  mergedOccConns,
		footprint: footprint,
	}
	g.nodes = append(g.nodes, meta)

	for _, id := range group {
		n := g.nodes[id]
		for _, eid := range append(append([]EdgeID(nil), n.out...), n.in...) {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if members[e.From] && members[e.To] {
				// internal edge: drop it entirely.
				g.edges[eid] = nil
				continue
			}
			if e.From == id {
				e.From = metaID
				meta.out = append(meta.out, eid)
			}
			if e.To == id {
				e.To = metaID
				meta.in = append(meta.in, eid)
			}
		}
		g.nodes[id] = nil
	}

	return nil
}

// centroid returns the arithmetic mean of a polygon's vertices. For a
// convex hull this sits inside the hull, which is sufficient as a
// representative meta-node position ( does not require the
// true area centroid).
func centroid(pts []geom.Point) (float64, float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	return sx / float64(len(pts)), sy / float64(len(pts))
}

// MetaFootprint returns the buffered convex-hull footprint recorded for
// a meta-node by MergeMetaNodes, or nil if n is not a meta-node.
func (n *Node) MetaFootprint() []geom.Point { return n.footprint }
