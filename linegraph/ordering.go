package linegraph

import (
	"fmt"
	"sort"
)

// ApplyOrdering writes a resolved ribbon ordering back onto the
// LineGraph: cfg is shaped like optgraph.HierarOrderCfg (edge -> geom
// index -> per-bag-entry final position), the optimizer's writeHierarch
// output. ApplyOrdering permutes each named geom's Bag into that final
// order and records the resulting position on every NodeFront incident
// to the edge at both endpoints, so a later NodeFronts/TripOccPos
// caller (and octi.BuildCombGraph, which reads Bag order directly) sees
// the optimizer's chosen ordering instead of raw insertion order.
//
// r is the front-arc radius forwarded to NodeFronts; see its doc
// comment for how callers size it.
func (g *Graph) ApplyOrdering(cfg map[EdgeID]map[int][]int, r float64) error {
	touched, err := g.permuteBagsLocked(cfg)
	if err != nil {
		return err
	}

	for _, eid := range touched {
		e, err := g.Edge(eid)
		if err != nil {
			return err
		}
		if err := g.applyFrontOrder(e, r); err != nil {
			return err
		}
	}
	return nil
}

// permuteBagsLocked reorders every named (edge, geom) bag in cfg and
// returns the touched edge IDs in ascending order, matching the
// package's deterministic-result convention.
func (g *Graph) permuteBagsLocked(cfg map[EdgeID]map[int][]int) ([]EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	eids := make([]EdgeID, 0, len(cfg))
	for eid := range cfg {
		eids = append(eids, eid)
	}
	sort.Slice(eids, func(i, j int) bool { return eids[i] < eids[j] })

	for _, eid := range eids {
		e, err := g.edgeLocked(eid)
		if err != nil {
			return nil, err
		}
		for gi, positions := range cfg[eid] {
			if gi < 0 || gi >= len(e.Geoms) {
				return nil, fmt.Errorf("linegraph: ApplyOrdering: edge %d: geom index %d out of range", eid, gi)
			}
			bag := e.Geoms[gi].Bag
			if len(positions) != len(bag) {
				return nil, fmt.Errorf("linegraph: ApplyOrdering: edge %d geom %d: %d positions for %d bag entries", eid, gi, len(positions), len(bag))
			}
			permuted := make([]occurrence, len(bag))
			for oldIdx, newIdx := range positions {
				if newIdx < 0 || newIdx >= len(bag) {
					return nil, fmt.Errorf("linegraph: ApplyOrdering: edge %d geom %d: position %d out of range", eid, gi, newIdx)
				}
				permuted[newIdx] = bag[oldIdx]
			}
			e.Geoms[gi].Bag = permuted
		}
	}
	return eids, nil
}

// applyFrontOrder records e's post-permutation ribbon order on every
// NodeFront at e's two endpoints that includes e.
func (g *Graph) applyFrontOrder(e *Edge, r float64) error {
	for _, nid := range [2]NodeID{e.From, e.To} {
		fronts, err := g.NodeFronts(nid, r)
		if err != nil {
			return err
		}
		for i := range fronts {
			if !frontHasEdge(&fronts[i], e.ID) {
				continue
			}
			pos := 0
			for _, eg := range e.Geoms {
				for _, occ := range eg.Bag {
					fronts[i].SetTripOccPos(occ.Line.ID, pos)
					pos++
				}
			}
		}
	}
	return nil
}

func frontHasEdge(f *NodeFront, eid EdgeID) bool {
	for _, id := range f.Edges {
		if id == eid {
			return true
		}
	}
	return false
}
