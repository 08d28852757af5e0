package optimizer

import (
	"github.com/transitdraw/linemap/linegraph"
	"github.com/transitdraw/linemap/optgraph"
)

// writeHierarch resolves a component's OrderCfg into a HierarOrderCfg:
// for each OptEdge, for each underlying (geom, bag-entry) pair, the
// bag entry's line is looked up in the chosen permutation and its
// position recorded, reversed when that bag entry's recorded direction
// disagrees with the edge's canonical From->To orientation.
func writeHierarch(og *optgraph.Graph, cfg optgraph.OrderCfg) optgraph.HierarOrderCfg {
	out := make(optgraph.HierarOrderCfg)

	for eid, perm := range cfg {
		oe := og.Edge(eid)
		if oe == nil {
			continue
		}
		lgEdge, err := og.LineGraph().Edge(eid)
		if err != nil {
			continue
		}

		position := make(map[string]int, len(perm))
		for i, id := range perm {
			position[id] = i
		}

		byGeom := make(map[int][]int)
		for _, ref := range oe.Etgs {
			if ref.GeomIndex >= len(lgEdge.Geoms) {
				continue
			}
			bag := lgEdge.Geoms[ref.GeomIndex].Bag
			if ref.OrderIndex >= len(bag) {
				continue
			}
			lineID := bag[ref.OrderIndex].Line.ID
			pos := position[lineID]
			if ref.Dir == linegraph.Backward {
				pos = len(perm) - 1 - pos
			}
			byGeom[ref.GeomIndex] = append(byGeom[ref.GeomIndex], pos)
		}
		out[eid] = byGeom
	}

	return out
}
