package optgraph

import "github.com/transitdraw/linemap/linegraph"

// OrderCfg assigns each OptEdge a permutation of its line IDs, in
// canonical From->To order.
type OrderCfg map[linegraph.EdgeID][]string

// Clone returns a deep copy of cfg: an independent copy with no shared
// backing arrays.
func (cfg OrderCfg) Clone() OrderCfg {
	out := make(OrderCfg, len(cfg))
	for id, perm := range cfg {
		out[id] = append([]string(nil), perm...)
	}
	return out
}

// Equal reports whether cfg and other assign the same permutation to
// every edge.
func (cfg OrderCfg) Equal(other OrderCfg) bool {
	if len(cfg) != len(other) {
		return false
	}
	for id, perm := range cfg {
		op, ok := other[id]
		if !ok || len(op) != len(perm) {
			return false
		}
		for i := range perm {
			if perm[i] != op[i] {
				return false
			}
		}
	}
	return true
}

// HierarOrderCfg is the final per-geom-per-occurrence ribbon position
// assignment written back to the LineGraph: for each OptEdge, for each
// geom index on the underlying Edge, the ordered list of positions
// assigned to that geom's Bag entries (the writeHierarch).
type HierarOrderCfg map[linegraph.EdgeID]map[int][]int

// Clone returns a deep copy of h.
func (h HierarOrderCfg) Clone() HierarOrderCfg {
	out := make(HierarOrderCfg, len(h))
	for id, byGeom := range h {
		inner := make(map[int][]int, len(byGeom))
		for gi, positions := range byGeom {
			inner[gi] = append([]int(nil), positions...)
		}
		out[id] = inner
	}
	return out
}

// Equal reports whether h and other assign the same positions to every
// (edge, geom) pair.
func (h HierarOrderCfg) Equal(other HierarOrderCfg) bool {
	if len(h) != len(other) {
		return false
	}
	for id, byGeom := range h {
		obyGeom, ok := other[id]
		if !ok || len(obyGeom) != len(byGeom) {
			return false
		}
		for gi, positions := range byGeom {
			op, ok := obyGeom[gi]
			if !ok || len(op) != len(positions) {
				return false
			}
			for i := range positions {
				if positions[i] != op[i] {
					return false
				}
			}
		}
	}
	return true
}
