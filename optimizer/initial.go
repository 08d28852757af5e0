package optimizer

import (
	"math/rand"
	"sort"

	"github.com/transitdraw/linemap/optgraph"
)

// initialConfig assigns each edge of component a starting permutation
// of its line IDs. sorted=true yields the lexicographic
// permutation, used by Exhaustive for deterministic odometer
// enumeration; sorted=false yields a uniform random shuffle from rng.
func initialConfig(og *optgraph.Graph, component *optgraph.Component, sorted bool, rng *rand.Rand) optgraph.OrderCfg {
	cfg := make(optgraph.OrderCfg, len(component.Edges))
	for _, eid := range component.Edges {
		e := og.Edge(eid)
		if e == nil {
			continue
		}
		ids := make([]string, len(e.Lines))
		for i, l := range e.Lines {
			ids[i] = l.ID
		}
		if sorted {
			sort.Strings(ids)
		} else {
			rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		}
		cfg[eid] = ids
	}
	return cfg
}
