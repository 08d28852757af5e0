package optimizer

import (
	"sort"
	"strings"

	"github.com/transitdraw/linemap/linegraph"
	"github.com/transitdraw/linemap/optgraph"
)

// lessTuple reports whether a's lexicographically-sorted edge-permutation
// tuple sorts before b's, used to break ties between equal-score
// configurations so every solver agrees on which one wins under a fixed
// seed (the "tie-breaking across solvers").
func lessTuple(a, b optgraph.OrderCfg) bool {
	return tupleKey(a) < tupleKey(b)
}

func tupleKey(cfg optgraph.OrderCfg) string {
	ids := make([]linegraph.EdgeID, 0, len(cfg))
	for eid := range cfg {
		ids = append(ids, eid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		for _, line := range cfg[id] {
			b.WriteString(line)
			b.WriteByte(',')
		}
		b.WriteByte('|')
	}
	return b.String()
}
