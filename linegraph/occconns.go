package linegraph

// RecordContinuation witnesses that lineID was observed entering node n
// via inEdge and continuing out via outEdge — a single piece of
// per-node continuation input the caller must supply explicitly, since
// a continuation is information about two edges at once and cannot be
// inferred from either edge's own AddLineOnEdge call in isolation.
// Both edges must already be incident to n. Route builders call this
// once per interior node of every multi-edge route they assemble (see
// linegraph/fixtures for the canonical shape).
func (g *Graph) RecordContinuation(n NodeID, lineID string, inEdge, outEdge EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	node, err := g.nodeLocked(n)
	if err != nil {
		return err
	}
	if _, err := g.edgeLocked(inEdge); err != nil {
		return err
	}
	if _, err := g.edgeLocked(outEdge); err != nil {
		return err
	}
	if !incidentLockedTo(node, inEdge) || !incidentLockedTo(node, outEdge) {
		return ErrNotIncident
	}

	node.occConns[lineID] = append(node.occConns[lineID], ConnWitness{FromEdge: inEdge, ToEdge: outEdge})
	return nil
}

func incidentLockedTo(n *Node, eid EdgeID) bool {
	for _, id := range n.out {
		if id == eid {
			return true
		}
	}
	for _, id := range n.in {
		if id == eid {
			return true
		}
	}
	return false
}

// IsLegalContinuation reports whether lineID has a witnessed
// connection through node n between edges e1 and e2 — i.e. whether the
// node's occConns table records lineID passing from e1 to e2
// or from e2 to e1. Callers (the optgraph Scorer) use this to tell a
// legal line-continuation from an incidental crossing at a node.
func (g *Graph) IsLegalContinuation(n NodeID, lineID string, e1, e2 EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, err := g.nodeLocked(n)
	if err != nil {
		return false
	}
	for _, w := range node.occConns[lineID] {
		if (w.FromEdge == e1 && w.ToEdge == e2) || (w.FromEdge == e2 && w.ToEdge == e1) {
			return true
		}
	}
	return false
}
