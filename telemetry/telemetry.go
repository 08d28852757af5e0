// Package telemetry provides a nil-safe observation seam for the
// pipeline's three long-running stages (contraction, ordering
// optimization, octilinearization). It is not a logger: it treats
// logging as an external collaborator's concern, so Hooks is a plain
// struct of optional callbacks a collaborator wires to whatever logging
// or metrics library it prefers — the same OnVisit/OnEnqueue hook idiom
// generalized from "one traversal" to "the whole pipeline".
package telemetry

// Hooks bundles optional callbacks invoked at well-defined pipeline
// points. Every field may be left nil; call sites always go through the
// nil-safe emit* helpers below rather than calling fields directly.
type Hooks struct {
	// OnScoreComputed fires once per Scorer.Score call with the
	// resulting crossing/splitting/total breakdown.
	OnScoreComputed func(componentID int, crossing, splitting, total float64)

	// OnOrderingAttempt fires once per candidate permutation tuple
	// considered by Exhaustive, or once per proposed move in HillClimb
	// and Annealing; accepted reports whether the move was kept.
	OnOrderingAttempt func(componentID int, iteration int, score float64, accepted bool)

	// OnRouteSettled fires once a CombEdge's grid path has been
	// committed by the Octilinearizer's drawing loop.
	OnRouteSettled func(edgeID int, pathLen int, cost float64)

	// OnEmbedAttempt fires once per CombEdge ordering the drawing loop
	// tries, reporting whether that ordering routed every edge.
	OnEmbedAttempt func(orderingIndex int, ok bool)
}

// emitScore is the nil-safe entry point used by package optgraph.
func (h *Hooks) emitScore(componentID int, crossing, splitting, total float64) {
	if h == nil || h.OnScoreComputed == nil {
		return
	}
	h.OnScoreComputed(componentID, crossing, splitting, total)
}

// EmitScore reports a completed Scorer.Score evaluation.
func (h *Hooks) EmitScore(componentID int, crossing, splitting, total float64) {
	h.emitScore(componentID, crossing, splitting, total)
}

// EmitOrderingAttempt reports one optimizer iteration.
func (h *Hooks) EmitOrderingAttempt(componentID, iteration int, score float64, accepted bool) {
	if h == nil || h.OnOrderingAttempt == nil {
		return
	}
	h.OnOrderingAttempt(componentID, iteration, score, accepted)
}

// EmitRouteSettled reports one committed CombEdge routing.
func (h *Hooks) EmitRouteSettled(edgeID, pathLen int, cost float64) {
	if h == nil || h.OnRouteSettled == nil {
		return
	}
	h.OnRouteSettled(edgeID, pathLen, cost)
}

// EmitEmbedAttempt reports one drawing-loop ordering attempt.
func (h *Hooks) EmitEmbedAttempt(orderingIndex int, ok bool) {
	if h == nil || h.OnEmbedAttempt == nil {
		return
	}
	h.OnEmbedAttempt(orderingIndex, ok)
}
