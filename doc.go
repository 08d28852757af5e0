// Package linemap is the core rendering pipeline for schematic transit
// line maps: it turns a set of stops and routes into an octilinear
// drawing with minimized line crossings.
//
// The pipeline is organized under these subpackages:
//
//	linegraph/  — the shared multigraph data model: stops, edges, lines
//	optgraph/   — the contracted optimization view and crossing/splitting scorer
//	optimizer/  — line-ordering search: hill-climb, annealing, exhaustive, ILP
//	octi/       — the octilinearizer: grid embedding and routing
//	config/     — the single tunables struct threaded through every stage
//	telemetry/  — optional hooks for observing scoring and embedding progress
//	errs/       — sentinel errors shared across package boundaries
//	geom/       — the minimal polyline contract the pipeline depends on
//
// A typical run builds a linegraph.Graph from route data, contracts it
// into an optgraph.Graph, dispatches optimizer.Dispatch per connected
// component to settle each edge's line ordering, then hands the result
// to octi.Embed to produce a Drawing. None of these stages parses input
// formats or renders output pixels — that is left to collaborators
// outside this module.
package linemap
