// Package errs defines the four error kinds of the line-map pipeline:
// BadInput, NoEmbeddingFound, SolverBackendError, Cancelled.
// Each is a distinct Go type carrying the context a caller needs (the
// offending ID, the orderings tried, the iteration count, …) and
// unwrapping to an unexported package-level sentinel, using the
// sentinel + fmt.Errorf("%w: …") wrapping convention used throughout
// this module.
package errs

import "fmt"

// Sentinel values each error type unwraps to. They are unexported, so
// callers outside this package test the kind with errors.As on the
// struct type (or IsBadInput), not errors.Is.
var (
	sentinelBadInput         = fmt.Errorf("errs: bad input")
	sentinelNoEmbeddingFound = fmt.Errorf("errs: no embedding found")
	sentinelSolverBackend    = fmt.Errorf("errs: solver backend error")
	sentinelCancelled        = fmt.Errorf("errs: cancelled")
)

// BadInput is raised when a LineGraph violates an invariant: a duplicated
// line on an edge, a front with no edges, etc. Fatal at load time.
type BadInput struct {
	OffendingID string
	Reason      string
}

func (e *BadInput) Error() string {
	return fmt.Sprintf("errs: bad input: %s: %s", e.OffendingID, e.Reason)
}

// Unwrap lets errors.Is(err, sentinelBadInput)-style checks succeed
// without exposing the unexported sentinel; use IsBadInput instead.
func (e *BadInput) Unwrap() error { return sentinelBadInput }

// IsBadInput reports whether err is (or wraps) a *BadInput.
func IsBadInput(err error) bool {
	var b *BadInput
	return asBadInput(err, &b)
}

func asBadInput(err error, target **BadInput) bool {
	for err != nil {
		if b, ok := err.(*BadInput); ok {
			*target = b
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// NoEmbeddingFound is raised when the Octilinearizer exhausts every
// candidate CombEdge ordering without successfully routing all edges.
// Fatal to the octilinearization pass only; Optimizer results remain
// valid ( policy table).
type NoEmbeddingFound struct {
	OrderingsTried int
}

func (e *NoEmbeddingFound) Error() string {
	return fmt.Sprintf("errs: no embedding found after %d ordering(s)", e.OrderingsTried)
}

func (e *NoEmbeddingFound) Unwrap() error { return sentinelNoEmbeddingFound }

// SolverBackendError is raised when the ILP back-end is unavailable, the
// LP is infeasible, or its time limit expires with no feasible solution.
type SolverBackendError struct {
	Solver string
	Reason string
}

func (e *SolverBackendError) Error() string {
	return fmt.Sprintf("errs: solver backend %q: %s", e.Solver, e.Reason)
}

func (e *SolverBackendError) Unwrap() error { return sentinelSolverBackend }

// Cancelled is raised when a cooperative stop flag is observed. It
// carries only the iteration count; any best-so-far result is returned
// by the caller separately, not stored in the error.
type Cancelled struct {
	// Iterations is how many outer-loop steps ran before cancellation.
	Iterations int
}

func (e *Cancelled) Error() string {
	return fmt.Sprintf("errs: cancelled after %d iteration(s)", e.Iterations)
}

func (e *Cancelled) Unwrap() error { return sentinelCancelled }
