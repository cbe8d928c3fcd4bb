package schedule

import "errors"

// Typed failures surfaced by a scheduling run. Callers match them with
// errors.Is; the wrapped message carries the run context.
var (
	// ErrInvalidConfig covers non-positive horizons, negative lookbacks and
	// an empty rotation. Detected before any model is built.
	ErrInvalidConfig = errors.New("invalid scheduling configuration")
	// ErrUnsatisfiableRoster means fewer than two people survived the
	// availability filter, so a period can never be fully staffed.
	ErrUnsatisfiableRoster = errors.New("unsatisfiable roster")
	// ErrInfeasible means the engine proved the hard constraints cannot all
	// hold. No partial roster is ever produced.
	ErrInfeasible = errors.New("scheduling infeasible")
	// ErrInconclusive means the engine gave up without an answer, typically a
	// timeout. A retry with a larger budget may still succeed.
	ErrInconclusive = errors.New("solve inconclusive")
)
