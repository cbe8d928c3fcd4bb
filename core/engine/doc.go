// Package engine defines the solver-agnostic modeling surface used by the
// scheduling core. A Model collects boolean and integer decision variables,
// hard linear constraints and a minimization objective; Solve hands the
// assembled model to the underlying search and returns a Solution whose
// status must be checked before any value is read.
//
// Implementations live outside the core (see infra/engine); Recorder is an
// in-memory implementation for tests.
package engine
