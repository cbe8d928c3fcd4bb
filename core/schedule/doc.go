// Package schedule builds on-call rosters by translating human scheduling
// rules into a constraint/optimization model solved by an external engine.
//
// Key components:
//   - FilterAvailable: drops people out of the rotation for the whole window.
//   - HistoryProvider: supplies committed past assignments so fairness and
//     anti-consecutive rules stay correct across runs.
//   - the shift lattice: one boolean per (period, person, role), history
//     periods pinned to fixed truths.
//   - hard constraints: role exclusivity, no back-to-back duty, full coverage.
//   - fairness shaping: soft per-person share band via slack pairs.
//   - cost annotation: holiday windows make assignments expensive, time off
//     pins variables to false.
//
// The engine is opaque (see core/engine); the Scheduler always branches on
// the solve status before reading values and never reports a partial roster.
package schedule
