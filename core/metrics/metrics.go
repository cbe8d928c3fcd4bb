package metrics

import "time"

// SolveEvent summarizes one scheduling run, whatever its outcome.
type SolveEvent struct {
	RunID     string
	Status    string
	Objective float64
	Duration  time.Duration
	Horizon   int
	Lookback  int
	People    int
	Time      time.Time
}

// Sink records solve outcomes for observability purposes.
type Sink interface {
	RecordSolve(ev SolveEvent) error
}

// AssignmentEvent is one (period, role, person) entry of an accepted roster.
type AssignmentEvent struct {
	RunID    string
	Period   int
	Role     string
	Person   string
	Location string
	Time     time.Time
}

// AssignmentRecorder is implemented by sinks able to record the individual
// assignments of an accepted roster.
type AssignmentRecorder interface {
	RecordAssignments(evs []AssignmentEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSolve(SolveEvent) error { return nil }

// Ensure NopSink implements AssignmentRecorder.
func (NopSink) RecordAssignments([]AssignmentEvent) error { return nil }
