package model

import "time"

// Role distinguishes the primary responder from the secondary backup.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
)

// String returns a human readable role name.
func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Assignment binds one person to one role for one future period.
type Assignment struct {
	Period int    `json:"period"`
	Role   Role   `json:"role"`
	Person string `json:"person"`
}

// Load counts how many periods of each role a person ended up with across the
// full window, history included.
type Load struct {
	Person    string `json:"person"`
	Primary   int    `json:"primary"`
	Secondary int    `json:"secondary"`
}

// Schedule is the accepted outcome of a single scheduling run.
type Schedule struct {
	// RunID uniquely identifies the run that produced this schedule.
	RunID string `json:"run_id"`
	// Status is the solver status string ("optimal" or "feasible").
	Status string `json:"status"`
	// Objective is the minimized objective value reported by the engine.
	Objective float64 `json:"objective"`
	// SolveDuration is the wall-clock time spent inside the engine.
	SolveDuration time.Duration `json:"solve_duration"`
	// Assignments lists one primary and one secondary per future period, in
	// increasing period order.
	Assignments []Assignment `json:"assignments"`
	// Loads reports per-person totals over the full window.
	Loads []Load `json:"loads"`
	// LoadMean and LoadStdDev summarize how evenly duty is spread.
	LoadMean   float64 `json:"load_mean"`
	LoadStdDev float64 `json:"load_stddev"`
	// GeneratedAt is when the run finished.
	GeneratedAt time.Time `json:"generated_at"`
}

// PersonFor returns the person assigned to the role in the given period, or
// the empty string when the period is not part of the schedule.
func (s *Schedule) PersonFor(period int, role Role) string {
	for _, a := range s.Assignments {
		if a.Period == period && a.Role == role {
			return a.Person
		}
	}
	return ""
}
