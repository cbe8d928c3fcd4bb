package engine

import "context"

// Status reports the outcome of a solve.
type Status int

const (
	// StatusUnknown means the engine stopped before reaching a conclusion,
	// typically because of a time limit or cancellation.
	StatusUnknown Status = iota
	// StatusOptimal means the engine proved the returned solution optimal.
	StatusOptimal
	// StatusFeasible means a valid solution was found but optimality was not
	// proven.
	StatusFeasible
	// StatusInfeasible means the hard constraints cannot all be satisfied.
	StatusInfeasible
)

// String returns a lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Usable reports whether variable values may be read from a solution with
// this status.
func (s Status) Usable() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// Var is an opaque handle to a decision variable inside a Model. Handles are
// only meaningful for the model that created them.
type Var struct {
	ID   int
	Name string
}

// Domain bounds an integer variable to [Min, Max] inclusive.
type Domain struct {
	Min int64
	Max int64
}

// Model is the opaque surface of an external constraint/optimization engine.
// The scheduling core only assembles variables, linear constraints and a
// minimization objective through this interface; the combinatorial search
// itself is owned by the implementation.
type Model interface {
	// NewBoolVar creates a free boolean decision variable.
	NewBoolVar(name string) Var
	// NewIntVar creates an integer decision variable bounded by dom.
	NewIntVar(dom Domain, name string) Var
	// TrueVar returns the fixed-true singleton.
	TrueVar() Var
	// FalseVar returns the fixed-false singleton.
	FalseVar() Var
	// AddLessOrEqual registers the hard constraint left <= right.
	AddLessOrEqual(left, right LinearExpr)
	// AddEquality registers the hard constraint left == right.
	AddEquality(left, right LinearExpr)
	// Minimize sets the objective to minimize.
	Minimize(objective LinearExpr)
	// Solve runs the search and returns the outcome. The returned error covers
	// engine malfunction only; an unsatisfiable model is reported through the
	// solution status, not as an error.
	Solve(ctx context.Context) (Solution, error)
}

// Solution gives access to the result of a solve. Values must only be read
// when Status().Usable() is true.
type Solution interface {
	Status() Status
	// BoolValue reports whether the boolean variable is set in the solution.
	BoolValue(v Var) bool
	// Value returns the solved value of an integer variable.
	Value(v Var) int64
	// Objective returns the objective value of the solution.
	Objective() float64
}
