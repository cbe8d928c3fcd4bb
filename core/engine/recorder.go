package engine

import "context"

// ConstraintKind distinguishes the two linear constraint forms.
type ConstraintKind int

const (
	LessOrEqual ConstraintKind = iota
	Equality
)

// Constraint is one recorded linear constraint.
type Constraint struct {
	Kind  ConstraintKind
	Left  LinearExpr
	Right LinearExpr
}

// VarInfo describes a recorded variable.
type VarInfo struct {
	Name    string
	Boolean bool
	Domain  Domain
}

// Recorder is an in-memory Model used in tests. It records every variable,
// constraint and the objective, and returns a scripted solution from Solve.
type Recorder struct {
	Vars          []VarInfo
	Constraints   []Constraint
	ObjectiveExpr LinearExpr
	Minimized     bool

	// SolveStatus, SolveValues, SolveObjective and SolveErr script the result
	// returned by Solve. The fixed true singleton always reads as 1.
	SolveStatus    Status
	SolveValues    map[int]int64
	SolveObjective float64
	SolveErr       error
	// OnSolve, when set, runs right before Solve returns so tests can script
	// values for variables that only exist once the model is assembled.
	OnSolve func(*Recorder)

	trueVar  Var
	falseVar Var
}

// NewRecorder returns a Recorder whose Solve reports an optimal empty
// solution until scripted otherwise.
func NewRecorder() *Recorder {
	r := &Recorder{SolveStatus: StatusOptimal, SolveValues: make(map[int]int64)}
	r.trueVar = r.record(VarInfo{Name: "true", Boolean: true})
	r.falseVar = r.record(VarInfo{Name: "false", Boolean: true})
	r.SolveValues[r.trueVar.ID] = 1
	return r
}

func (r *Recorder) record(info VarInfo) Var {
	v := Var{ID: len(r.Vars), Name: info.Name}
	r.Vars = append(r.Vars, info)
	return v
}

func (r *Recorder) NewBoolVar(name string) Var {
	return r.record(VarInfo{Name: name, Boolean: true, Domain: Domain{Min: 0, Max: 1}})
}

func (r *Recorder) NewIntVar(dom Domain, name string) Var {
	return r.record(VarInfo{Name: name, Domain: dom})
}

func (r *Recorder) TrueVar() Var { return r.trueVar }

func (r *Recorder) FalseVar() Var { return r.falseVar }

func (r *Recorder) AddLessOrEqual(left, right LinearExpr) {
	r.Constraints = append(r.Constraints, Constraint{Kind: LessOrEqual, Left: left, Right: right})
}

func (r *Recorder) AddEquality(left, right LinearExpr) {
	r.Constraints = append(r.Constraints, Constraint{Kind: Equality, Left: left, Right: right})
}

func (r *Recorder) Minimize(objective LinearExpr) {
	r.ObjectiveExpr = objective
	r.Minimized = true
}

// Solve returns the scripted solution.
func (r *Recorder) Solve(ctx context.Context) (Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.OnSolve != nil {
		r.OnSolve(r)
	}
	if r.SolveErr != nil {
		return nil, r.SolveErr
	}
	return recordedSolution{r}, nil
}

// SetValue scripts the solved value of a variable.
func (r *Recorder) SetValue(v Var, val int64) {
	r.SolveValues[v.ID] = val
}

// VarByName returns the first recorded variable with the given name.
func (r *Recorder) VarByName(name string) (Var, bool) {
	for id, info := range r.Vars {
		if info.Name == name {
			return Var{ID: id, Name: info.Name}, true
		}
	}
	return Var{}, false
}

// CountKind returns how many recorded constraints have the given kind.
func (r *Recorder) CountKind(kind ConstraintKind) int {
	n := 0
	for _, c := range r.Constraints {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

type recordedSolution struct {
	r *Recorder
}

func (s recordedSolution) Status() Status { return s.r.SolveStatus }

func (s recordedSolution) BoolValue(v Var) bool { return s.r.SolveValues[v.ID] != 0 }

func (s recordedSolution) Value(v Var) int64 { return s.r.SolveValues[v.ID] }

func (s recordedSolution) Objective() float64 { return s.r.SolveObjective }
