package glpkengine

import (
	"context"
	"fmt"

	"github.com/lukpank/go-glpk/glpk"

	"github.com/zecke/rostergen/core/engine"
)

// Model drives the GNU Linear Programming Kit as the solving engine behind
// the core/engine surface. Booleans become binary columns, bounded integers
// become integer columns, and linear constraints become bounded rows. The
// search runs Simplex on the relaxation followed by branch-and-cut.
type Model struct {
	lp     *glpk.Prob
	cols   int
	obj    map[int]float64
	offset int64
	solved bool

	trueVar  engine.Var
	falseVar engine.Var
	hasTrue  bool
	hasFalse bool
}

// New creates an empty GLPK-backed model.
func New() *Model {
	lp := glpk.New()
	lp.SetProbName("oncall_roster")
	lp.SetObjDir(glpk.ObjDir(glpk.MIN))
	return &Model{lp: lp, obj: make(map[int]float64)}
}

// NewModel is a model factory suitable for schedule.New.
func NewModel() engine.Model { return New() }

func (m *Model) addCol(name string) int {
	m.cols++
	m.lp.AddCols(1)
	m.lp.SetColName(m.cols, name)
	return m.cols
}

func (m *Model) NewBoolVar(name string) engine.Var {
	col := m.addCol(name)
	m.lp.SetColKind(col, glpk.VarType(glpk.BV))
	return engine.Var{ID: col, Name: name}
}

func (m *Model) NewIntVar(dom engine.Domain, name string) engine.Var {
	col := m.addCol(name)
	m.lp.SetColKind(col, glpk.VarType(glpk.IV))
	if dom.Min == dom.Max {
		m.lp.SetColBnds(col, glpk.BndsType(glpk.FX), float64(dom.Min), float64(dom.Max))
	} else {
		m.lp.SetColBnds(col, glpk.BndsType(glpk.DB), float64(dom.Min), float64(dom.Max))
	}
	return engine.Var{ID: col, Name: name}
}

// TrueVar returns the fixed-true singleton column, creating it on first use.
func (m *Model) TrueVar() engine.Var {
	if !m.hasTrue {
		col := m.addCol("true")
		m.lp.SetColKind(col, glpk.VarType(glpk.IV))
		m.lp.SetColBnds(col, glpk.BndsType(glpk.FX), 1, 1)
		m.trueVar = engine.Var{ID: col, Name: "true"}
		m.hasTrue = true
	}
	return m.trueVar
}

// FalseVar returns the fixed-false singleton column, creating it on first use.
func (m *Model) FalseVar() engine.Var {
	if !m.hasFalse {
		col := m.addCol("false")
		m.lp.SetColKind(col, glpk.VarType(glpk.IV))
		m.lp.SetColBnds(col, glpk.BndsType(glpk.FX), 0, 0)
		m.falseVar = engine.Var{ID: col, Name: "false"}
		m.hasFalse = true
	}
	return m.falseVar
}

// addRow registers left-right as one bounded row. The caller picks the bound
// type: UP for <=, FX for ==, applied to the moved constant.
func (m *Model) addRow(left, right engine.LinearExpr, bnds glpk.BndsType) {
	coeffs := make(map[int]float64)
	for _, t := range left.Terms() {
		coeffs[t.Var.ID] += float64(t.Coeff)
	}
	for _, t := range right.Terms() {
		coeffs[t.Var.ID] -= float64(t.Coeff)
	}
	bound := float64(right.Offset() - left.Offset())

	ind := make([]int32, 0, len(coeffs))
	val := make([]float64, 0, len(coeffs))
	for col, c := range coeffs {
		if c == 0 {
			continue
		}
		ind = append(ind, int32(col))
		val = append(val, c)
	}

	m.lp.AddRows(1)
	row := m.lp.NumRows()
	m.lp.SetRowBnds(row, bnds, bound, bound)
	m.lp.SetMatRow(row, ind, val)
}

func (m *Model) AddLessOrEqual(left, right engine.LinearExpr) {
	m.addRow(left, right, glpk.BndsType(glpk.UP))
}

func (m *Model) AddEquality(left, right engine.LinearExpr) {
	m.addRow(left, right, glpk.BndsType(glpk.FX))
}

func (m *Model) Minimize(objective engine.LinearExpr) {
	for _, t := range objective.Terms() {
		m.obj[t.Var.ID] += float64(t.Coeff)
	}
	m.offset = objective.Offset()
	for col, c := range m.obj {
		m.lp.SetObjCoef(col, c)
	}
}

// Solve runs the search and releases the underlying GLPK problem afterwards;
// the model is built fresh per run and cannot be solved twice. GLPK cannot be
// interrupted mid-search, so the context is only honored before the solve
// starts.
func (m *Model) Solve(ctx context.Context) (engine.Solution, error) {
	if m.solved {
		return nil, fmt.Errorf("model already solved")
	}
	m.solved = true
	defer m.lp.Delete()

	if ctx.Err() != nil {
		return &solution{status: engine.StatusUnknown}, nil
	}

	smcp := glpk.NewSmcp()
	smcp.SetMsgLev(glpk.MsgLev(glpk.MSG_ERR))
	if err := m.lp.Simplex(smcp); err != nil {
		return nil, fmt.Errorf("glpk simplex: %w", err)
	}
	if m.lp.Status() == glpk.NOFEAS {
		return &solution{status: engine.StatusInfeasible}, nil
	}

	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	iocp.SetMsgLev(glpk.MsgLev(glpk.MSG_ERR))
	if err := m.lp.Intopt(iocp); err != nil {
		return nil, fmt.Errorf("glpk intopt: %w", err)
	}

	status := engine.StatusUnknown
	switch m.lp.MipStatus() {
	case glpk.OPT:
		status = engine.StatusOptimal
	case glpk.FEAS:
		status = engine.StatusFeasible
	case glpk.NOFEAS:
		status = engine.StatusInfeasible
	}

	sol := &solution{status: status}
	if status.Usable() {
		sol.values = make([]float64, m.cols+1)
		for col := 1; col <= m.cols; col++ {
			sol.values[col] = m.lp.MipColVal(col)
		}
		sol.objective = m.lp.MipObjVal() + float64(m.offset)
	}
	return sol, nil
}

// solution holds the extracted column values; the GLPK problem itself is
// already freed by the time the caller sees it.
type solution struct {
	status    engine.Status
	values    []float64
	objective float64
}

func (s *solution) Status() engine.Status { return s.status }

func (s *solution) BoolValue(v engine.Var) bool {
	return s.values[v.ID] > 0.5
}

func (s *solution) Value(v engine.Var) int64 {
	return int64(s.values[v.ID] + 0.5)
}

func (s *solution) Objective() float64 { return s.objective }
