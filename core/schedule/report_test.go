package schedule

import (
	"context"
	"strings"
	"testing"

	"github.com/zecke/rostergen/core/engine"
	"github.com/zecke/rostergen/core/model"
)

func solvedRecorder(t *testing.T, r *engine.Recorder) engine.Solution {
	t.Helper()
	sol, err := r.Solve(context.Background())
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	return sol
}

func TestChosenPerson(t *testing.T) {
	r := engine.NewRecorder()
	persons := twoPeople()
	vars := []engine.Var{r.NewBoolVar("a"), r.NewBoolVar("b")}

	r.SetValue(vars[1], 1)
	sol := solvedRecorder(t, r)

	name, err := chosenPerson(sol, vars, persons)
	if err != nil {
		t.Fatalf("chosenPerson: %v", err)
	}
	if name != "be" {
		t.Fatalf("chosenPerson = %q, want be", name)
	}
}

func TestChosenPersonRejectsZeroOrTwo(t *testing.T) {
	r := engine.NewRecorder()
	persons := twoPeople()
	vars := []engine.Var{r.NewBoolVar("a"), r.NewBoolVar("b")}

	sol := solvedRecorder(t, r)
	if _, err := chosenPerson(sol, vars, persons); err == nil {
		t.Fatalf("expected error with no variable set")
	}

	r.SetValue(vars[0], 1)
	r.SetValue(vars[1], 1)
	if _, err := chosenPerson(sol, vars, persons); err == nil {
		t.Fatalf("expected error with two variables set")
	}
}

func TestExtractAssignmentsOrdered(t *testing.T) {
	r := engine.NewRecorder()
	hist := StaticHistory{
		Primary:   map[int]string{0: "me"},
		Secondary: map[int]string{0: "be"},
	}
	l := buildLattice(r, twoPeople(), 1, 2, hist)

	r.SetValue(mustVar(t, r, "p_shift_1_be"), 1)
	r.SetValue(mustVar(t, r, "s_shift_1_me"), 1)
	r.SetValue(mustVar(t, r, "p_shift_2_me"), 1)
	r.SetValue(mustVar(t, r, "s_shift_2_be"), 1)
	sol := solvedRecorder(t, r)

	assignments, err := extractAssignments(sol, l)
	if err != nil {
		t.Fatalf("extractAssignments: %v", err)
	}
	want := []model.Assignment{
		{Period: 1, Role: model.RolePrimary, Person: "be"},
		{Period: 1, Role: model.RoleSecondary, Person: "me"},
		{Period: 2, Role: model.RolePrimary, Person: "me"},
		{Period: 2, Role: model.RoleSecondary, Person: "be"},
	}
	if len(assignments) != len(want) {
		t.Fatalf("got %d assignments want %d", len(assignments), len(want))
	}
	for i := range want {
		if assignments[i] != want[i] {
			t.Fatalf("assignment %d = %+v, want %+v", i, assignments[i], want[i])
		}
	}
}

func TestExtractAssignmentsReportsBrokenCoverage(t *testing.T) {
	r := engine.NewRecorder()
	l := buildLattice(r, twoPeople(), 0, 1, NoHistory{})

	// Leave period 0 empty.
	sol := solvedRecorder(t, r)

	_, err := extractAssignments(sol, l)
	if err == nil {
		t.Fatalf("expected error on uncovered shift")
	}
	if !strings.Contains(err.Error(), "primary shift 0") {
		t.Fatalf("error should name the broken shift: %v", err)
	}
}

func TestExtractLoadsIncludesHistory(t *testing.T) {
	r := engine.NewRecorder()
	hist := StaticHistory{
		Primary:   map[int]string{0: "me"},
		Secondary: map[int]string{0: "be"},
	}
	l := buildLattice(r, twoPeople(), 1, 2, hist)

	r.SetValue(mustVar(t, r, "p_shift_1_be"), 1)
	r.SetValue(mustVar(t, r, "s_shift_1_me"), 1)
	r.SetValue(mustVar(t, r, "p_shift_2_me"), 1)
	r.SetValue(mustVar(t, r, "s_shift_2_be"), 1)
	sol := solvedRecorder(t, r)

	loads, mean, stddev := extractLoads(sol, l)
	if loads[0] != (model.Load{Person: "me", Primary: 2, Secondary: 1}) {
		t.Fatalf("load for me = %+v", loads[0])
	}
	if loads[1] != (model.Load{Person: "be", Primary: 1, Secondary: 2}) {
		t.Fatalf("load for be = %+v", loads[1])
	}
	if mean != 3 || stddev != 0 {
		t.Fatalf("spread = (%v, %v), want (3, 0)", mean, stddev)
	}
}
