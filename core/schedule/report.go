package schedule

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/zecke/rostergen/core/engine"
	"github.com/zecke/rostergen/core/model"
)

// chosenPerson returns the single person whose variable is set in the
// solution. The coverage constraints guarantee exactly one; anything else
// means the engine returned values for a different model.
func chosenPerson(sol engine.Solution, vars []engine.Var, persons []model.Person) (string, error) {
	name := ""
	for pNo, v := range vars {
		if !sol.BoolValue(v) {
			continue
		}
		if name != "" {
			return "", fmt.Errorf("both %s and %s hold the same shift", name, persons[pNo].Name)
		}
		name = persons[pNo].Name
	}
	if name == "" {
		return "", fmt.Errorf("no person holds the shift")
	}
	return name, nil
}

// extractAssignments reads the solved roster for every future period in
// increasing order. It must only be called on a usable solution.
func extractAssignments(sol engine.Solution, l *lattice) ([]model.Assignment, error) {
	assignments := make([]model.Assignment, 0, 2*l.horizon)
	for i := 0; i < l.horizon; i++ {
		period := l.lookback + i

		name, err := chosenPerson(sol, l.primary[period], l.persons)
		if err != nil {
			return nil, fmt.Errorf("primary shift %d: %w", period, err)
		}
		assignments = append(assignments, model.Assignment{Period: period, Role: model.RolePrimary, Person: name})

		name, err = chosenPerson(sol, l.secondary[period], l.persons)
		if err != nil {
			return nil, fmt.Errorf("secondary shift %d: %w", period, err)
		}
		assignments = append(assignments, model.Assignment{Period: period, Role: model.RoleSecondary, Person: name})
	}
	return assignments, nil
}

// extractLoads counts per-person role totals over the full window, history
// included, and summarizes how evenly duty is spread.
func extractLoads(sol engine.Solution, l *lattice) ([]model.Load, float64, float64) {
	loads := make([]model.Load, len(l.persons))
	totals := make([]float64, len(l.persons))
	for pNo, p := range l.persons {
		load := model.Load{Person: p.Name}
		for period := 0; period < l.totalPeriods(); period++ {
			if sol.BoolValue(l.primary[period][pNo]) {
				load.Primary++
			}
			if sol.BoolValue(l.secondary[period][pNo]) {
				load.Secondary++
			}
		}
		loads[pNo] = load
		totals[pNo] = float64(load.Primary + load.Secondary)
	}

	mean, stddev := stat.MeanStdDev(totals, nil)
	if len(totals) < 2 {
		stddev = 0
	}
	return loads, mean, stddev
}
