package schedule

import (
	"fmt"

	"github.com/zecke/rostergen/core/engine"
	"github.com/zecke/rostergen/core/model"
)

// lattice is the full timeline of role variables: one boolean per
// (period, person, role). Periods below lookback are bound to the engine's
// fixed truth singletons from the history provider; the rest are free
// decision variables.
type lattice struct {
	persons  []model.Person
	lookback int
	horizon  int

	// primary[period][personIdx] and secondary[period][personIdx].
	primary   [][]engine.Var
	secondary [][]engine.Var
}

func (l *lattice) totalPeriods() int { return l.lookback + l.horizon }

// buildLattice creates the variable table on m. Variable names are
// deterministic and unique per (period, person, role) so a raw model dump
// stays readable; history variables carry a past_ prefix.
func buildLattice(m engine.Model, persons []model.Person, lookback, horizon int, hist HistoryProvider) *lattice {
	l := &lattice{
		persons:   persons,
		lookback:  lookback,
		horizon:   horizon,
		primary:   make([][]engine.Var, lookback+horizon),
		secondary: make([][]engine.Var, lookback+horizon),
	}

	// Seed committed periods as fixed truths.
	for i := 0; i < lookback; i++ {
		l.primary[i] = make([]engine.Var, len(persons))
		l.secondary[i] = make([]engine.Var, len(persons))
		for pNo, p := range persons {
			pShift := m.FalseVar()
			if hist.WasPrimary(i, p) {
				pShift = m.TrueVar()
			}
			sShift := m.FalseVar()
			if hist.WasSecondary(i, p) {
				sShift = m.TrueVar()
			}
			pShift.Name = fmt.Sprintf("past_p_shift_%d_%s", i, p.Name)
			sShift.Name = fmt.Sprintf("past_s_shift_%d_%s", i, p.Name)
			l.primary[i][pNo] = pShift
			l.secondary[i][pNo] = sShift
		}
	}

	// Free variables for the periods to be decided.
	for i := 0; i < horizon; i++ {
		period := lookback + i
		l.primary[period] = make([]engine.Var, len(persons))
		l.secondary[period] = make([]engine.Var, len(persons))
		for pNo, p := range persons {
			l.primary[period][pNo] = m.NewBoolVar(fmt.Sprintf("p_shift_%d_%s", period, p.Name))
			l.secondary[period][pNo] = m.NewBoolVar(fmt.Sprintf("s_shift_%d_%s", period, p.Name))
		}
	}
	return l
}
