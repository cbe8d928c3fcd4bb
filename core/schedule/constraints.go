package schedule

import "github.com/zecke/rostergen/core/engine"

// addHardConstraints emits the non-negotiable scheduling rules over the
// lattice: role exclusivity and anti-consecutive duty per person, full
// coverage per period. Violating any of them makes the model infeasible.
func addHardConstraints(m engine.Model, l *lattice) {
	one := engine.Constant(1)

	for i := 0; i < l.horizon; i++ {
		period := l.lookback + i

		for pNo := range l.persons {
			pShift := l.primary[period][pNo]
			sShift := l.secondary[period][pNo]

			// A person must not be primary and secondary at the same time.
			m.AddLessOrEqual(engine.Sum(pShift, sShift), one)

			// No back-to-back duty in the same role. At the first future
			// period this compares against the committed history value.
			if period >= 1 {
				m.AddLessOrEqual(engine.Sum(pShift, l.primary[period-1][pNo]), one)
				m.AddLessOrEqual(engine.Sum(sShift, l.secondary[period-1][pNo]), one)
			}
		}

		// Every period is fully staffed: exactly one primary, one secondary.
		m.AddEquality(engine.Sum(l.primary[period]...), one)
		m.AddEquality(engine.Sum(l.secondary[period]...), one)
	}
}
