package schedule

import (
	"github.com/zecke/rostergen/core/engine"
	"github.com/zecke/rostergen/core/model"
)

// assignmentWeight returns the objective cost of giving a shift to p at the
// given future offset. A matching holiday window makes the assignment more
// expensive without forbidding it; coverage may still force it.
func (c Config) assignmentWeight(p model.Person, offset int) int64 {
	for _, h := range c.Holidays {
		if h.Location == p.Location && offset >= h.From && offset < h.To {
			return c.HolidayWeight
		}
	}
	return c.BaseWeight
}

// annotateCosts charges every future assignment to the objective so the
// solver prefers cheap rosters among the feasible ones.
func annotateCosts(objective *engine.LinearExpr, l *lattice, cfg Config) {
	for i := 0; i < l.horizon; i++ {
		period := l.lookback + i
		for pNo, p := range l.persons {
			weight := cfg.assignmentWeight(p, i)
			objective.AddTerm(l.primary[period][pNo], weight)
			objective.AddTerm(l.secondary[period][pNo], weight)
		}
	}
}

// applyTimeOff pins both role variables to false for every excluded future
// period. These are hard exclusions layered on top of the roster-level
// filter; entries naming an unknown or filtered-out person are skipped.
func applyTimeOff(m engine.Model, l *lattice, entries []TimeOff) {
	for _, t := range entries {
		pNo := -1
		for i, p := range l.persons {
			if p.Name == t.Person {
				pNo = i
				break
			}
		}
		if pNo < 0 {
			continue
		}
		off := engine.Sum(m.FalseVar())
		for offset := t.From; offset < t.To && offset < l.horizon; offset++ {
			period := l.lookback + offset
			m.AddEquality(engine.Sum(l.primary[period][pNo]), off)
			m.AddEquality(engine.Sum(l.secondary[period][pNo]), off)
		}
	}
}
