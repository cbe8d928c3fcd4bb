package schedule

import (
	"fmt"

	"github.com/zecke/rostergen/core/engine"
)

// softLowerBound softly enforces target <= value. A bounded slack pair
// (surplus, deficit) is folded into the value side, the adjusted inequality
// is registered as a hard constraint, and both slacks are charged to the
// objective. Feasibility is never compromised: the solver can always pay the
// penalty instead of violating a hard rule elsewhere.
func softLowerBound(m engine.Model, objective *engine.LinearExpr, value engine.LinearExpr, target, slackMax int64, name string) {
	dom := engine.Domain{Min: 0, Max: slackMax}
	surplus := m.NewIntVar(dom, name+"_surplus")
	deficit := m.NewIntVar(dom, name+"_deficit")

	adjusted := value
	adjusted.AddVar(surplus)
	adjusted.AddTerm(deficit, -1)
	m.AddLessOrEqual(engine.Constant(target), adjusted)

	objective.AddVar(surplus)
	objective.AddVar(deficit)
}

// softUpperBound softly enforces value <= target, the mirror of
// softLowerBound. Only the deficit slack is ever useful here (the surplus
// would tighten the bound further, so minimization drives it to zero); it
// absorbs any excess above the target at a cost.
func softUpperBound(m engine.Model, objective *engine.LinearExpr, value engine.LinearExpr, target, slackMax int64, name string) {
	dom := engine.Domain{Min: 0, Max: slackMax}
	surplus := m.NewIntVar(dom, name+"_surplus")
	deficit := m.NewIntVar(dom, name+"_deficit")

	adjusted := value
	adjusted.AddVar(surplus)
	adjusted.AddTerm(deficit, -1)
	m.AddLessOrEqual(adjusted, engine.Constant(target))

	objective.AddVar(surplus)
	objective.AddVar(deficit)
}

// fairnessTargets computes the per-person share band. Everyone should hold a
// role between minTarget and maxTarget times across the full window,
// history included.
func fairnessTargets(totalPeriods, people int) (minTarget, maxTarget int64) {
	minTarget = int64(totalPeriods / people)
	maxTarget = minTarget
	if totalPeriods%people != 0 {
		maxTarget = minTarget + 1
	}
	return minTarget, maxTarget
}

// shapeFairness keeps long-run duty balanced. For every person and role it
// sums the role variables over all periods and applies the soft band
// [minTarget, maxTarget]. The bounds stay soft because time off can force
// some people to carry more shifts than others.
func shapeFairness(m engine.Model, objective *engine.LinearExpr, l *lattice, upperSlackFactor int64) (minTarget, maxTarget int64) {
	minTarget, maxTarget = fairnessTargets(l.totalPeriods(), len(l.persons))

	for pNo, p := range l.persons {
		var pTotal, sTotal engine.LinearExpr
		for period := 0; period < l.totalPeriods(); period++ {
			pTotal.AddVar(l.primary[period][pNo])
			sTotal.AddVar(l.secondary[period][pNo])
		}

		lo := fmt.Sprintf("fair_lo_p_%s", p.Name)
		hi := fmt.Sprintf("fair_hi_p_%s", p.Name)
		softLowerBound(m, objective, pTotal, minTarget, minTarget, lo)
		softUpperBound(m, objective, pTotal, maxTarget, upperSlackFactor*maxTarget, hi)

		lo = fmt.Sprintf("fair_lo_s_%s", p.Name)
		hi = fmt.Sprintf("fair_hi_s_%s", p.Name)
		softLowerBound(m, objective, sTotal, minTarget, minTarget, lo)
		softUpperBound(m, objective, sTotal, maxTarget, upperSlackFactor*maxTarget, hi)
	}
	return minTarget, maxTarget
}
