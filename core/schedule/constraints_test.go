package schedule

import (
	"testing"

	"github.com/zecke/rostergen/core/engine"
)

func TestHardConstraintCounts(t *testing.T) {
	r := engine.NewRecorder()
	hist := StaticHistory{
		Primary:   map[int]string{0: "me"},
		Secondary: map[int]string{0: "be"},
	}
	l := buildLattice(r, twoPeople(), 1, 2, hist)

	addHardConstraints(r, l)

	// Per future period and person: 1 exclusivity + 2 anti-consecutive
	// (every future period here has a predecessor). 2 periods x 2 people x 3.
	if got := r.CountKind(engine.LessOrEqual); got != 12 {
		t.Fatalf("expected 12 inequalities got %d", got)
	}
	// Coverage: one equality per role per future period.
	if got := r.CountKind(engine.Equality); got != 4 {
		t.Fatalf("expected 4 equalities got %d", got)
	}
}

func TestAntiConsecutiveSpansHistoryBoundary(t *testing.T) {
	r := engine.NewRecorder()
	hist := StaticHistory{Primary: map[int]string{0: "me"}}
	l := buildLattice(r, twoPeople(), 1, 1, hist)

	addHardConstraints(r, l)

	// The single future period must be constrained against the committed
	// period 0, i.e. some inequality references the fixed true singleton.
	found := false
	for _, c := range r.Constraints {
		if c.Kind != engine.LessOrEqual {
			continue
		}
		for _, term := range c.Left.Terms() {
			if term.Var.ID == r.TrueVar().ID {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("no anti-consecutive constraint reaches into the history window")
	}
}

func TestNoAntiConsecutiveWithoutPredecessor(t *testing.T) {
	r := engine.NewRecorder()
	l := buildLattice(r, twoPeople(), 0, 1, NoHistory{})

	addHardConstraints(r, l)

	// Without lookback the first period has no predecessor: only the two
	// exclusivity constraints remain.
	if got := r.CountKind(engine.LessOrEqual); got != 2 {
		t.Fatalf("expected 2 inequalities got %d", got)
	}
}
