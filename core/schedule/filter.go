package schedule

import (
	"math/rand"

	"github.com/zecke/rostergen/core/model"
)

// FilterAvailable returns the people that can take at least one shift,
// dropping anyone marked unavailable for the whole window. Filtering an
// already-filtered roster yields the same set.
func FilterAvailable(persons []model.Person) []model.Person {
	available := make([]model.Person, 0, len(persons))
	for _, p := range persons {
		if p.Unavailable {
			continue
		}
		available = append(available, p)
	}
	return available
}

// shuffleRoster permutes the roster in place so the engine's internal
// heuristics cannot latch onto a fixed person ordering. The random source is
// injected; fixing its seed makes a run reproducible.
func shuffleRoster(persons []model.Person, rng *rand.Rand) {
	rng.Shuffle(len(persons), func(i, j int) {
		persons[i], persons[j] = persons[j], persons[i]
	})
}
