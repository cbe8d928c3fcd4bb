package schedule

import "github.com/zecke/rostergen/core/model"

// HistoryProvider answers whether a person held a role in an
// already-committed period. Periods are indexed from the start of the
// lookback window. Production implementations consult a persisted assignment
// log; tests use StaticHistory.
type HistoryProvider interface {
	WasPrimary(period int, p model.Person) bool
	WasSecondary(period int, p model.Person) bool
}

// StaticHistory is a fixed in-memory HistoryProvider keyed by period.
type StaticHistory struct {
	// Primary and Secondary map a period index to the name of the person who
	// held that role.
	Primary   map[int]string
	Secondary map[int]string
}

func (h StaticHistory) WasPrimary(period int, p model.Person) bool {
	return h.Primary[period] == p.Name
}

func (h StaticHistory) WasSecondary(period int, p model.Person) bool {
	return h.Secondary[period] == p.Name
}

// NoHistory is a HistoryProvider for runs without a lookback window.
type NoHistory struct{}

func (NoHistory) WasPrimary(int, model.Person) bool   { return false }
func (NoHistory) WasSecondary(int, model.Person) bool { return false }
