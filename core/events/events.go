// Package events defines the scheduling events emitted on the event bus.
package events

import "github.com/zecke/rostergen/core/model"

// ScheduleComputed is published when a roster has been accepted. Consumers
// must treat the schedule as read-only.
type ScheduleComputed struct {
	Schedule *model.Schedule
}
