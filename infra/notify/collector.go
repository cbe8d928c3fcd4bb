package notify

import (
	"context"

	"github.com/zecke/rostergen/core/events"
	"github.com/zecke/rostergen/infra/logger"
	"github.com/zecke/rostergen/internal/eventbus"
)

// StartScheduleCollector subscribes to the event bus and forwards every
// accepted roster to the notifier. It stops when the context is canceled or
// the bus is closed; the returned channel is closed once the collector has
// drained its subscription, so callers can flush before shutting down.
func StartScheduleCollector(ctx context.Context, bus *eventbus.Bus[events.ScheduleComputed], n *MQTTNotifier, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || n == nil {
		close(done)
		return done
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := n.PublishSchedule(ev.Schedule); err != nil {
					log.Errorf("publish roster: %v", err)
				}
			}
		}
	}()
	return done
}
