package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/zecke/rostergen/config"
	"github.com/zecke/rostergen/core/engine"
	"github.com/zecke/rostergen/core/events"
	coremetrics "github.com/zecke/rostergen/core/metrics"
	"github.com/zecke/rostergen/core/model"
	"github.com/zecke/rostergen/core/schedule"
	"github.com/zecke/rostergen/infra/engine/glpkengine"
	"github.com/zecke/rostergen/infra/history"
	"github.com/zecke/rostergen/infra/logger"
	"github.com/zecke/rostergen/infra/metrics"
	"github.com/zecke/rostergen/infra/notify"
	"github.com/zecke/rostergen/internal/eventbus"
)

// Service wires the scheduler to its collaborators: history provider,
// solving engine, metrics sinks and the roster notifier.
type Service struct {
	Scheduler *schedule.Scheduler

	cfg           *config.Config
	bus           *eventbus.Bus[events.ScheduleComputed]
	log           logger.Logger
	notifier      *notify.MQTTNotifier
	histLog       *history.SQLiteLog
	histClose     func() error
	collectorDone <-chan struct{}
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	hist, histClose, err := history.New(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("history provider: %w", err)
	}

	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logg.Debugf("roster shuffle seed: %d", seed)

	var newModel func() engine.Model
	switch cfg.Engine.Type {
	case "glpk":
		newModel = glpkengine.NewModel
	default:
		return nil, fmt.Errorf("unknown engine type %s", cfg.Engine.Type)
	}

	sched, err := schedule.New(cfg.Schedule, cfg.Rotation, hist, newModel, rng, logger.New("scheduler"), sink)
	if err != nil {
		if histClose != nil {
			histClose()
		}
		return nil, err
	}

	svc := &Service{
		Scheduler: sched,
		cfg:       cfg,
		bus:       eventbus.New[events.ScheduleComputed](),
		log:       logg,
		histClose: histClose,
	}
	if l, ok := hist.(*history.SQLiteLog); ok {
		svc.histLog = l
	}
	if cfg.Notify.Broker != "" {
		notifier, err := notify.NewMQTTNotifier(cfg.Notify)
		if err != nil {
			svc.Close()
			return nil, fmt.Errorf("mqtt notifier: %w", err)
		}
		svc.notifier = notifier
	}
	return svc, nil
}

// Run performs one scheduling pass: solve, persist the accepted roster to the
// assignment log, and fan it out to the notifier. The returned schedule is
// nil exactly when the error is non-nil.
func (s *Service) Run(ctx context.Context) (*model.Schedule, error) {
	if s.cfg.PromAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.PromAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	s.collectorDone = notify.StartScheduleCollector(ctx, s.bus, s.notifier, s.log)

	sched, err := s.Scheduler.Generate(ctx)
	if err != nil {
		return nil, err
	}

	if s.histLog != nil {
		if err := s.histLog.RecordSchedule(sched, s.cfg.Rotation); err != nil {
			s.log.Errorf("record schedule: %v", err)
		}
	}
	s.bus.Publish(events.ScheduleComputed{Schedule: sched})
	return sched, nil
}

// Close flushes pending notifications and releases resources held by the
// service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.collectorDone != nil {
		select {
		case <-s.collectorDone:
		case <-time.After(5 * time.Second):
			s.log.Warnf("notifier flush timed out")
		}
	}
	if s.notifier != nil {
		s.notifier.Close()
	}
	if s.histClose != nil {
		return s.histClose()
	}
	return nil
}
