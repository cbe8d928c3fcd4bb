package schedule

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/zecke/rostergen/core/engine"
	"github.com/zecke/rostergen/core/logger"
	"github.com/zecke/rostergen/core/metrics"
	"github.com/zecke/rostergen/core/model"
)

// Scheduler turns scheduling rules into a constraint model, hands it to the
// solving engine and extracts the accepted roster. A fresh model is built per
// run and discarded after the solve.
type Scheduler struct {
	cfg      Config
	rotation model.Rotation
	hist     HistoryProvider
	newModel func() engine.Model
	rng      *rand.Rand
	log      logger.Logger
	sink     metrics.Sink
}

// New validates the configuration and creates a Scheduler. The random source
// must be supplied explicitly so a run is reproducible given a seed; a nil
// history provider means no committed periods exist yet.
func New(cfg Config, rotation model.Rotation, hist HistoryProvider, newModel func() engine.Model, rng *rand.Rand, log logger.Logger, sink metrics.Sink) (*Scheduler, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(rotation.Persons) == 0 {
		return nil, fmt.Errorf("%w: rotation is empty", ErrInvalidConfig)
	}
	if cfg.Lookback > 0 && hist == nil {
		return nil, fmt.Errorf("%w: lookback %d requires a history provider", ErrInvalidConfig, cfg.Lookback)
	}
	if newModel == nil {
		return nil, errors.New("engine model factory is required")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if hist == nil {
		hist = NoHistory{}
	}
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Scheduler{
		cfg:      cfg,
		rotation: rotation,
		hist:     hist,
		newModel: newModel,
		rng:      rng,
		log:      log,
		sink:     sink,
	}, nil
}

// Generate runs one scheduling pass: filter the rotation, build the lattice
// and constraints, solve, and report the chosen assignments. Roster and
// configuration problems are rejected before the engine is ever invoked;
// engine statuses map one to one onto the typed errors of this package.
func (s *Scheduler) Generate(ctx context.Context) (*model.Schedule, error) {
	available := FilterAvailable(s.rotation.Persons)
	if len(available) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 available people, have %d", ErrUnsatisfiableRoster, len(available))
	}
	shuffleRoster(available, s.rng)

	runID := uuid.NewString()
	m := s.newModel()
	l := buildLattice(m, available, s.cfg.Lookback, s.cfg.Horizon, s.hist)
	addHardConstraints(m, l)

	var objective engine.LinearExpr
	minTarget, maxTarget := shapeFairness(m, &objective, l, s.cfg.UpperSlackFactor)
	annotateCosts(&objective, l, s.cfg)
	applyTimeOff(m, l, s.cfg.TimeOff)
	m.Minimize(objective)

	s.log.Debugw("model assembled", map[string]any{
		"run_id":     runID,
		"people":     len(available),
		"horizon":    s.cfg.Horizon,
		"lookback":   s.cfg.Lookback,
		"min_target": minTarget,
		"max_target": maxTarget,
	})

	start := time.Now()
	sol, err := m.Solve(ctx)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	status := sol.Status()
	objectiveValue := 0.0
	if status.Usable() {
		objectiveValue = sol.Objective()
	}
	s.recordSolve(runID, status, objectiveValue, elapsed, len(available))

	switch status {
	case engine.StatusInfeasible:
		return nil, fmt.Errorf("%w: %d people cannot cover %d periods under the hard constraints (run %s)",
			ErrInfeasible, len(available), s.cfg.Horizon, runID)
	case engine.StatusUnknown:
		return nil, fmt.Errorf("%w: engine stopped after %s without an answer (run %s)",
			ErrInconclusive, elapsed, runID)
	}

	assignments, err := extractAssignments(sol, l)
	if err != nil {
		return nil, fmt.Errorf("extract roster: %w", err)
	}
	loads, mean, stddev := extractLoads(sol, l)

	sched := &model.Schedule{
		RunID:         runID,
		Status:        status.String(),
		Objective:     objectiveValue,
		SolveDuration: elapsed,
		Assignments:   assignments,
		Loads:         loads,
		LoadMean:      mean,
		LoadStdDev:    stddev,
		GeneratedAt:   time.Now(),
	}
	s.recordAssignments(sched, available)
	s.log.Infof("roster accepted: run %s status %s objective %.0f in %s", runID, sched.Status, sched.Objective, elapsed)
	return sched, nil
}

func (s *Scheduler) recordSolve(runID string, status engine.Status, objective float64, elapsed time.Duration, people int) {
	ev := metrics.SolveEvent{
		RunID:     runID,
		Status:    status.String(),
		Objective: objective,
		Duration:  elapsed,
		Horizon:   s.cfg.Horizon,
		Lookback:  s.cfg.Lookback,
		People:    people,
		Time:      time.Now(),
	}
	if err := s.sink.RecordSolve(ev); err != nil {
		s.log.Warnf("record solve: %v", err)
	}
}

func (s *Scheduler) recordAssignments(sched *model.Schedule, persons []model.Person) {
	rec, ok := s.sink.(metrics.AssignmentRecorder)
	if !ok {
		return
	}
	locations := make(map[string]string, len(persons))
	for _, p := range persons {
		locations[p.Name] = p.Location
	}
	evs := make([]metrics.AssignmentEvent, len(sched.Assignments))
	for i, a := range sched.Assignments {
		evs[i] = metrics.AssignmentEvent{
			RunID:    sched.RunID,
			Period:   a.Period,
			Role:     a.Role.String(),
			Person:   a.Person,
			Location: locations[a.Person],
			Time:     sched.GeneratedAt,
		}
	}
	if err := rec.RecordAssignments(evs); err != nil {
		s.log.Warnf("record assignments: %v", err)
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
