package metrics

import (
	coremetrics "github.com/zecke/rostergen/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records scheduling runs in Prometheus metrics.
type PromSink struct {
	solves      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	objective   prometheus.Gauge
	assignments *prometheus.CounterVec
}

// NewPromSink registers roster metrics on the default Prometheus registerer.
// The Prometheus server is started separately, see StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_solves_total",
		Help: "Total number of scheduling runs by solver status",
	}, []string{"status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roster_solve_duration_seconds",
		Help:    "Wall-clock time spent inside the solving engine",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})
	objective := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_objective",
		Help: "Objective value of the last accepted roster",
	})
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_assignments_total",
		Help: "Accepted on-call assignments by person, role and location",
	}, []string{"person", "role", "location"})

	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(objective); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			objective = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{solves: solves, duration: duration, objective: objective, assignments: assignments}, nil
}

// RecordSolve counts the run and observes its duration.
func (s *PromSink) RecordSolve(ev coremetrics.SolveEvent) error {
	s.solves.WithLabelValues(ev.Status).Inc()
	s.duration.WithLabelValues(ev.Status).Observe(ev.Duration.Seconds())
	if ev.Status == "optimal" || ev.Status == "feasible" {
		s.objective.Set(ev.Objective)
	}
	return nil
}

// RecordAssignments counts the accepted assignments.
func (s *PromSink) RecordAssignments(evs []coremetrics.AssignmentEvent) error {
	for _, ev := range evs {
		s.assignments.WithLabelValues(ev.Person, ev.Role, ev.Location).Inc()
	}
	return nil
}
