package metrics

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for machine runs.
// Collectors live on a private registry so tests and multiple instances do not collide.
type Metrics struct {
	Registry *prometheus.Registry

	steps   *prometheus.CounterVec
	halts   *prometheus.CounterVec
	running prometheus.Gauge
	runLen  prometheus.Histogram
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_steps_total",
				Help: "Total number of rule applications, by machine",
			},
			[]string{"machine"},
		),
		halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_halts_total",
				Help: "Total number of halted runs, by reason",
			},
			[]string{"reason"},
		),
		running: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "turing_machines_running",
				Help: "Number of machines currently executing",
			},
		),
		runLen: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "turing_run_steps",
				Help:    "Steps executed per run",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
	}
	m.Registry.MustRegister(m.steps, m.halts, m.running, m.runLen)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
// Step counts are added once per run on halt, keeping the step loop free of
// label lookups.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStart: func(context.Context, domain.Machine, int) {
			m.running.Inc()
		},
		OnHalt: func(_ context.Context, ev *domain.HaltEvent) {
			m.running.Dec()
			m.halts.WithLabelValues(string(ev.Result.Reason)).Inc()
			m.steps.WithLabelValues(ev.Result.Name).Add(float64(ev.Result.Steps))
			m.runLen.Observe(float64(ev.Result.Steps))
		},
	}
}
