// Package metrics exposes Prometheus instrumentation for batch solves.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder records solve outcomes per backend. A nil *Recorder is valid and records nothing.
type Recorder struct {
	problemsSolved *prometheus.CounterVec
	solveDuration  *prometheus.HistogramVec
	solveErrors    *prometheus.CounterVec
}

// NewRecorder creates the knapsack metrics and registers them with registry.
func NewRecorder(registry prometheus.Registerer) *Recorder {
	r := &Recorder{
		problemsSolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_problems_solved_total",
				Help: "Total number of knapsack instances solved",
			},
			[]string{"backend"},
		),
		solveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_solve_duration_seconds",
				Help:    "Wall-clock duration of whole-batch solves",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"backend"},
		),
		solveErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_solve_errors_total",
				Help: "Total number of failed batch solves",
			},
			[]string{"backend", "reason"},
		),
	}

	registry.MustRegister(r.problemsSolved)
	registry.MustRegister(r.solveDuration)
	registry.MustRegister(r.solveErrors)
	return r
}

// ObserveSolve records a successful batch solve.
func (r *Recorder) ObserveSolve(backend string, problems int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.problemsSolved.WithLabelValues(backend).Add(float64(problems))
	r.solveDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

// ObserveError records a failed batch solve.
func (r *Recorder) ObserveError(backend, reason string) {
	if r == nil {
		return
	}
	r.solveErrors.WithLabelValues(backend, reason).Inc()
}
