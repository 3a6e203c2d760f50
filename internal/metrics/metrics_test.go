package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveSolve("cpu", 100, 20*time.Millisecond)
	r.ObserveSolve("cpu", 50, 10*time.Millisecond)
	r.ObserveError("gpu", "capacity_bound")

	assert.InDelta(t, 150, testutil.ToFloat64(r.problemsSolved.WithLabelValues("cpu")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.solveErrors.WithLabelValues("gpu", "capacity_bound")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(r.solveDuration))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveSolve("cpu", 1, time.Millisecond)
		r.ObserveError("cpu", "canceled")
	})
}
