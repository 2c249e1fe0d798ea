// Package metrics records per-task-type execution outcomes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// Sink receives exactly one outcome per dispatched task: a duration on
// success (including the handled stale-reference case) or a failure count
// on error. Never both, never neither.
type Sink interface {
	RecordDuration(task structs.TaskType, d time.Duration)
	IncrementFailure(task structs.TaskType)
}

// Prometheus is a Sink backed by prometheus collectors.
type Prometheus struct {
	duration *prometheus.HistogramVec
	failed   *prometheus.CounterVec
}

// NewPrometheus registers the task collectors on the given registerer.
// Pass prometheus.DefaultRegisterer outside of tests.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stacks_task_duration_seconds",
			Help:    "Execution duration of completed tasks",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stacks_task_failed_total",
			Help: "Number of tasks that errored",
		}, []string{"type"}),
	}
}

func (p *Prometheus) RecordDuration(task structs.TaskType, d time.Duration) {
	p.duration.WithLabelValues(string(task)).Observe(d.Seconds())
}

func (p *Prometheus) IncrementFailure(task structs.TaskType) {
	p.failed.WithLabelValues(string(task)).Inc()
}
