package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PhaseRun names the phase spanning a whole system run.
const PhaseRun = "run"

// Profiler records phase durations.
type Profiler interface {
	Observe(system, phase string, d time.Duration)
}

// PromProfiler exports phase durations and run counts as Prometheus metrics.
type PromProfiler struct {
	durations *prometheus.HistogramVec
	runs      *prometheus.CounterVec
}

// NewPromProfiler registers the profiler's collectors on reg.
func NewPromProfiler(reg prometheus.Registerer) (*PromProfiler, error) {
	p := &PromProfiler{
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ecs",
			Subsystem: "system",
			Name:      "phase_duration_seconds",
			Help:      "Duration of system run phases.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"system", "phase"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecs",
			Subsystem: "system",
			Name:      "runs_total",
			Help:      "System runs, including runs that returned an error.",
		}, []string{"system"}),
	}

	for _, c := range []prometheus.Collector{p.durations, p.runs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Observe records d for the phase. PhaseRun also counts one run.
func (p *PromProfiler) Observe(system, phase string, d time.Duration) {
	p.durations.WithLabelValues(system, phase).Observe(d.Seconds())
	if phase == PhaseRun {
		p.runs.WithLabelValues(system).Inc()
	}
}
