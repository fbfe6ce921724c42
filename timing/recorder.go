package timing

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "reachlab"

// DurationBuckets returns the histogram buckets: 1µs to roughly 4.5 minutes
// in ×4 steps. Each call returns a fresh slice.
func DurationBuckets() []float64 {
	return prometheus.ExponentialBuckets(1e-6, 4, 14)
}

// Recorder mirrors timing samples into prometheus collectors.
//
//   - reachlab_engine_duration_seconds{engine,family}: histogram of Sample.Elapsed
//   - reachlab_engine_samples_total{engine,family}: samples observed
//   - reachlab_validation_mismatches_total{family}: engine disagreements
type Recorder struct {
	duration   *prometheus.HistogramVec
	samples    *prometheus.CounterVec
	mismatches *prometheus.CounterVec
}

// NewRecorder creates and registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	r := &Recorder{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "engine_duration_seconds",
				Help:      "Wall time of one reachability engine call, adjacency construction included.",
				Buckets:   DurationBuckets(),
			},
			[]string{"engine", "family"},
		),
		samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "engine_samples_total",
				Help:      "Timing samples recorded per engine and family.",
			},
			[]string{"engine", "family"},
		),
		mismatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "validation_mismatches_total",
				Help:      "Graphs on which the reachability engines disagreed.",
			},
			[]string{"family"},
		),
	}
	for _, c := range []prometheus.Collector{r.duration, r.samples, r.mismatches} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("timing: register collector: %w", err)
		}
	}

	return r, nil
}

// Observe records one sample.
func (r *Recorder) Observe(s Sample) {
	r.duration.WithLabelValues(s.Engine, s.Family).Observe(s.Seconds())
	r.samples.WithLabelValues(s.Engine, s.Family).Inc()
}

// Mismatch counts one disagreement for family.
func (r *Recorder) Mismatch(family string) {
	r.mismatches.WithLabelValues(family).Inc()
}
