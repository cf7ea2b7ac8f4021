package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

const (
	SourceSingle = "single"
	SourceBatch  = "batch"
	SourceRPN    = "rpn"

	OutcomeOK = "ok"
)

// Recorder counts evaluations by source and outcome. The outcome label is
// "ok" or the wire name of the engine error kind.
type Recorder struct {
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	batchSize   prometheus.Histogram
}

func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	evaluations, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encalc_evaluations_total",
			Help: "Total number of evaluated expressions",
		},
		[]string{"source", "outcome"},
	))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "encalc_evaluation_duration_seconds",
			Help:    "Time spent evaluating a single expression",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
		},
		[]string{"source"},
	))
	if err != nil {
		return nil, err
	}

	batchSize, err := register(reg, prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "encalc_batch_size",
			Help:    "Number of expressions per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		},
	))
	if err != nil {
		return nil, err
	}

	return &Recorder{evaluations: evaluations, duration: duration, batchSize: batchSize}, nil
}

// register returns the collector already registered under the same
// descriptor, if any, so recorders built twice share their series.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// MustNewRecorder is NewRecorder for the default registry.
func MustNewRecorder() *Recorder {
	r, err := NewRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Recorder) Observe(source string, err error, d time.Duration) {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(source, Outcome(err)).Inc()
	r.duration.WithLabelValues(source).Observe(d.Seconds())
}

func (r *Recorder) ObserveBatch(size int) {
	if r == nil {
		return
	}
	r.batchSize.Observe(float64(size))
}

func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return rpn.KindOf(err).String()
}
