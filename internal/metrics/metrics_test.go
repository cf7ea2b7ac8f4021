package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	_, divErr := rpn.Parse("1d0")
	r.Observe(SourceSingle, nil, time.Microsecond)
	r.Observe(SourceSingle, nil, time.Microsecond)
	r.Observe(SourceBatch, divErr, time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.evaluations.WithLabelValues(SourceSingle, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.evaluations.WithLabelValues(SourceBatch, "division_by_zero")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
}

func TestRecorder_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewRecorder(reg)
	require.NoError(t, err)

	second, err := NewRecorder(reg)
	require.NoError(t, err)

	second.Observe(SourceRPN, nil, time.Microsecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(first.evaluations.WithLabelValues(SourceRPN, OutcomeOK)))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Observe(SourceRPN, nil, time.Millisecond)
		r.ObserveBatch(3)
	})
}

func TestOutcome(t *testing.T) {
	_, err := rpn.Parse("1f")
	assert.Equal(t, "missing_left_paren", Outcome(err))
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, "unknown", Outcome(errors.New("boom")))
}
