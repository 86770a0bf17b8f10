// SPDX-License-Identifier: MIT

package metrics_test

import (
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdkmodels/metrics"
)

func TestNewRecorder_Independent(t *testing.T) {
	a := metrics.NewRecorder()
	b := metrics.NewRecorder()
	require.NotNil(t, a.EvaluationsTotal)
	require.NotNil(t, a.EvaluationDuration)
	assert.NotSame(t, a.Registry(), b.Registry())

	a.Observe("crossing", 1, time.Millisecond, nil)
	sum, err := b.Summary()
	require.NoError(t, err)
	assert.Empty(t, sum)
}

func TestObserve_Counters(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe("mmi1x2", 11, 2*time.Millisecond, nil)
	r.Observe("mmi1x2", 11, 3*time.Millisecond, nil)
	r.Observe("mmi1x2", 11, time.Millisecond, errors.New("boom"))

	ok, err := r.EvaluationsTotal.GetMetricWithLabelValues("mmi1x2", metrics.StatusOK)
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, ok.Write(&metric))
	assert.Equal(t, 2.0, metric.GetCounter().GetValue())

	points, err := r.SweepPointsTotal.GetMetricWithLabelValues("mmi1x2")
	require.NoError(t, err)
	require.NoError(t, points.Write(&metric))
	assert.Equal(t, 22.0, metric.GetCounter().GetValue())

	sum, err := r.Summary()
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"mmi1x2/ok": 2, "mmi1x2/error": 1}, sum)
}

func TestObserve_Histogram(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe("straight", 1, 5*time.Microsecond, nil)
	r.Observe("straight", 1, 50*time.Microsecond, nil)

	families, err := r.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() != "pdkmodels_evaluation_seconds" {
			continue
		}
		found = true
		require.Len(t, f.GetMetric(), 1)
		h := f.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(2), h.GetSampleCount())
		assert.InDelta(t, 55e-6, h.GetSampleSum(), 1e-12)
	}
	assert.True(t, found)
}

func TestTime_ReturnsError(t *testing.T) {
	r := metrics.NewRecorder()
	want := errors.New("eval failed")

	got := r.Time("bend", 3, func() error { return want })
	assert.Same(t, want, got)
	assert.NoError(t, r.Time("bend", 3, func() error { return nil }))

	sum, err := r.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1.0, sum["bend/error"])
	assert.Equal(t, 1.0, sum["bend/ok"])
}
