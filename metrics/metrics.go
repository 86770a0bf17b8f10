// SPDX-License-Identifier: MIT
// Package: pdkmodels/metrics
//
// metrics.go - Recorder and its evaluation series.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder holds the evaluation series on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	SweepPointsTotal   *prometheus.CounterVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.EvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdkmodels_evaluations_total",
			Help: "Total number of model evaluations",
		},
		[]string{"model", "status"},
	)
	r.EvaluationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pdkmodels_evaluation_seconds",
			Help:    "Duration of model evaluations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10), // 1µs .. ~0.26s
		},
		[]string{"model"},
	)
	r.SweepPointsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdkmodels_sweep_points_total",
			Help: "Total number of wavelength samples evaluated",
		},
		[]string{"model"},
	)

	return r
}

// Observe records one evaluation of model over points samples.
// Failed evaluations count towards the total but not the samples.
func (r *Recorder) Observe(model string, points int, d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.EvaluationsTotal.WithLabelValues(model, status).Inc()
	r.EvaluationDuration.WithLabelValues(model).Observe(d.Seconds())
	if err == nil {
		r.SweepPointsTotal.WithLabelValues(model).Add(float64(points))
	}
}

// Time runs fn and records it; fn's error is returned unchanged.
func (r *Recorder) Time(model string, points int, fn func() error) error {
	start := time.Now()
	err := fn()
	r.Observe(model, points, time.Since(start), err)
	return err
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Gather returns the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// Summary flattens the evaluation counter into "model/status" → count.
func (r *Recorder) Summary() (map[string]float64, error) {
	families, err := r.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, f := range families {
		if f.GetName() != "pdkmodels_evaluations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			var model, status string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "model":
					model = l.GetValue()
				case "status":
					status = l.GetValue()
				}
			}
			out[model+"/"+status] += m.GetCounter().GetValue()
		}
	}
	return out, nil
}
