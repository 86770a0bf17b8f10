// SPDX-License-Identifier: MIT

// Package metrics records model evaluations as Prometheus series.
//
// A Recorder owns a private prometheus.Registry, so several recorders (one
// per CLI run, one per test) never collide on registration:
//
//	pdkmodels_evaluations_total{model,status}   counter, status ∈ {ok, error}
//	pdkmodels_evaluation_seconds{model}         histogram
//	pdkmodels_sweep_points_total{model}         counter of evaluated samples
//
// Gather returns the current families for logging or export.
package metrics
