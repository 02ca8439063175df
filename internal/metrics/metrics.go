// SPDX-License-Identifier: MIT

// Package metrics records calc job outcomes as Prometheus metrics on a
// private registry. The numcalc binary is short-lived, so instead of serving
// /metrics it dumps the registry in text exposition format on exit
// (node_exporter textfile collector layout).
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/numcalc/calc"
)

const namespace = "numcalc"

// Collector implements calc.Recorder.
type Collector struct {
	registry *prometheus.Registry

	jobs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	iterations  prometheus.Histogram
	residual    prometheus.Histogram
	searchSteps *prometheus.HistogramVec
}

var _ calc.Recorder = (*Collector)(nil)

// New returns a Collector with all metrics registered on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		jobs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Jobs run, by kind and status (ok, unconverged, failed).",
		}, []string{"kind", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Wall time of a job.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"kind"}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_iterations",
			Help:      "Gauss-Seidel sweeps per iterative solve.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
		}),
		residual: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_final_residual",
			Help:      "Max component change of the last sweep.",
			Buckets:   prometheus.ExponentialBuckets(1e-9, 10, 12),
		}),
		searchSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ordering_search_steps",
			Help:      "Candidate placements tested while reordering equations, by strategy.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
	}
}

// unknownKind labels jobs whose kind is not a calc.Kind constant, keeping
// label cardinality bounded whatever a batch file contains.
const unknownKind = "unknown"

// Observe records one finished job.
func (c *Collector) Observe(r calc.Result) {
	kind := unknownKind
	if r.Kind.Known() {
		kind = string(r.Kind)
	}
	c.jobs.WithLabelValues(kind, r.Status()).Inc()
	c.duration.WithLabelValues(kind).Observe(r.Duration.Seconds())

	if r.Report == nil {
		return
	}
	if o := r.Report.Order; o.Strategy != "" {
		c.searchSteps.WithLabelValues(string(o.Strategy)).Observe(float64(o.Steps))
	}
	if r.Report.Iterations > 0 {
		c.iterations.Observe(float64(r.Report.Iterations))
		c.residual.Observe(r.Report.Residual)
	}
}

// Registry exposes the underlying registry (e.g. for an HTTP handler).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes the current metrics to path in text exposition
// format, atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
