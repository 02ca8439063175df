package metrics

import "github.com/prometheus/client_golang/prometheus"

// Test-only accessors.

func (c *Collector) JobsCounter(kind, status string) prometheus.Counter {
	return c.jobs.WithLabelValues(kind, status)
}

func (c *Collector) SearchSteps() *prometheus.HistogramVec { return c.searchSteps }
