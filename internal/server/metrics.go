// SPDX-License-Identifier: MIT

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "matrixgen"

// metrics holds the collectors of one Server. Each Server owns its registry
// so that several servers (and tests) can coexist in one process.
type metrics struct {
	registry *prometheus.Registry

	// requests counts HTTP requests.
	// Labels: route, method, code
	requests *prometheus.CounterVec

	// latency measures HTTP request latency.
	// Labels: route
	latency *prometheus.HistogramVec

	// operations counts operation outcomes.
	// Labels: op, status (ok, or the error code)
	operations *prometheus.CounterVec

	// cells measures the size of matrix operands.
	// Labels: op
	cells *prometheus.HistogramVec
}

func newMetrics(stored func() float64) *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "registry",
		Name:      "matrices",
		Help:      "Number of matrices currently stored",
	}, stored)

	return &metrics{
		registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"route", "method", "code"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"route"}),
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "ops",
			Name:      "total",
			Help:      "Total matrix operations by outcome",
		}, []string{"op", "status"}),
		cells: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "ops",
			Name:      "operand_cells",
			Help:      "Cell count of each matrix operand",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"op"}),
	}
}
