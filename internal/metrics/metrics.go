// Package metrics provides Prometheus instrumentation for bedrocktran.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/valpere/bedrocktran/internal/translator"
)

var (
	// InvocationsTotal counts generation calls by prompt kind and outcome.
	InvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bedrocktran_invocations_total",
			Help: "Total number of generation endpoint invocations.",
		},
		[]string{"kind", "status"}, // status: "success" or "error"
	)

	// InvocationLatency tracks generation call latency in seconds.
	InvocationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bedrocktran_invocation_latency_seconds",
			Help:    "Generation endpoint latency in seconds.",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)

	// CatalogFetchesTotal counts remote reference-data fetches. Cached reads
	// are not counted.
	CatalogFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bedrocktran_catalog_fetches_total",
			Help: "Total number of remote catalog fetches.",
		},
		[]string{"list", "status"},
	)
)

// Status maps an error to the status label value.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Recorder feeds invocation results into the Prometheus collectors.
type Recorder struct{}

// Record implements translator.Recorder.
func (Recorder) Record(ctx context.Context, res *translator.Result) error {
	status := "success"
	if res.Error != "" {
		status = "error"
	}
	InvocationsTotal.WithLabelValues(string(res.Kind), status).Inc()
	InvocationLatency.WithLabelValues(string(res.Kind)).Observe(res.Latency.Seconds())
	return nil
}
