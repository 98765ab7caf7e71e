// Package metrics holds the Prometheus collectors of the shipping desk.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderMetrics records calls to the remote shipping provider, labelled by
// operation (quote, purchase, templates).
type ProviderMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewProviderMetrics registers the collectors on reg. A nil registerer gives
// a recorder that drops everything.
func NewProviderMetrics(reg prometheus.Registerer) *ProviderMetrics {
	if reg == nil {
		return &ProviderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shipping_provider_request_duration_seconds",
		Help:    "Duration of shipping provider requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_provider_request_success_total",
		Help: "Successful shipping provider requests.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_provider_request_failure_total",
		Help: "Failed shipping provider requests.",
	}, []string{"operation"})
	reg.MustRegister(duration, success, failure)
	return &ProviderMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// Observe records one finished call.
func (m *ProviderMetrics) Observe(operation string, took time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	op := normalizeLabel(operation)
	m.duration.WithLabelValues(op).Observe(took.Seconds())
	if err != nil {
		m.failure.WithLabelValues(op).Inc()
		return
	}
	m.success.WithLabelValues(op).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
