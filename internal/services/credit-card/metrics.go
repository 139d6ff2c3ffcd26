package creditcard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector records card service activity.
type MetricsCollector interface {
	RecordValidationFailure(field string)
	RecordTokenization(cardType, result string, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordValidationFailure(string)                   {}
func (n *NoopMetricsCollector) RecordTokenization(string, string, time.Duration) {}

// PrometheusMetrics exports card service metrics to Prometheus.
type PrometheusMetrics struct {
	ValidationFailures *prometheus.CounterVec
	Tokenizations      *prometheus.CounterVec
	TokenizeDuration   *prometheus.HistogramVec
}

// NewPrometheusMetrics creates and registers the card metrics on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "card_validation_failures_total",
			Help: "Card validation failures by field",
		}, []string{"field"}),
		Tokenizations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "card_tokenizations_total",
			Help: "Tokenization attempts by card type and result",
		}, []string{"card_type", "result"}),
		TokenizeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "card_tokenization_duration_seconds",
			Help:    "Time spent waiting for the token issuer",
			Buckets: prometheus.DefBuckets,
		}, []string{"card_type"}),
	}
}

func (m *PrometheusMetrics) RecordValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

func (m *PrometheusMetrics) RecordTokenization(cardType, result string, duration time.Duration) {
	if cardType == "" {
		cardType = "unknown"
	}
	m.Tokenizations.WithLabelValues(cardType, result).Inc()
	m.TokenizeDuration.WithLabelValues(cardType).Observe(duration.Seconds())
}
