// Package metrics declares every Prometheus series ADSC exposes,
// grouped the way the teacher groups pipeline-stage metrics: one
// promauto vector per concern, registered at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Evaluation engine
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "engine",
		Name:      "evaluations_total",
		Help:      "Total evaluation outcomes by decision type",
	}, []string{"outcome"})

	EvaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "adsc",
		Subsystem: "engine",
		Name:      "evaluation_duration_seconds",
		Help:      "Evaluation pass processing duration",
		Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
	}, []string{"reason"})

	IngressDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "engine",
		Name:      "ingress_dropped_total",
		Help:      "Total ingress events dropped due to a saturated queue",
	}, []string{"kind"})

	// Stability timer
	StabilityArmedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "stability",
		Name:      "armed_total",
		Help:      "Total times the stability timer was armed",
	}, []string{"need_validation"})

	StabilityCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "stability",
		Name:      "cancelled_total",
		Help:      "Total times a pending switch was cancelled",
	})

	StabilityFiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "stability",
		Name:      "fired_total",
		Help:      "Total times the stability timer expired and requested validation",
	})

	// Retry/backoff
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "retry",
		Name:      "validation_failures_total",
		Help:      "Total validation failures reported by the Switcher",
	}, []string{"class"})

	RetriesScheduledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "retry",
		Name:      "retries_scheduled_total",
		Help:      "Total retry evaluations scheduled with backoff",
	})

	RetriesExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "retry",
		Name:      "retries_exhausted_total",
		Help:      "Total times max_validation_retries was reached and the opportunity was abandoned",
	})

	// Notification
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "notify",
		Name:      "sent_total",
		Help:      "Total first-switch notifications posted",
	}, []string{"channel"})

	// Admin API
	AdminRateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adsc",
		Subsystem: "admin",
		Name:      "rate_limited_total",
		Help:      "Total admin requests rejected by the rate limiter",
	}, []string{"route"})
)
