package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_AllVariablesNonNil(t *testing.T) {
	t.Parallel()

	vars := []struct {
		name string
		val  any
	}{
		{"EvaluationsTotal", EvaluationsTotal},
		{"EvaluationDuration", EvaluationDuration},
		{"IngressDroppedTotal", IngressDroppedTotal},
		{"StabilityArmedTotal", StabilityArmedTotal},
		{"StabilityCancelledTotal", StabilityCancelledTotal},
		{"StabilityFiredTotal", StabilityFiredTotal},
		{"ValidationFailuresTotal", ValidationFailuresTotal},
		{"RetriesScheduledTotal", RetriesScheduledTotal},
		{"RetriesExhaustedTotal", RetriesExhaustedTotal},
		{"NotificationsSentTotal", NotificationsSentTotal},
		{"AdminRateLimitedTotal", AdminRateLimitedTotal},
	}

	for _, v := range vars {
		assert.NotNilf(t, v.val, "%s should not be nil", v.name)
	}
}

func TestMetrics_CounterIncrementNoPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { EvaluationsTotal.WithLabelValues("armed").Inc() })
	assert.NotPanics(t, func() { IngressDroppedTotal.WithLabelValues("signal_strength_changed").Inc() })
	assert.NotPanics(t, func() { StabilityArmedTotal.WithLabelValues("true").Inc() })
	assert.NotPanics(t, func() { StabilityCancelledTotal.Inc() })
	assert.NotPanics(t, func() { StabilityFiredTotal.Inc() })
	assert.NotPanics(t, func() { ValidationFailuresTotal.WithLabelValues("unknown").Inc() })
	assert.NotPanics(t, func() { RetriesScheduledTotal.Inc() })
	assert.NotPanics(t, func() { RetriesExhaustedTotal.Inc() })
	assert.NotPanics(t, func() { NotificationsSentTotal.WithLabelValues("webhook").Inc() })
	assert.NotPanics(t, func() { AdminRateLimitedTotal.WithLabelValues("test-route").Inc() })
}

func TestMetrics_HistogramObserveNoPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { EvaluationDuration.WithLabelValues("signal_strength_changed").Observe(0.0005) })
}

// The package declares no gauges. This checks that the histogram
// rejects a label count other than its single "reason" label.
func TestMetrics_HistogramWrongLabelCountPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { EvaluationDuration.WithLabelValues("a", "b").Observe(1) })
}
