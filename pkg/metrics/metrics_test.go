package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RuleCacheCounters(t *testing.T) {
	m := NewWithRegistry("rental-service", prometheus.NewRegistry())

	m.RuleCacheHit()
	m.RuleCacheHit()
	m.RuleCacheMiss()
	m.RuleCacheFallback()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RuleCacheRequests.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleCacheRequests.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleCacheRequests.WithLabelValues("fallback")))
}

func TestMetrics_BookingVerdict(t *testing.T) {
	m := NewWithRegistry("rental-service", prometheus.NewRegistry())

	m.BookingVerdict(true)
	m.BookingVerdict(false)
	m.BookingVerdict(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingVerdicts.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingVerdicts.WithLabelValues("rejected")))
}

func TestNewWithRegistry_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWithRegistry("rental-service", reg)

	assert.Panics(t, func() {
		NewWithRegistry("rental-service", reg)
	})
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RuleCacheHit()
		m.RuleCacheMiss()
		m.RuleCacheFallback()
		m.BookingVerdict(true)
	})
}
