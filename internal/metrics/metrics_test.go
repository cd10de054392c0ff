package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, CycleDuration)
	assert.NotNil(t, CyclesTotal)
	assert.NotNil(t, CycleItemsTotal)
	assert.NotNil(t, ItemDuration)
	assert.NotNil(t, WatchlistSize)
	assert.NotNil(t, WatcherRunning)
	assert.NotNil(t, NextCycleTimestamp)
	assert.NotNil(t, VendorQuotesTotal)
	assert.NotNil(t, VendorDuration)
	assert.NotNil(t, ScryfallRequestsTotal)
	assert.NotNil(t, ScryfallCacheHitsTotal)
	assert.NotNil(t, PersistenceFailuresTotal)
	assert.NotNil(t, HistoryPointsTotal)
	assert.NotNil(t, DashboardUpdatesTotal)
	assert.NotNil(t, HealthyGauge)
	assert.NotNil(t, ReadyGauge)
}

func TestVendorQuotesTotal_Labels(t *testing.T) {
	t.Parallel()

	c := VendorQuotesTotal.WithLabelValues("metrics-test-vendor", OutcomeEmpty)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.001)
}
