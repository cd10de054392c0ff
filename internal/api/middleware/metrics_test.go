package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/mtg-price-tracker/internal/api/middleware"
	"github.com/donaldgifford/mtg-price-tracker/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		method string
		route  string
		target string
		status int
	}{
		{name: "records list", method: http.MethodGet, route: "/api/v1/watchlist", target: "/api/v1/watchlist", status: http.StatusOK},
		{name: "records route template", method: http.MethodGet, route: "/api/v1/history/:externalId", target: "/api/v1/history/abc", status: http.StatusOK},
		{name: "records conflict", method: http.MethodPost, route: "/api/v1/watcher/run", target: "/api/v1/watcher/run", status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, http.NoBody))
			assert.Equal(t, tt.status, rec.Code)

			status := strconv.Itoa(tt.status)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(tt.method, tt.route, status)
			require.NoError(t, err)
			assert.Positive(t, testutil.ToFloat64(counter))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(tt.method, tt.route, status)
			require.NoError(t, err)
			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_ProbeGauges(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	ready := true
	e.GET("/readyz", func(c echo.Context) error {
		if ready {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.ReadyGauge), 0)

	ready = false
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	assert.InDelta(t, 0.0, testutil.ToFloat64(metrics.ReadyGauge), 0)
}
