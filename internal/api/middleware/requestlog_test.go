package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		handler       echo.HandlerFunc
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			path:   "/api/v1/watchlist",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantLogFields: []string{
				"level=INFO",
				"method=GET",
				"path=/api/v1/watchlist",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "logs accepted run",
			method: http.MethodPost,
			path:   "/api/v1/watcher/run",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusAccepted)
			},
			wantLogFields: []string{"method=POST", "status=202"},
		},
		{
			name:   "uses provided request ID",
			method: http.MethodGet,
			path:   "/api/v1/watcher/status",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{"request_id=custom-req-id-123"},
		},
		{
			name:   "returned error is written before logging",
			method: http.MethodGet,
			path:   "/api/v1/history/missing",
			handler: func(echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "not found")
			},
			wantLogFields: []string{"level=WARN", "status=404"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, RequestLog(logger)(tt.handler)(c))

			for _, field := range tt.wantLogFields {
				assert.Contains(t, buf.String(), field)
			}

			respID := rec.Header().Get(requestIDHeader)
			assert.NotEmpty(t, respID)
			assert.Equal(t, respID, RequestID(c))
			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}
		})
	}
}

func serve(t *testing.T, h echo.HandlerFunc, path string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))
}

func TestRequestLog_ProbeSuccessLoggedOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	serve(t, handler, "/healthz")
	assert.Contains(t, buf.String(), "path=/healthz")
	first := buf.Len()

	serve(t, handler, "/healthz")
	serve(t, handler, "/healthz")
	assert.Equal(t, first, buf.Len(), "repeated successful probes should not be logged")

	serve(t, handler, "/readyz")
	assert.Greater(t, buf.Len(), first, "each probe path logs its own first success")
}

func TestRequestLog_ProbeFailureAlwaysLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	calls := 0
	handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
		calls++
		if calls <= 2 {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	serve(t, handler, "/readyz")
	serve(t, handler, "/readyz")
	afterSuccesses := buf.Len()

	serve(t, handler, "/readyz")
	assert.Greater(t, buf.Len(), afterSuccesses)
	assert.Contains(t, buf.String(), "status=503")
	assert.Contains(t, buf.String(), "level=WARN")

	afterFirstFailure := buf.Len()
	serve(t, handler, "/readyz")
	assert.Greater(t, buf.Len(), afterFirstFailure)
}

func TestRequestLog_NonProbePathAlwaysLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	serve(t, handler, "/api/v1/watchlist")
	first := buf.Len()
	serve(t, handler, "/api/v1/watchlist")
	assert.Greater(t, buf.Len(), first)
}
