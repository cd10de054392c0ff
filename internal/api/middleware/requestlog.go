// Package middleware provides Echo middleware for the mtg-price-tracker API.
package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// probePaths are polled constantly; only their first success and every
// failure are logged.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs one line per request. A
// request id is taken from X-Request-ID or generated, echoed in the
// response header and stored in the echo context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var probeOK sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)
			if err != nil {
				// Let echo write the error so the logged status is final.
				c.Error(err)
			}

			path := c.Request().URL.Path
			status := c.Response().Status

			level := slog.LevelInfo
			if status >= 400 {
				level = slog.LevelWarn
			} else if _, probe := probePaths[path]; probe {
				if _, seen := probeOK.LoadOrStore(path, struct{}{}); seen {
					return nil
				}
			}

			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			)

			return nil
		}
	}
}

// RequestID returns the id RequestLog assigned to c, if any.
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
