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

// probePaths are polled by orchestrators. After the first success they are
// only logged again when they fail, so a healthy pod does not flood the log.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Server errors log at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu         sync.Mutex
		probeReady = map[string]bool{}
	)

	// quiet reports whether a successful probe should be suppressed, and
	// re-arms logging after a failure.
	quiet := func(path string, ok bool) bool {
		if _, probe := probePaths[path]; !probe {
			return false
		}
		mu.Lock()
		defer mu.Unlock()
		if !ok {
			probeReady[path] = false
			return false
		}
		if probeReady[path] {
			return true
		}
		probeReady[path] = true
		return false
	}

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

			status := responseStatus(c, err)
			path := c.Request().URL.Path
			if quiet(path, status < 400) {
				return err
			}

			level := slog.LevelInfo
			if status >= 500 || (status >= 400 && isProbe(path)) {
				level = slog.LevelWarn
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

func isProbe(path string) bool {
	_, ok := probePaths[path]
	return ok
}
