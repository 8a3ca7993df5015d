package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/target-inventory/internal/api/handlers"
)

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace with the request ID, and returns a 500 to the client.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)

				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"request_id", c.Get(requestIDKey),
					"stack", string(buf[:n]),
				)

				if c.Response().Committed {
					err = nil
					return
				}
				err = c.JSON(http.StatusInternalServerError, handlers.ErrorResponse{Error: "internal server error"})
			}()
			return next(c)
		}
	}
}
