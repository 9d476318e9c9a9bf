package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carepoint/frontdesk/internal/platform/auth"
)

// Logger emits one structured line per request, correlated by the
// RequestID middleware and, once auth has run, the caller identity.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt.Str("request_id", requestIDFrom(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path)
			if q := req.URL.RawQuery; q != "" {
				evt.Str("query", q)
			}
			// The auth middleware runs inside this one, so by the time the
			// handler chain returns the caller identity is on the request.
			if uid := auth.UserIDFromContext(req.Context()); uid != "" {
				evt.Str("user_id", uid)
			}
			evt.Int("status", c.Response().Status).
				Int64("bytes_out", c.Response().Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return err
		}
	}
}
