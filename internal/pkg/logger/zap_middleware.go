package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request served by echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the final one
				c.Error(err)
			}

			req := c.Request()
			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if uid := c.Get("user_id"); uid != nil {
				userID = fmt.Sprintf("%v", uid)
			}

			logger.LogHTTPRequest(
				newrelic.FromContext(req.Context()),
				req.Method, path, c.RealIP(), userID,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status, time.Since(start), err,
			)
			return nil
		}
	}
}
