package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-query-api/pkg/log"
	"weather-query-api/pkg/msg"
)

// SetupRequestLogger registers the request logging middleware with custom log output.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper:      skipQuietPaths,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error == nil && v.Status < 500 {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID), fields...)
				return nil
			}

			cause := ""
			if v.Error != nil {
				cause = v.Error.Error()
				fields = append(fields, zap.Error(v.Error))
			}
			log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID, cause), fields...)
			return nil
		},
	}))
}

// skipQuietPaths skips health probes, scrapes and swagger assets
func skipQuietPaths(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasSuffix(path, "/health") ||
		strings.HasSuffix(path, "/metrics") ||
		strings.Contains(path, "/swagger/")
}
