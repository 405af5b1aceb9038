package middleware

import (
	"context"
	"log/slog"
	"time"

	"nudge/config"
	deliverycontext "nudge/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HTTPObserver records request latency; implemented by the metrics collectors.
type HTTPObserver interface {
	ObserveHTTP(api, method string, code int, elapsed time.Duration)
}

// LoggerMiddleware logs requests in debug mode and always reports latency to the observer
type LoggerMiddleware struct {
	logger   *slog.Logger
	debug    bool
	observer HTTPObserver
}

// NewLoggerMiddleware creates a new logger middleware. observer may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, observer HTTPObserver) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:   logger,
		debug:    config.Env.Debug,
		observer: observer,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Run the error handler now so the logged status is the one sent
			c.Error(err)
		}

		elapsed := time.Since(start)

		if m.observer != nil {
			m.observer.ObserveHTTP(routeLabel(c), c.Request().Method, c.Response().Status, elapsed)
		}

		if m.debug || c.Response().Status >= 500 {
			m.logRequest(c, start, elapsed, err)
		}

		return nil
	}
}

// routeLabel keeps metric cardinality bounded by using the route pattern instead of the raw path.
func routeLabel(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
