package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

// RegisterMetrics registers the HTTP metrics and mounts /metrics on the echo
// instance. Call once during startup.
func RegisterMetrics(e *echo.Echo) {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)

	e.Use(metricsMiddleware)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// metricsMiddleware records a counter and duration sample per request,
// labeled by route template rather than raw path to keep cardinality bounded.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()

		err := next(ctx)

		path := ctx.Path()
		if path == "" {
			path = ctx.Request().URL.Path
		}

		status := ctx.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
		}

		httpRequestsTotal.WithLabelValues(path, ctx.Request().Method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(path, ctx.Request().Method).Observe(time.Since(start).Seconds())

		return err
	}
}
