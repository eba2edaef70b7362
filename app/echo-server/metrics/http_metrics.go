package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of engine HTTP handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	RequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests served",
	}, []string{"route", "method", "status"})
)

func Init() {
	prometheus.MustRegister(RequestDuration, RequestTotal)
}

// Middleware records latency per registered route (not raw path) so the
// label set stays bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}

			labels := prometheus.Labels{
				"route":  c.Path(),
				"method": c.Request().Method,
				"status": strconv.Itoa(status),
			}
			RequestDuration.With(labels).Observe(time.Since(start).Seconds())
			RequestTotal.With(labels).Inc()

			return err
		}
	}
}
