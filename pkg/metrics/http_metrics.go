package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	requestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

// HTTPMetrics collects per-request counters and latencies for one service.
type HTTPMetrics struct {
	ServiceName string
}

func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	prometheus.MustRegister(requestCounter, requestDurationHistogram)

	return &HTTPMetrics{ServiceName: serviceName}
}

// Middleware records counters and duration for every handled request.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			path := c.Path()
			method := c.Request().Method

			requestCounter.WithLabelValues(m.ServiceName, method, path, status).Inc()
			requestDurationHistogram.WithLabelValues(m.ServiceName, method, path, status).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler exposes the prometheus scrape endpoint.
func (m *HTTPMetrics) Handler() echo.HandlerFunc {
	h := promhttp.Handler()

	return func(c echo.Context) error {
		h.ServeHTTP(c.Response(), c.Request())

		return nil
	}
}
