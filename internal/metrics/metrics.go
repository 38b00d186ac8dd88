// Package metrics provides Prometheus metrics collection for the lunch service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OrdersTotal tracks orders appended to the ledger by source.
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunch_orders_total",
			Help: "Total number of orders recorded, by source",
		},
		[]string{"source"},
	)

	// ResolverDecisionsTotal tracks preference resolutions by rule.
	ResolverDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunch_resolver_decisions_total",
			Help: "Total number of meal resolver decisions, by rule",
		},
		[]string{"rule"},
	)

	// PreorderRunsTotal tracks bulk preorder passes triggered by scheduling.
	PreorderRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lunch_preorder_runs_total",
			Help: "Total number of bulk preorder passes",
		},
	)

	// PreorderBatchSize tracks how many preorders each scheduling pass created.
	PreorderBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lunch_preorder_batch_size",
			Help:    "Number of preorders created per scheduling pass",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOrder records an order appended to the ledger.
func RecordOrder(source string) {
	OrdersTotal.WithLabelValues(source).Inc()
}

// RecordResolverDecision records a meal resolver decision.
func RecordResolverDecision(rule string) {
	ResolverDecisionsTotal.WithLabelValues(rule).Inc()
}

// RecordPreorderRun records one bulk preorder pass and its batch size.
func RecordPreorderRun(orders int) {
	PreorderRunsTotal.Inc()
	PreorderBatchSize.Observe(float64(orders))
}
