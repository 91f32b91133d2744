package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"service", "circuit_name"},
	)

	// CircuitBreakerFailures tracks circuit breaker failures
	CircuitBreakerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_failures_total",
			Help: "Total number of circuit breaker failures",
		},
		[]string{"service", "circuit_name"},
	)

	// BulkheadActiveRequests tracks active requests in bulkhead
	BulkheadActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bulkhead_active_requests",
			Help: "Number of active requests in bulkhead",
		},
		[]string{"service", "bulkhead_name"},
	)

	// BulkheadRejectedRequests tracks rejected requests by bulkhead
	BulkheadRejectedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bulkhead_rejected_requests_total",
			Help: "Total number of rejected requests by bulkhead",
		},
		[]string{"service", "bulkhead_name"},
	)

	// ChaosFailureRate tracks chaos engineering failure injection (0=disabled, 1=enabled)
	ChaosFailureRate = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chaos_failure_rate",
			Help: "Chaos engineering failure injection status",
		},
		[]string{"service"},
	)

	// ChaosSlowMode tracks chaos engineering slow mode (0=disabled, 1=enabled)
	ChaosSlowMode = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chaos_slow_mode",
			Help: "Chaos engineering slow mode status",
		},
		[]string{"service"},
	)

	// SearchesTotal tracks order searches by outcome
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_searches_total",
			Help: "Total number of order searches",
		},
		[]string{"outcome"},
	)

	// OrdersReturned tracks how many orders each successful search returned
	OrdersReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_search_results",
			Help:    "Number of orders returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// AnalyticsEventsTotal tracks analytics events by outcome
	AnalyticsEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_total",
			Help: "Total number of analytics events sent",
		},
		[]string{"event", "outcome"},
	)

	// PDFExtractionsTotal tracks PDF page extractions by outcome
	PDFExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdf_extractions_total",
			Help: "Total number of PDF page extractions",
		},
		[]string{"outcome"},
	)

	// PDFPagesExtracted tracks how many pages each extraction produced
	PDFPagesExtracted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pdf_pages_extracted",
			Help:    "Number of pages per extracted PDF",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
		},
	)

	// VendorEmailsTotal tracks composed vendor order emails
	VendorEmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_emails_total",
			Help: "Total number of composed vendor order emails",
		},
		[]string{"outcome"},
	)
)

// PrometheusMiddleware creates a Gin middleware for automatic metrics collection
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(
			serviceName,
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()

		RequestDuration.WithLabelValues(
			serviceName,
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}
