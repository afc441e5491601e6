package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansStarted counts scanning episodes armed by the operator.
	ScansStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_scans_started_total",
			Help: "Total number of scanning episodes started",
		},
	)

	// ScanTimeouts counts episodes ended by the scan timer.
	ScanTimeouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_scan_timeouts_total",
			Help: "Total number of scanning episodes ended by timeout",
		},
	)

	// MalformedPayloads counts decoded frames that failed JSON parsing.
	MalformedPayloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_malformed_payloads_total",
			Help: "Total number of decoded frames discarded as malformed",
		},
	)

	// PayloadsTotal counts parsed payloads by kind and submit outcome.
	PayloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_payloads_total",
			Help: "Total number of parsed payloads submitted to the register",
		},
		[]string{"kind", "outcome"},
	)

	// TendersTotal counts accepted payments.
	TendersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_tenders_total",
			Help: "Total number of accepted tenders",
		},
	)

	// TenderAmount tracks grand totals of accepted tenders.
	TenderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pos_tender_amount_dollars",
			Help:    "Grand totals of accepted tenders in dollars",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// CartLines tracks the number of distinct lines in the cart.
	CartLines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pos_cart_lines",
			Help: "Current number of distinct cart lines",
		},
	)

	// RequestsTotal tracks HTTP requests on the operator surface.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// Middleware creates a Gin middleware for automatic HTTP metrics collection.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, c.FullPath()).Observe(duration)
	}
}
