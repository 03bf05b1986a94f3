// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus collectors.
type Metrics struct {
	// Rollover transfers
	TransfersTotal    *prometheus.CounterVec
	TransferredAmount prometheus.Counter
	GoalsCompleted    prometheus.Counter

	// Ledger writes
	WriteBatchesTotal  *prometheus.CounterVec
	WriteFailuresTotal *prometheus.CounterVec

	// AI flows
	AIRequestsTotal *prometheus.CounterVec
	AIDuration      *prometheus.HistogramVec

	// HTTP
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors. Registration happens once per
// process; every call returns the same instance.
//
// Metrics:
//   - insightbud_transfers_total{outcome} - transfers by planned/rejected
//   - insightbud_transferred_amount_total - sum of transferred surplus
//   - insightbud_goals_completed_total - goals that crossed their target
//   - insightbud_write_batches_total{outcome} - command batches by applied/partial/failed
//   - insightbud_write_failures_total{kind} - failed ledger writes per command kind
//   - insightbud_ai_requests_total{flow,outcome} - AI calls by ok/error/fallback/cache_hit
//   - insightbud_ai_request_duration_seconds{flow}
//   - insightbud_http_requests_total{method,route,status}
//   - insightbud_http_request_duration_seconds{method,route}
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			TransfersTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "insightbud_transfers_total",
					Help: "Total number of rollover transfers requested",
				},
				[]string{"outcome"},
			),
			TransferredAmount: promauto.NewCounter(prometheus.CounterOpts{
				Name: "insightbud_transferred_amount_total",
				Help: "Sum of surplus moved into savings goals",
			}),
			GoalsCompleted: promauto.NewCounter(prometheus.CounterOpts{
				Name: "insightbud_goals_completed_total",
				Help: "Total number of savings goals that reached their target",
			}),
			WriteBatchesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "insightbud_write_batches_total",
					Help: "Total number of ledger write batches executed",
				},
				[]string{"outcome"},
			),
			WriteFailuresTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "insightbud_write_failures_total",
					Help: "Total number of ledger writes that failed",
				},
				[]string{"kind"},
			),
			AIRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "insightbud_ai_requests_total",
					Help: "Total number of AI flow invocations",
				},
				[]string{"flow", "outcome"},
			),
			AIDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "insightbud_ai_request_duration_seconds",
					Help:    "Duration of text generation calls in seconds",
					Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
				},
				[]string{"flow"},
			),
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "insightbud_http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "route", "status"},
			),
			HTTPDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "insightbud_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
		}
	})
	return globalMetrics
}

// Middleware records request counts and latencies by matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
