package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the service
type Metrics struct {
	RequestCounter      *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	RequestsInFlight    *prometheus.GaugeVec
	NotificationCounter *prometheus.CounterVec
	DBConnPoolStats     *prometheus.GaugeVec
}

// NewMetrics creates a new metrics instance
func NewMetrics(serviceName string) *Metrics {
	return &Metrics{
		RequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "guesthouse",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "guesthouse",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		RequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "guesthouse",
				Subsystem: serviceName,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
			[]string{"method"},
		),
		NotificationCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "guesthouse",
				Subsystem: serviceName,
				Name:      "notifications_total",
				Help:      "Total number of notification delivery attempts",
			},
			[]string{"kind", "channel", "outcome"},
		),
		DBConnPoolStats: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "guesthouse",
				Subsystem: serviceName,
				Name:      "db_connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"}, // stat can be: open, in_use, idle, wait_count, etc.
		),
	}
}

// statusRecorder captures the response status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware returns an HTTP middleware that records request metrics
func Middleware(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := r.Method

			// Track requests in flight
			metrics.RequestsInFlight.WithLabelValues(method).Inc()
			defer metrics.RequestsInFlight.WithLabelValues(method).Dec()

			// Track request duration
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			// Label by the matched route pattern, not the raw path with
			// its embedded ids.
			route := r.Pattern
			if route == "" {
				route = r.URL.Path
			}

			duration := time.Since(start).Seconds()
			metrics.RequestDuration.WithLabelValues(method, route).Observe(duration)
			metrics.RequestCounter.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		})
	}
}

// RecordNotification records a notification delivery attempt
func (m *Metrics) RecordNotification(kind, channel string, success bool) {
	outcome := "delivered"
	if !success {
		outcome = "failed"
	}
	m.NotificationCounter.WithLabelValues(kind, channel, outcome).Inc()
}

// RecordDBPoolStats records database connection pool statistics
func (m *Metrics) RecordDBPoolStats(open, inUse, idle int, waitCount int64, waitDuration time.Duration) {
	m.DBConnPoolStats.WithLabelValues("open").Set(float64(open))
	m.DBConnPoolStats.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(idle))
	m.DBConnPoolStats.WithLabelValues("wait_count").Set(float64(waitCount))
	m.DBConnPoolStats.WithLabelValues("wait_duration_ms").Set(float64(waitDuration.Milliseconds()))
}
