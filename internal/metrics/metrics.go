// Package metrics exposes Prometheus collectors for Sleeper fetches and report runs.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SleeperRequests counts Sleeper lookups by endpoint and whether they hit the disk cache.
	SleeperRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sleeperstats_sleeper_requests_total",
		Help: "Sleeper API lookups",
	}, []string{"endpoint", "source"})

	SleeperErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sleeperstats_sleeper_errors_total",
		Help: "Failed Sleeper API requests",
	}, []string{"endpoint"})

	SnapshotLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sleeperstats_snapshot_loads_total",
		Help: "Completed league snapshot loads",
	})

	// SnapshotRecords tracks the size of the last snapshot per collection.
	SnapshotRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sleeperstats_snapshot_records",
		Help: "Records in the current league snapshot",
	}, []string{"collection"})

	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sleeperstats_report_duration_seconds",
		Help:    "Report computation time in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"report"})

	ReportErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sleeperstats_report_errors_total",
		Help: "Reports that failed to compute",
	}, []string{"report"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sleeperstats_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware counts served requests by method, chi route pattern and status.
// Requests that matched no route share the "unmatched" path label.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		HTTPRequestsTotal.WithLabelValues(r.Method, routePattern(r), strconv.Itoa(wrapped.status)).Inc()
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unmatched"
}

// ObserveReport records how long a report took and whether it failed.
func ObserveReport(report string, start time.Time, err error) {
	ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	if err != nil {
		ReportErrors.WithLabelValues(report).Inc()
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
