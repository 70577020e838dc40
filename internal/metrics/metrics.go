// Package metrics exposes Prometheus instrumentation for the AtmoGo service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atmogo_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "atmogo_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	evaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atmogo_evaluations_total",
			Help: "Total number of atmosphere and airspeed evaluations served.",
		},
		[]string{"kind"},
	)

	profileRowsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "atmogo_profile_rows_total",
			Help: "Total number of profile rows evaluated.",
		},
	)

	profileDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "atmogo_profile_duration_seconds",
			Help:    "Profile evaluation duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)

	profileWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "atmogo_profile_workers",
			Help: "Configured size of the profile evaluation worker pool.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(evaluationsTotal)
	prometheus.MustRegister(profileRowsTotal)
	prometheus.MustRegister(profileDurationSeconds)
	prometheus.MustRegister(profileWorkers)
}

// knownRoutes holds the exact paths the server registers. Every other path
// folds into a single label so scanners cannot inflate metric cardinality.
var knownRoutes = map[string]bool{
	"/":                          true,
	"/app.js":                    true,
	"/styles.css":                true,
	"/healthz":                   true,
	"/readyz":                    true,
	"/metrics":                   true,
	"/api/v1/atmosphere":         true,
	"/api/v1/altitude":           true,
	"/api/v1/airspeed/tas":       true,
	"/api/v1/airspeed/cas":       true,
	"/api/v1/airspeed/crossover": true,
	"/api/v1/profile":            true,
}

// normalizeRoute maps a request path to its metric label.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordEvaluation counts one served evaluation of the given kind.
func RecordEvaluation(kind string) {
	evaluationsTotal.WithLabelValues(kind).Inc()
}

// RecordProfile records a completed batch profile evaluation.
func RecordProfile(rows int, seconds float64) {
	profileRowsTotal.Add(float64(rows))
	profileDurationSeconds.Observe(seconds)
}

// SetProfileWorkers publishes the configured worker pool size.
func SetProfileWorkers(n int) {
	profileWorkers.Set(float64(n))
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
