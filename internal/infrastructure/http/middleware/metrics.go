package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "memevoting_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	authAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memevoting_auth_attempts_total",
			Help: "Total auth attempts by event and outcome",
		},
		[]string{"event", "success"},
	)
	uploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memevoting_uploads_rejected_total",
			Help: "Uploads rejected before persistence, by reason",
		},
		[]string{"reason"},
	)
)

// PrometheusMiddleware records request duration.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		httpRequestDuration.
			WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}

// RecordAuthAttempt records an auth event outcome.
func RecordAuthAttempt(event string, success bool) {
	authAttempts.WithLabelValues(event, strconv.FormatBool(success)).Inc()
}

// RecordUploadRejected records a pre-gate upload rejection ("mime", "size",
// "duplicate").
func RecordUploadRejected(reason string) {
	uploadsRejected.WithLabelValues(reason).Inc()
}
