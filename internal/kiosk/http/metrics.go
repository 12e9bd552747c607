package http

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/pkg/httpx"
)

// Metrics collects the kiosk's operational counters.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec

	attendanceMatches prometheus.Counter
	attendanceMisses  prometheus.Counter
	enrollCompleted   prometheus.Counter
	enrollRejected    prometheus.Counter
	enrolledUsers     prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		attendanceMatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_attendance_matches_total",
			Help: "Attendance checks that matched an enrolled template.",
		}),
		attendanceMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_attendance_misses_total",
			Help: "Attendance checks with no match (includes empty polls).",
		}),
		enrollCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_enrollments_completed_total",
			Help: "Enrollments finalized into the store and bank.",
		}),
		enrollRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_enrollments_rejected_total",
			Help: "Enrollments rejected as duplicate or invalid.",
		}),
		enrolledUsers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "kiosk_enrolled_users",
			Help: "Users currently enrolled.",
		}),
	}
}

// Handler serves the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts every request by route pattern and status.
func (m *Metrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			m.requests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rw.status)).Inc()
		})
	}
}

// SetEnrolledUsers records the current user count.
func (m *Metrics) SetEnrolledUsers(n int) { m.enrolledUsers.Set(float64(n)) }

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
