package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// AuthMetrics records signup/login outcomes and request latency.
type AuthMetrics struct {
	signups  *prometheus.CounterVec
	logins   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewAuthMetrics registers the auth metrics on the provided registerer.
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	if reg == nil {
		return &AuthMetrics{}
	}
	signups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_signups_total",
		Help: "Signup attempts by result.",
	}, []string{"result"})
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	reg.MustRegister(signups, logins, duration)
	return &AuthMetrics{
		signups:  signups,
		logins:   logins,
		duration: duration,
	}
}

// ObserveRequest records the duration for the given route.
func (m *AuthMetrics) ObserveRequest(method, path string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(method, normalizeLabel(path)).Observe(duration.Seconds())
}

// IncSignup increments the signup counter for the given result.
func (m *AuthMetrics) IncSignup(result string) {
	if m == nil || m.signups == nil {
		return
	}
	m.signups.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncLogin increments the login counter for the given result.
func (m *AuthMetrics) IncLogin(result string) {
	if m == nil || m.logins == nil {
		return
	}
	m.logins.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
