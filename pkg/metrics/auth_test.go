package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewAuthMetricsNilRegisterer(t *testing.T) {
	m := NewAuthMetrics(nil)
	// all recorders must be safe no-ops
	m.IncSignup(ResultSuccess)
	m.IncLogin(ResultFailure)
	m.ObserveRequest("POST", "/login", time.Millisecond)
}

func TestAuthMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAuthMetrics(reg)

	m.IncSignup(ResultSuccess)
	m.IncSignup(ResultSuccess)
	m.IncSignup(ResultFailure)
	m.IncLogin("")

	if got := testutil.ToFloat64(m.signups.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successful signups, got %v", got)
	}
	if got := testutil.ToFloat64(m.signups.WithLabelValues("failure")); got != 1 {
		t.Fatalf("expected 1 failed signup, got %v", got)
	}
	if got := testutil.ToFloat64(m.logins.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty result to normalize to unknown, got %v", got)
	}
}
