package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pharmahub/pharma-backend/internal/accounts"
	"github.com/pharmahub/pharma-backend/internal/directory"
	"github.com/pharmahub/pharma-backend/pkg/config"
	"github.com/pharmahub/pharma-backend/pkg/metrics"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev

	svc, err := accounts.NewService(accounts.ServiceParams{
		Directory:      directory.NewEphemeral(),
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	m := metrics.NewAuthMetrics(prometheus.NewRegistry())
	return NewRouter(cfg, nil, nil, svc, m)
}

func TestRouterServesBannerAndHealth(t *testing.T) {
	handler := newTestHandler(t)

	for _, path := range []string{"/", "/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestRouterExposesMetrics(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouterWiresAuthEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"email":"router@pharma.example","password":"pw-123456"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /signup = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"router@pharma.example","password":"pw-123456"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /login = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/status/router@pharma.example", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/status/missing@pharma.example", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /status unknown = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
