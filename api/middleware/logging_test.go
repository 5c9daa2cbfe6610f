package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorderCapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &statusRecorder{ResponseWriter: rec}

	wrapped.WriteHeader(http.StatusTeapot)

	if wrapped.status != http.StatusTeapot {
		t.Fatalf("recorded status = %d, want %d", wrapped.status, http.StatusTeapot)
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestStatusRecorderUnwrapsForResponseController(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &statusRecorder{ResponseWriter: rec}

	if wrapped.Unwrap() != rec {
		t.Fatal("expected Unwrap to return the underlying writer")
	}
	if err := http.NewResponseController(wrapped).Flush(); err != nil {
		t.Fatalf("flush through recorder: %v", err)
	}
	if !rec.Flushed {
		t.Fatal("expected flush to reach the underlying writer")
	}
}
