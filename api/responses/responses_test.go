package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/pharmahub/pharma-backend/pkg/errors"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Message
}

func TestWriteErrorMapsTaxonomyCodes(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{pkgerrors.New(pkgerrors.CodeValidation, "email and password are required"), http.StatusBadRequest, "email and password are required"},
		{pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials"), http.StatusUnauthorized, "invalid credentials"},
		{pkgerrors.New(pkgerrors.CodeNotFound, "user not found"), http.StatusNotFound, "user not found"},
		{pkgerrors.New(pkgerrors.CodeConflict, "account already exists"), http.StatusConflict, "account already exists"},
		{pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("dial tcp: refused"), "user directory unavailable"), http.StatusServiceUnavailable, "user directory unavailable"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), nil, rec, tc.err)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected status %d got %d", tc.err, tc.status, rec.Code)
		}
		if got := decodeMessage(t, rec); got != tc.message {
			t.Fatalf("%v: expected message %q got %q", tc.err, tc.message, got)
		}
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("password column corrupt"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "internal server error" {
		t.Fatalf("internal detail leaked: %q", got)
	}
}

func TestWriteErrorNilError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}

func TestWriteJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"message": "ok"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
}
