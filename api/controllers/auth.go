package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmahub/pharma-backend/api/responses"
	"github.com/pharmahub/pharma-backend/api/validators"
	"github.com/pharmahub/pharma-backend/internal/accounts"
	pkgerrors "github.com/pharmahub/pharma-backend/pkg/errors"
	"github.com/pharmahub/pharma-backend/pkg/logger"
	"github.com/pharmahub/pharma-backend/pkg/metrics"
)

// AuthSignup wires the registration endpoint into the HTTP layer.
func AuthSignup(svc accounts.Service, m *metrics.AuthMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body accounts.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			m.IncSignup(metrics.ResultFailure)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Signup(r.Context(), body)
		if err != nil {
			m.IncSignup(metrics.ResultFailure)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncSignup(metrics.ResultSuccess)
		responses.WriteJSON(w, http.StatusCreated, result)
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc accounts.Service, m *metrics.AuthMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body accounts.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			m.IncLogin(metrics.ResultFailure)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			m.IncLogin(metrics.ResultFailure)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncLogin(metrics.ResultSuccess)
		responses.WriteJSON(w, http.StatusOK, result)
	}
}

// AccountStatus returns the verification status for the email in the path.
// The email reaches the service exactly as the caller spelled it.
func AccountStatus(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		email := chi.URLParam(r, "email")

		result, err := svc.GetStatus(r.Context(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}
