package controllers

import (
	"net/http"

	"github.com/pharmahub/pharma-backend/api/responses"
	"github.com/pharmahub/pharma-backend/pkg/config"
	"github.com/pharmahub/pharma-backend/pkg/db"
	pkgerrors "github.com/pharmahub/pharma-backend/pkg/errors"
	"github.com/pharmahub/pharma-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pharma-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady also pings the relational store when one was selected. The
// in-memory variant has no external dependency and is always ready.
func HealthReady(cfg *config.Config, pinger db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pharma-Env", cfg.App.Env)

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				wrapped := pkgerrors.Wrap(pkgerrors.CodeDependency, err, "user directory unavailable")
				responses.WriteError(r.Context(), logg, w, wrapped)
				return
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
