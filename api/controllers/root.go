package controllers

import (
	"net/http"

	"github.com/pharmahub/pharma-backend/api/responses"
)

// Root answers the bare path with a banner so load balancers and curious
// humans get a friendly signal that the service is up.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{"message": "PharmaHub API running"})
	}
}
