package controllers

import (
	"net/http"

	"github.com/mfekete/backoffice-backend/api/responses"
	dashboardsvc "github.com/mfekete/backoffice-backend/internal/dashboard"
	"github.com/mfekete/backoffice-backend/pkg/logger"
)

// GetDashboard returns the store's daily aggregate snapshot.
func GetDashboard(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := requiredQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.GetDashboard(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}
