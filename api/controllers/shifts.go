package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/api/responses"
	"github.com/mfekete/backoffice-backend/api/validators"
	shiftsvc "github.com/mfekete/backoffice-backend/internal/shifts"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/logger"
)

type recordShiftRequest struct {
	WorkerID string  `json:"worker_id" validate:"required,uuid"`
	StoreID  string  `json:"store_id" validate:"required,uuid"`
	Date     string  `json:"date" validate:"required"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// RecordShift stores a shift and accrues the worker's wage in one step.
func RecordShift(svc shiftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := actorUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload recordShiftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		workerID, err := uuid.Parse(payload.WorkerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid worker id"))
			return
		}
		storeID, err := uuid.Parse(payload.StoreID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid store id"))
			return
		}
		date, err := time.Parse("2006-01-02", payload.Date)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD"))
			return
		}

		shift, err := svc.RecordShift(r.Context(), shiftsvc.RecordShiftInput{
			WorkerID:    workerID,
			StoreID:     storeID,
			Date:        date,
			Note:        payload.Note,
			ActorUserID: actorID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, shift)
	}
}

// ListShifts returns shifts filtered by store, worker, or date.
func ListShifts(svc shiftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := validators.ParseQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		workerID, err := validators.ParseQueryUUID(r, "worker_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		date, err := validators.ParseQueryDate(r, "date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shifts, err := svc.ListShifts(r.Context(), shiftsvc.ShiftFilters{
			StoreID:  storeID,
			WorkerID: workerID,
			Date:     date,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shifts)
	}
}

// DeleteShift removes a shift; any accrued wage stays as payroll history.
func DeleteShift(svc shiftsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shiftID, err := pathUUID(r, "shiftId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteShift(r.Context(), shiftID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
