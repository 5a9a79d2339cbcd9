package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfekete/backoffice-backend/api/responses"
	"github.com/mfekete/backoffice-backend/api/validators"
	workersvc "github.com/mfekete/backoffice-backend/internal/workers"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/logger"
)

type createWorkerRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=120"`
	DailyWage *string  `json:"daily_wage,omitempty"`
	StoreIDs  []string `json:"store_ids" validate:"required,min=1,dive,uuid"`
}

// CreateWorker registers a worker and links them to stores.
func CreateWorker(svc workersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createWorkerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		storeIDs := make([]uuid.UUID, 0, len(payload.StoreIDs))
		for _, raw := range payload.StoreIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid store id"))
				return
			}
			storeIDs = append(storeIDs, id)
		}

		var dailyWage *decimal.Decimal
		if payload.DailyWage != nil {
			wage, err := parseMoney(*payload.DailyWage, "daily_wage")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			dailyWage = &wage
		}

		worker, err := svc.CreateWorker(r.Context(), workersvc.CreateWorkerInput{
			Name:      strings.TrimSpace(payload.Name),
			DailyWage: dailyWage,
			StoreIDs:  storeIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, worker)
	}
}

// GetWorker returns one worker with their store links.
func GetWorker(svc workersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID, err := pathUUID(r, "workerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		worker, err := svc.GetWorker(r.Context(), workerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, worker)
	}
}

// ListWorkers returns every registered worker.
func ListWorkers(svc workersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workers, err := svc.ListWorkers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, workers)
	}
}

// DeleteWorker removes a worker. Workers with recorded history are kept.
func DeleteWorker(svc workersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID, err := pathUUID(r, "workerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteWorker(r.Context(), workerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// ListWages returns a worker's accrued wages, optionally bounded by date.
func ListWages(svc workersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID, err := pathUUID(r, "workerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		from, err := validators.ParseQueryDate(r, "from")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.ParseQueryDate(r, "to")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		wages, err := svc.ListWages(r.Context(), workerID, from, to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, wages)
	}
}
