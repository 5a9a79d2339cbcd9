package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/api/responses"
	"github.com/mfekete/backoffice-backend/api/validators"
	incomesvc "github.com/mfekete/backoffice-backend/internal/incomes"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/logger"
)

type createIncomeRequest struct {
	StoreID string `json:"store_id" validate:"required,uuid"`
	Amount  string `json:"amount" validate:"required"`
	Date    string `json:"date" validate:"required"`
}

type updateIncomeRequest struct {
	Amount *string `json:"amount,omitempty"`
	Date   *string `json:"date,omitempty"`
}

// CreateIncome records a manual income entry for a store.
func CreateIncome(svc incomesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createIncomeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		storeID, err := uuid.Parse(payload.StoreID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid store id"))
			return
		}
		amount, err := parseMoney(payload.Amount, "amount")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		date, err := time.Parse("2006-01-02", payload.Date)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD"))
			return
		}

		income, err := svc.CreateIncome(r.Context(), incomesvc.CreateIncomeInput{
			StoreID: storeID,
			Amount:  amount,
			Date:    date,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, income)
	}
}

// UpdateIncome applies a partial update to an income entry.
func UpdateIncome(svc incomesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		incomeID, err := pathUUID(r, "incomeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateIncomeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input incomesvc.UpdateIncomeInput
		if payload.Amount != nil {
			amount, err := parseMoney(*payload.Amount, "amount")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Amount = &amount
		}
		if payload.Date != nil {
			date, err := time.Parse("2006-01-02", *payload.Date)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD"))
				return
			}
			input.Date = &date
		}

		income, err := svc.UpdateIncome(r.Context(), incomeID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, income)
	}
}

// DeleteIncome removes an income entry.
func DeleteIncome(svc incomesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		incomeID, err := pathUUID(r, "incomeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteIncome(r.Context(), incomeID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// ListIncomes returns a store's income entries, newest first.
func ListIncomes(svc incomesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := requiredQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		incomes, err := svc.ListIncomes(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, incomes)
	}
}

// SummarizeIncomes returns a store's income total and entry count.
func SummarizeIncomes(svc incomesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := requiredQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.SummarizeIncomes(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
