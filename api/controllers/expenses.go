package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/api/responses"
	"github.com/mfekete/backoffice-backend/api/validators"
	expensesvc "github.com/mfekete/backoffice-backend/internal/expenses"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/logger"
)

type createExpenseRequest struct {
	StoreID string  `json:"store_id" validate:"required,uuid"`
	Amount  string  `json:"amount" validate:"required"`
	Date    *string `json:"date,omitempty"`
}

// CreateExpense records an expense for a store. Omitting the date stamps it now.
func CreateExpense(svc expensesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createExpenseRequest
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

		var date time.Time
		if payload.Date != nil {
			date, err = time.Parse("2006-01-02", *payload.Date)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD"))
				return
			}
		}

		expense, err := svc.CreateExpense(r.Context(), expensesvc.CreateExpenseInput{
			StoreID: storeID,
			Amount:  amount,
			Date:    date,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, expense)
	}
}

// DeleteExpense removes an expense entry.
func DeleteExpense(svc expensesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenseID, err := pathUUID(r, "expenseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteExpense(r.Context(), expenseID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// ListExpenses returns a store's expenses, newest first.
func ListExpenses(svc expensesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID, err := requiredQueryUUID(r, "store_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		expenses, err := svc.ListExpenses(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, expenses)
	}
}
