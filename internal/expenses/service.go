package expenses

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
)

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds the expenses service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("expenses repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*ExpenseView, error) {
	if input.StoreID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	if !input.Amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}

	date := input.Date
	if date.IsZero() {
		date = s.now().UTC()
	}

	expense, err := s.repo.Create(ctx, &models.Expense{
		ID:      uuid.New(),
		StoreID: input.StoreID,
		Amount:  input.Amount,
		Date:    date,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create expense")
	}
	view := toView(*expense)
	return &view, nil
}

func (s *service) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "expense id required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete expense")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "expense not found")
	}
	return nil
}

func (s *service) ListExpenses(ctx context.Context, storeID uuid.UUID) ([]ExpenseView, error) {
	if storeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	rows, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list expenses")
	}
	views := make([]ExpenseView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toView(row))
	}
	return views, nil
}

func toView(expense models.Expense) ExpenseView {
	return ExpenseView{
		ID:        expense.ID,
		StoreID:   expense.StoreID,
		Amount:    expense.Amount,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt,
	}
}
