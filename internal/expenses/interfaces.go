package expenses

import (
	"context"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

// Repository defines persistence operations for expense entries.
type Repository interface {
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Expense, error)
}

// Service defines the expense operations exposed over HTTP.
type Service interface {
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*ExpenseView, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, storeID uuid.UUID) ([]ExpenseView, error)
}
