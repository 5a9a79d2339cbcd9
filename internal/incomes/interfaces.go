package incomes

import (
	"context"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

// Repository defines persistence operations for income entries.
type Repository interface {
	Create(ctx context.Context, income *models.Income) (*models.Income, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Income, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Income, error)
	Summarize(ctx context.Context, storeID uuid.UUID) (*IncomeSummary, error)
}

// Service defines the income operations exposed over HTTP.
type Service interface {
	CreateIncome(ctx context.Context, input CreateIncomeInput) (*IncomeView, error)
	UpdateIncome(ctx context.Context, id uuid.UUID, input UpdateIncomeInput) (*IncomeView, error)
	DeleteIncome(ctx context.Context, id uuid.UUID) error
	ListIncomes(ctx context.Context, storeID uuid.UUID) ([]IncomeView, error)
	SummarizeIncomes(ctx context.Context, storeID uuid.UUID) (*IncomeSummary, error)
}
