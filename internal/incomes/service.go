package incomes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
)

type service struct {
	repo Repository
}

// NewService builds the incomes service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("incomes repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateIncome(ctx context.Context, input CreateIncomeInput) (*IncomeView, error) {
	if input.StoreID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	if !input.Amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	if input.Date.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date required")
	}

	income, err := s.repo.Create(ctx, &models.Income{
		ID:      uuid.New(),
		StoreID: input.StoreID,
		Amount:  input.Amount,
		Date:    normalizeDate(input.Date),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create income")
	}
	view := toView(*income)
	return &view, nil
}

func (s *service) UpdateIncome(ctx context.Context, id uuid.UUID, input UpdateIncomeInput) (*IncomeView, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "income id required")
	}

	updates := map[string]any{}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
		}
		updates["amount"] = *input.Amount
	}
	if input.Date != nil {
		updates["date"] = normalizeDate(*input.Date)
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "income not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load income")
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update income")
	}

	income, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload income")
	}
	view := toView(*income)
	return &view, nil
}

func (s *service) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "income id required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete income")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "income not found")
	}
	return nil
}

func (s *service) ListIncomes(ctx context.Context, storeID uuid.UUID) ([]IncomeView, error) {
	if storeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	rows, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list incomes")
	}
	views := make([]IncomeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toView(row))
	}
	return views, nil
}

func (s *service) SummarizeIncomes(ctx context.Context, storeID uuid.UUID) (*IncomeSummary, error) {
	if storeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	summary, err := s.repo.Summarize(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "summarize incomes")
	}
	return summary, nil
}

func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toView(income models.Income) IncomeView {
	return IncomeView{
		ID:        income.ID,
		StoreID:   income.StoreID,
		Amount:    income.Amount,
		Date:      income.Date,
		CreatedAt: income.CreatedAt,
	}
}
