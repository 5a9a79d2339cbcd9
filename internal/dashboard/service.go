package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
)

type service struct {
	repo              Repository
	lowStockThreshold int
	now               func() time.Time
}

// NewService builds the dashboard service.
func NewService(repo Repository, lowStockThreshold int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = 5
	}
	return &service{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}, nil
}

func (s *service) GetDashboard(ctx context.Context, storeID uuid.UUID) (*DashboardView, error) {
	if storeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}

	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	revenue, err := s.repo.RevenueBetween(ctx, storeID, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dashboard revenue")
	}
	incomeTotal, err := s.repo.IncomeTotal(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dashboard income total")
	}
	expenseTotal, err := s.repo.ExpenseTotal(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dashboard expense total")
	}
	lowStock, err := s.repo.LowStockCount(ctx, storeID, s.lowStockThreshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dashboard low stock")
	}

	return &DashboardView{
		StoreID:       storeID,
		Date:          from.Format("2006-01-02"),
		RevenueToday:  revenue,
		IncomeTotal:   incomeTotal,
		ExpenseTotal:  expenseTotal,
		LowStockCount: lowStock,
	}, nil
}
