package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the aggregate reads behind the dashboard.
type Repository interface {
	RevenueBetween(ctx context.Context, storeID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	IncomeTotal(ctx context.Context, storeID uuid.UUID) (decimal.Decimal, error)
	ExpenseTotal(ctx context.Context, storeID uuid.UUID) (decimal.Decimal, error)
	LowStockCount(ctx context.Context, storeID uuid.UUID, threshold int) (int64, error)
}

// Service defines the dashboard operation exposed over HTTP.
type Service interface {
	GetDashboard(ctx context.Context, storeID uuid.UUID) (*DashboardView, error)
}
