package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	"github.com/mfekete/backoffice-backend/pkg/pagination"
)

// Repository defines persistence operations for orders and stock movement.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	// DecrementStock subtracts qty from the product's stock only when enough
	// stock remains; the returned count is 0 when the guard failed.
	DecrementStock(ctx context.Context, productID uuid.UUID, qty int) (int64, error)
	ProductExists(ctx context.Context, productID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, params pagination.Params) (*OrderList, error)
	SumTotals(ctx context.Context, storeID uuid.UUID, from, to time.Time) (decimal.Decimal, int64, error)
}

// Service defines the order operations exposed over HTTP.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderView, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context, storeID uuid.UUID, params pagination.Params) (*OrderList, error)
	RevenueToday(ctx context.Context, storeID uuid.UUID) (*RevenueView, error)
}
