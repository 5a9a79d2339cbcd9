package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a dashboard repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RevenueBetween(ctx context.Context, storeID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("store_id = ? AND created_at >= ? AND created_at < ?", storeID, from, to))
}

func (r *repository) IncomeTotal(ctx context.Context, storeID uuid.UUID) (decimal.Decimal, error) {
	return r.sum(ctx, r.db.WithContext(ctx).
		Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("store_id = ?", storeID))
}

func (r *repository) ExpenseTotal(ctx context.Context, storeID uuid.UUID) (decimal.Decimal, error) {
	return r.sum(ctx, r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("store_id = ?", storeID))
}

func (r *repository) LowStockCount(ctx context.Context, storeID uuid.UUID, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("store_id = ? AND stock < ?", storeID, threshold).
		Count(&count).Error
	return count, err
}

func (r *repository) sum(ctx context.Context, query *gorm.DB) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}
