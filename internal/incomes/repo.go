package incomes

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an incomes repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, income *models.Income) (*models.Income, error) {
	if err := r.db.WithContext(ctx).Create(income).Error; err != nil {
		return nil, err
	}
	return income, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Income, error) {
	var income models.Income
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&income).Error
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Income{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Income{})
	return result.RowsAffected, result.Error
}

func (r *repository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Income, error) {
	var rows []models.Income
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Summarize(ctx context.Context, storeID uuid.UUID) (*IncomeSummary, error) {
	var result struct {
		Total decimal.Decimal
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("store_id = ?", storeID).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &IncomeSummary{
		StoreID: storeID,
		Total:   result.Total,
		Count:   result.Count,
	}, nil
}
