package shifts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a shifts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateShift(ctx context.Context, shift *models.WorkShift) (*models.WorkShift, error) {
	if err := r.db.WithContext(ctx).Omit("Wage").Create(shift).Error; err != nil {
		return nil, err
	}
	return shift, nil
}

func (r *repository) CreateWage(ctx context.Context, wage *models.Wage) (*models.Wage, error) {
	if err := r.db.WithContext(ctx).Create(wage).Error; err != nil {
		return nil, err
	}
	return wage, nil
}

func (r *repository) FindWorker(ctx context.Context, workerID uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).Where("id = ?", workerID).First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkShift, error) {
	var shift models.WorkShift
	err := r.db.WithContext(ctx).
		Preload("Wage").
		Where("id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *repository) List(ctx context.Context, filters ShiftFilters) ([]models.WorkShift, error) {
	query := r.db.WithContext(ctx).Model(&models.WorkShift{}).Preload("Wage")
	if filters.StoreID != nil {
		query = query.Where("store_id = ?", *filters.StoreID)
	}
	if filters.WorkerID != nil {
		query = query.Where("worker_id = ?", *filters.WorkerID)
	}
	if filters.Date != nil {
		query = query.Where("date = ?", *filters.Date)
	}

	var rows []models.WorkShift
	err := query.Order("date DESC").Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WorkShift{})
	return result.RowsAffected, result.Error
}
