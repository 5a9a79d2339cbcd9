package workers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a workers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, worker *models.Worker, storeIDs []uuid.UUID) (*models.Worker, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(worker).Error; err != nil {
			return err
		}
		for _, storeID := range storeIDs {
			err := tx.Exec(
				"INSERT INTO store_workers (store_id, worker_id) VALUES (?, ?)",
				storeID, worker.ID,
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return worker, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).
		Preload("Stores").
		Where("id = ?", id).
		First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *repository) List(ctx context.Context) ([]models.Worker, error) {
	var rows []models.Worker
	err := r.db.WithContext(ctx).
		Preload("Stores").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM store_workers WHERE worker_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Worker{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

func (r *repository) ListWages(ctx context.Context, workerID uuid.UUID, from, to *time.Time) ([]models.Wage, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Wage{}).
		Where("worker_id = ?", workerID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var rows []models.Wage
	err := query.Order("date DESC").Order("created_at DESC").Find(&rows).Error
	return rows, err
}
