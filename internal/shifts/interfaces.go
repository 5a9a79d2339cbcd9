package shifts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

// Repository defines persistence operations for work shifts and wages.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateShift(ctx context.Context, shift *models.WorkShift) (*models.WorkShift, error)
	CreateWage(ctx context.Context, wage *models.Wage) (*models.Wage, error)
	FindWorker(ctx context.Context, workerID uuid.UUID) (*models.Worker, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.WorkShift, error)
	List(ctx context.Context, filters ShiftFilters) ([]models.WorkShift, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service defines the shift operations exposed over HTTP.
type Service interface {
	RecordShift(ctx context.Context, input RecordShiftInput) (*ShiftView, error)
	ListShifts(ctx context.Context, filters ShiftFilters) ([]ShiftView, error)
	DeleteShift(ctx context.Context, id uuid.UUID) error
}
