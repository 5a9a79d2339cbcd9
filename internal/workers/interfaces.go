package workers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

// Repository defines persistence operations for workers and their wages.
type Repository interface {
	Create(ctx context.Context, worker *models.Worker, storeIDs []uuid.UUID) (*models.Worker, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	List(ctx context.Context) ([]models.Worker, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListWages(ctx context.Context, workerID uuid.UUID, from, to *time.Time) ([]models.Wage, error)
}

// Service defines the worker operations exposed over HTTP.
type Service interface {
	CreateWorker(ctx context.Context, input CreateWorkerInput) (*WorkerView, error)
	GetWorker(ctx context.Context, id uuid.UUID) (*WorkerView, error)
	ListWorkers(ctx context.Context) ([]WorkerView, error)
	DeleteWorker(ctx context.Context, id uuid.UUID) error
	ListWages(ctx context.Context, workerID uuid.UUID, from, to *time.Time) ([]WageView, error)
}
