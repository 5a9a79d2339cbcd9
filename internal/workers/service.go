package workers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
)

type service struct {
	repo Repository
}

// NewService builds the workers service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("workers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateWorker(ctx context.Context, input CreateWorkerInput) (*WorkerView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "worker name is required")
	}
	if input.DailyWage != nil && !input.DailyWage.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "daily wage must be positive")
	}
	for _, storeID := range input.StoreIDs {
		if storeID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id cannot be empty")
		}
	}

	worker, err := s.repo.Create(ctx, &models.Worker{
		ID:        uuid.New(),
		Name:      name,
		DailyWage: input.DailyWage,
	}, input.StoreIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create worker")
	}

	view := toView(*worker)
	view.StoreIDs = input.StoreIDs
	if view.StoreIDs == nil {
		view.StoreIDs = []uuid.UUID{}
	}
	return &view, nil
}

func (s *service) GetWorker(ctx context.Context, id uuid.UUID) (*WorkerView, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "worker id required")
	}
	worker, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "worker not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load worker")
	}
	view := toView(*worker)
	return &view, nil
}

func (s *service) ListWorkers(ctx context.Context) ([]WorkerView, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list workers")
	}
	views := make([]WorkerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toView(row))
	}
	return views, nil
}

func (s *service) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "worker id required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "worker has recorded history")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "worker not found")
	}
	return nil
}

func (s *service) ListWages(ctx context.Context, workerID uuid.UUID, from, to *time.Time) ([]WageView, error) {
	if workerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "worker id required")
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "range end precedes start")
	}
	rows, err := s.repo.ListWages(ctx, workerID, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wages")
	}
	views := make([]WageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, WageView{
			ID:          row.ID,
			WorkerID:    row.WorkerID,
			WorkShiftID: row.WorkShiftID,
			Date:        row.Date,
			Amount:      row.Amount,
		})
	}
	return views, nil
}

func toView(worker models.Worker) WorkerView {
	storeIDs := make([]uuid.UUID, 0, len(worker.Stores))
	for _, store := range worker.Stores {
		storeIDs = append(storeIDs, store.ID)
	}
	return WorkerView{
		ID:        worker.ID,
		Name:      worker.Name,
		DailyWage: worker.DailyWage,
		StoreIDs:  storeIDs,
		CreatedAt: worker.CreatedAt,
	}
}
