package shifts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	"github.com/mfekete/backoffice-backend/pkg/enums"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/metrics"
	"github.com/mfekete/backoffice-backend/pkg/outbox"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type service struct {
	repo    Repository
	tx      txRunner
	outbox  outboxPublisher
	metrics *metrics.Metrics
}

// NewService builds a shifts service with the required dependencies.
// Metrics may be nil.
func NewService(repo Repository, tx txRunner, ob outboxPublisher, m *metrics.Metrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shifts repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ob == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		outbox:  ob,
		metrics: m,
	}, nil
}

// RecordShift creates the shift and, when the worker has a daily rate, a wage
// snapshot in the same transaction. The wage amount is the rate at recording
// time and is never revisited when the rate changes later.
func (s *service) RecordShift(ctx context.Context, input RecordShiftInput) (*ShiftView, error) {
	if input.WorkerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "worker id required")
	}
	if input.StoreID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	if input.Date.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date required")
	}
	date := normalizeDate(input.Date)

	var (
		created *models.WorkShift
		accrued *models.Wage
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		worker, err := repo.FindWorker(ctx, input.WorkerID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "worker not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load worker")
		}

		shift, err := repo.CreateShift(ctx, &models.WorkShift{
			ID:       uuid.New(),
			WorkerID: input.WorkerID,
			StoreID:  input.StoreID,
			Date:     date,
			Note:     input.Note,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shift")
		}

		if worker.DailyWage != nil {
			wage, err := repo.CreateWage(ctx, &models.Wage{
				ID:          uuid.New(),
				WorkerID:    worker.ID,
				WorkShiftID: shift.ID,
				Date:        date,
				Amount:      *worker.DailyWage,
			})
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create wage")
			}
			accrued = wage
		}

		event := outbox.DomainEvent{
			EventType:     enums.EventShiftRecorded,
			AggregateType: enums.AggregateWorkShift,
			AggregateID:   shift.ID,
			Data: ShiftRecordedEvent{
				ShiftID:    shift.ID,
				WorkerID:   shift.WorkerID,
				StoreID:    shift.StoreID,
				Date:       date.Format("2006-01-02"),
				WageAmount: worker.DailyWage,
			},
		}
		if input.ActorUserID != uuid.Nil {
			event.Actor = &outbox.ActorRef{UserID: input.ActorUserID, StoreID: &input.StoreID}
		}
		if err := s.outbox.Emit(ctx, tx, event); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "emit shift event")
		}

		created = shift
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncShiftsRecorded()
	if accrued != nil {
		s.metrics.IncWagesAccrued()
	}

	created.Wage = accrued
	view := toView(*created)
	return &view, nil
}

func (s *service) ListShifts(ctx context.Context, filters ShiftFilters) ([]ShiftView, error) {
	if filters.StoreID == nil && filters.WorkerID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id or worker id required")
	}
	if filters.Date != nil {
		normalized := normalizeDate(*filters.Date)
		filters.Date = &normalized
	}
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shifts")
	}
	views := make([]ShiftView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toView(row))
	}
	return views, nil
}

// DeleteShift removes the shift row only. Accrued wages are payroll history
// and survive their shift.
func (s *service) DeleteShift(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "shift id required")
	}
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		affected, err := repo.Delete(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete shift")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
		}
		event := outbox.DomainEvent{
			EventType:     enums.EventShiftDeleted,
			AggregateType: enums.AggregateWorkShift,
			AggregateID:   id,
			Data:          ShiftDeletedEvent{ShiftID: id},
		}
		if err := s.outbox.Emit(ctx, tx, event); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "emit shift event")
		}
		return nil
	})
}

// normalizeDate truncates to midnight UTC so equality filters behave across
// drivers.
func normalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toView(shift models.WorkShift) ShiftView {
	view := ShiftView{
		ID:        shift.ID,
		WorkerID:  shift.WorkerID,
		StoreID:   shift.StoreID,
		Date:      shift.Date,
		Note:      shift.Note,
		CreatedAt: shift.CreatedAt,
	}
	if shift.Wage != nil {
		view.Wage = &WageSnapshot{
			ID:     shift.Wage.ID,
			Amount: shift.Wage.Amount,
		}
	}
	return view
}
