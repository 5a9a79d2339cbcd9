package shifts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	"github.com/mfekete/backoffice-backend/pkg/enums"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/outbox"
)

const shiftsDDL = `
CREATE TABLE workers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    daily_wage NUMERIC,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE work_shifts (
    id TEXT PRIMARY KEY,
    worker_id TEXT NOT NULL,
    store_id TEXT NOT NULL,
    date DATETIME NOT NULL,
    note TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE wages (
    id TEXT PRIMARY KEY,
    worker_id TEXT NOT NULL,
    work_shift_id TEXT NOT NULL UNIQUE,
    date DATETIME NOT NULL,
    amount NUMERIC NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE outbox_events (
    id TEXT PRIMARY KEY,
    event_type TEXT NOT NULL,
    aggregate_type TEXT NOT NULL,
    aggregate_id TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    published_at DATETIME,
    attempt_count INTEGER NOT NULL DEFAULT 0,
    last_error TEXT
);`

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	dsn := "file:shifts_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Exec(shiftsDDL).Error)

	ob := outbox.NewService(outbox.NewRepository(gdb), nil)
	svc, err := NewService(NewRepository(gdb), gormTxRunner{db: gdb}, ob, nil)
	require.NoError(t, err)
	return svc, gdb
}

func seedWorker(t *testing.T, gdb *gorm.DB, wage *decimal.Decimal) models.Worker {
	t.Helper()
	worker := models.Worker{
		ID:        uuid.New(),
		Name:      "Worker",
		DailyWage: wage,
	}
	require.NoError(t, gdb.Omit("Stores").Create(&worker).Error)
	return worker
}

func TestRecordShiftAccruesWageSnapshot(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	rate := decimal.RequireFromString("120.00")
	worker := seedWorker(t, gdb, &rate)
	storeID := uuid.New()

	view, err := svc.RecordShift(ctx, RecordShiftInput{
		WorkerID: worker.ID,
		StoreID:  storeID,
		Date:     time.Date(2025, 8, 12, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, view.Wage)
	assert.True(t, view.Wage.Amount.Equal(rate))
	// recorded against midnight UTC regardless of submitted clock time
	assert.Equal(t, time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC), view.Date)

	var wage models.Wage
	require.NoError(t, gdb.First(&wage, "work_shift_id = ?", view.ID).Error)
	assert.True(t, wage.Amount.Equal(rate))

	var eventCount int64
	require.NoError(t, gdb.Model(&models.OutboxEvent{}).
		Where("event_type = ?", enums.EventShiftRecorded).
		Count(&eventCount).Error)
	assert.EqualValues(t, 1, eventCount)
}

func TestRecordShiftWithoutDailyWageSkipsWage(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	worker := seedWorker(t, gdb, nil)

	view, err := svc.RecordShift(ctx, RecordShiftInput{
		WorkerID: worker.ID,
		StoreID:  uuid.New(),
		Date:     time.Now(),
	})
	require.NoError(t, err)
	assert.Nil(t, view.Wage)

	var wageCount int64
	require.NoError(t, gdb.Model(&models.Wage{}).Count(&wageCount).Error)
	assert.Zero(t, wageCount)
}

func TestRecordShiftUnknownWorkerRollsBack(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	_, err := svc.RecordShift(ctx, RecordShiftInput{
		WorkerID: uuid.New(),
		StoreID:  uuid.New(),
		Date:     time.Now(),
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	var shiftCount, eventCount int64
	require.NoError(t, gdb.Model(&models.WorkShift{}).Count(&shiftCount).Error)
	require.NoError(t, gdb.Model(&models.OutboxEvent{}).Count(&eventCount).Error)
	assert.Zero(t, shiftCount)
	assert.Zero(t, eventCount)
}

func TestWageSurvivesRateChange(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	rate := decimal.RequireFromString("100.00")
	worker := seedWorker(t, gdb, &rate)

	view, err := svc.RecordShift(ctx, RecordShiftInput{
		WorkerID: worker.ID,
		StoreID:  uuid.New(),
		Date:     time.Now(),
	})
	require.NoError(t, err)

	// raising the rate must not rewrite previously accrued wages
	require.NoError(t, gdb.Model(&models.Worker{}).
		Where("id = ?", worker.ID).
		Update("daily_wage", decimal.RequireFromString("150.00")).Error)

	var wage models.Wage
	require.NoError(t, gdb.First(&wage, "work_shift_id = ?", view.ID).Error)
	assert.True(t, wage.Amount.Equal(decimal.RequireFromString("100.00")))
}

func TestDeleteShiftLeavesWageAndIsNotIdempotent(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	rate := decimal.RequireFromString("90.00")
	worker := seedWorker(t, gdb, &rate)

	view, err := svc.RecordShift(ctx, RecordShiftInput{
		WorkerID: worker.ID,
		StoreID:  uuid.New(),
		Date:     time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShift(ctx, view.ID))

	var shiftCount, wageCount int64
	require.NoError(t, gdb.Model(&models.WorkShift{}).Count(&shiftCount).Error)
	require.NoError(t, gdb.Model(&models.Wage{}).Count(&wageCount).Error)
	assert.Zero(t, shiftCount)
	assert.EqualValues(t, 1, wageCount)

	var deletedEvents int64
	require.NoError(t, gdb.Model(&models.OutboxEvent{}).
		Where("event_type = ?", enums.EventShiftDeleted).
		Count(&deletedEvents).Error)
	assert.EqualValues(t, 1, deletedEvents)

	err = svc.DeleteShift(ctx, view.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestListShiftsFilters(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	worker := seedWorker(t, gdb, nil)
	other := seedWorker(t, gdb, nil)
	storeID := uuid.New()
	day := time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)

	for _, in := range []RecordShiftInput{
		{WorkerID: worker.ID, StoreID: storeID, Date: day},
		{WorkerID: other.ID, StoreID: storeID, Date: day.AddDate(0, 0, 1)},
		{WorkerID: worker.ID, StoreID: uuid.New(), Date: day},
	} {
		_, err := svc.RecordShift(ctx, in)
		require.NoError(t, err)
	}

	byStoreAndDate, err := svc.ListShifts(ctx, ShiftFilters{StoreID: &storeID, Date: &day})
	require.NoError(t, err)
	assert.Len(t, byStoreAndDate, 1)

	byWorker, err := svc.ListShifts(ctx, ShiftFilters{WorkerID: &worker.ID})
	require.NoError(t, err)
	assert.Len(t, byWorker, 2)

	_, err = svc.ListShifts(ctx, ShiftFilters{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}
