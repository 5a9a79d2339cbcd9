package incomes

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

	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
)

const incomesDDL = `
CREATE TABLE incomes (
    id TEXT PRIMARY KEY,
    store_id TEXT NOT NULL,
    amount NUMERIC NOT NULL,
    date DATETIME NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

func newTestService(t *testing.T) Service {
	t.Helper()
	dsn := "file:incomes_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Exec(incomesDDL).Error)

	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc
}

func TestIncomeLifecycleAndSummary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	storeID := uuid.New()
	day := time.Date(2025, 8, 12, 18, 45, 0, 0, time.UTC)

	first, err := svc.CreateIncome(ctx, CreateIncomeInput{
		StoreID: storeID,
		Amount:  decimal.RequireFromString("150.00"),
		Date:    day,
	})
	require.NoError(t, err)
	// stored against midnight UTC
	assert.Equal(t, time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC), first.Date)

	_, err = svc.CreateIncome(ctx, CreateIncomeInput{
		StoreID: storeID,
		Amount:  decimal.RequireFromString("49.50"),
		Date:    day.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	summary, err := svc.SummarizeIncomes(ctx, storeID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.Count)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("199.50")), "got %s", summary.Total)

	newAmount := decimal.RequireFromString("175.00")
	updated, err := svc.UpdateIncome(ctx, first.ID, UpdateIncomeInput{Amount: &newAmount})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(newAmount))

	require.NoError(t, svc.DeleteIncome(ctx, first.ID))
	err = svc.DeleteIncome(ctx, first.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	listed, err := svc.ListIncomes(ctx, storeID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestIncomeValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateIncome(ctx, CreateIncomeInput{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.CreateIncome(ctx, CreateIncomeInput{
		StoreID: uuid.New(),
		Amount:  decimal.NewFromInt(-5),
		Date:    time.Now(),
	})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.UpdateIncome(ctx, uuid.New(), UpdateIncomeInput{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	amount := decimal.NewFromInt(5)
	_, err = svc.UpdateIncome(ctx, uuid.New(), UpdateIncomeInput{Amount: &amount})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}
