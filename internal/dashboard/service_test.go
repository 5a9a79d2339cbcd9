package dashboard

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
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
)

const dashboardDDL = `
CREATE TABLE products (
    id TEXT PRIMARY KEY,
    store_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price NUMERIC NOT NULL,
    stock INTEGER NOT NULL DEFAULT 0,
    image_url TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE orders (
    id TEXT PRIMARY KEY,
    store_id TEXT NOT NULL,
    total NUMERIC NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE incomes (
    id TEXT PRIMARY KEY,
    store_id TEXT NOT NULL,
    amount NUMERIC NOT NULL,
    date DATETIME NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE expenses (
    id TEXT PRIMARY KEY,
    store_id TEXT NOT NULL,
    amount NUMERIC NOT NULL,
    date DATETIME NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:dashboard_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Exec(dashboardDDL).Error)
	return gdb
}

func TestGetDashboardAggregates(t *testing.T) {
	gdb := newTestDB(t)
	svc, err := NewService(NewRepository(gdb), 5)
	require.NoError(t, err)

	storeID := uuid.New()
	now := time.Now().UTC()

	// two orders today, one yesterday
	for _, order := range []models.Order{
		{ID: uuid.New(), StoreID: storeID, Total: decimal.RequireFromString("10.00"), CreatedAt: now},
		{ID: uuid.New(), StoreID: storeID, Total: decimal.RequireFromString("5.50"), CreatedAt: now},
		{ID: uuid.New(), StoreID: storeID, Total: decimal.NewFromInt(99), CreatedAt: now.AddDate(0, 0, -1)},
	} {
		o := order
		require.NoError(t, gdb.Create(&o).Error)
	}

	require.NoError(t, gdb.Create(&models.Income{
		ID: uuid.New(), StoreID: storeID, Amount: decimal.NewFromInt(200), Date: now,
	}).Error)
	require.NoError(t, gdb.Create(&models.Expense{
		ID: uuid.New(), StoreID: storeID, Amount: decimal.NewFromInt(80), Date: now,
	}).Error)

	// stock 2 is low, stock 9 is not
	for _, stock := range []int{2, 9} {
		require.NoError(t, gdb.Create(&models.Product{
			ID: uuid.New(), StoreID: storeID, Name: "P", Price: decimal.NewFromInt(1), Stock: stock,
		}).Error)
	}

	view, err := svc.GetDashboard(context.Background(), storeID)
	require.NoError(t, err)
	assert.True(t, view.RevenueToday.Equal(decimal.RequireFromString("15.50")), "got %s", view.RevenueToday)
	assert.True(t, view.IncomeTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, view.ExpenseTotal.Equal(decimal.NewFromInt(80)))
	assert.EqualValues(t, 1, view.LowStockCount)
}

func TestGetDashboardEmptyStoreIsAllZeros(t *testing.T) {
	gdb := newTestDB(t)
	svc, err := NewService(NewRepository(gdb), 5)
	require.NoError(t, err)

	view, err := svc.GetDashboard(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, view.RevenueToday.IsZero())
	assert.True(t, view.IncomeTotal.IsZero())
	assert.True(t, view.ExpenseTotal.IsZero())
	assert.Zero(t, view.LowStockCount)
}

func TestGetDashboardRequiresStore(t *testing.T) {
	svc, err := NewService(NewRepository(newTestDB(t)), 5)
	require.NoError(t, err)

	_, err = svc.GetDashboard(context.Background(), uuid.Nil)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}
