package orders

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
	"github.com/mfekete/backoffice-backend/pkg/pagination"
)

const ordersDDL = `
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
CREATE TABLE order_items (
    id TEXT PRIMARY KEY,
    order_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    price NUMERIC NOT NULL,
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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:orders_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Exec(ordersDDL).Error)
	return gdb
}

func seedProduct(t *testing.T, gdb *gorm.DB, stock int, price decimal.Decimal) models.Product {
	t.Helper()
	product := models.Product{
		ID:      uuid.New(),
		StoreID: uuid.New(),
		Name:    "Test Product",
		Price:   price,
		Stock:   stock,
	}
	require.NoError(t, gdb.Create(&product).Error)
	return product
}

func TestDecrementStockGuardsAgainstOverdraw(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	product := seedProduct(t, gdb, 10, decimal.NewFromInt(4))

	affected, err := repo.DecrementStock(ctx, product.ID, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DecrementStock(ctx, product.ID, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	var reloaded models.Product
	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 3, reloaded.Stock)

	// 3 left, asking for 4 must not touch the row
	affected, err = repo.DecrementStock(ctx, product.ID, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 3, reloaded.Stock)
}

func TestDecrementStockMissingProduct(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	affected, err := repo.DecrementStock(ctx, uuid.New(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	exists, err := repo.ProductExists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListByStorePaginates(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	storeID := uuid.New()
	base := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		order := models.Order{
			ID:        uuid.New(),
			StoreID:   storeID,
			Total:     decimal.NewFromInt(int64(10 + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, gdb.Create(&order).Error)
	}

	first, err := repo.ListByStore(ctx, storeID, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first.Orders, 2)
	require.NotEmpty(t, first.NextCursor)
	assert.True(t, first.Orders[0].CreatedAt.After(first.Orders[1].CreatedAt))

	second, err := repo.ListByStore(ctx, storeID, pagination.Params{Limit: 2, Cursor: first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Orders, 1)
	assert.Empty(t, second.NextCursor)
}

func TestSumTotalsWindowsByCreatedAt(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	storeID := uuid.New()
	today := time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)

	inWindow := []models.Order{
		{ID: uuid.New(), StoreID: storeID, Total: decimal.RequireFromString("12.50"), CreatedAt: today.Add(9 * time.Hour)},
		{ID: uuid.New(), StoreID: storeID, Total: decimal.RequireFromString("7.25"), CreatedAt: today.Add(15 * time.Hour)},
	}
	outOfWindow := models.Order{
		ID: uuid.New(), StoreID: storeID, Total: decimal.NewFromInt(100), CreatedAt: today.Add(-2 * time.Hour),
	}
	otherStore := models.Order{
		ID: uuid.New(), StoreID: uuid.New(), Total: decimal.NewFromInt(50), CreatedAt: today.Add(10 * time.Hour),
	}
	for _, order := range append(inWindow, outOfWindow, otherStore) {
		o := order
		require.NoError(t, gdb.Create(&o).Error)
	}

	revenue, count, err := repo.SumTotals(ctx, storeID, today, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.True(t, revenue.Equal(decimal.RequireFromString("19.75")), "got %s", revenue)
}
