package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
	"github.com/mfekete/backoffice-backend/pkg/outbox"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	ob := outbox.NewService(outbox.NewRepository(gdb), nil)
	svc, err := NewService(NewRepository(gdb), gormTxRunner{db: gdb}, ob, nil)
	require.NoError(t, err)
	return svc, gdb
}

func placeInput(storeID uuid.UUID, items ...PlaceOrderItemInput) PlaceOrderInput {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return PlaceOrderInput{StoreID: storeID, Items: items, Total: total}
}

func TestPlaceOrderDecrementsStockAndEmitsEvent(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, gdb, 10, decimal.RequireFromString("4.00"))

	view, err := svc.PlaceOrder(ctx, placeInput(product.StoreID, PlaceOrderItemInput{
		ProductID: product.ID,
		Quantity:  3,
		Price:     decimal.RequireFromString("4.00"),
	}))
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("12.00")))

	var reloaded models.Product
	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 7, reloaded.Stock)

	var eventCount int64
	require.NoError(t, gdb.Model(&models.OutboxEvent{}).Count(&eventCount).Error)
	assert.EqualValues(t, 1, eventCount)
}

func TestPlaceOrderRollsBackWhenAnyProductMissing(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, gdb, 10, decimal.NewFromInt(4))

	_, err := svc.PlaceOrder(ctx, placeInput(product.StoreID,
		PlaceOrderItemInput{ProductID: product.ID, Quantity: 2, Price: decimal.NewFromInt(4)},
		PlaceOrderItemInput{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(9)},
	))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	// nothing from the failed placement may remain
	var orderCount, itemCount, eventCount int64
	require.NoError(t, gdb.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, gdb.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.NoError(t, gdb.Model(&models.OutboxEvent{}).Count(&eventCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, eventCount)

	var reloaded models.Product
	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 10, reloaded.Stock)
}

func TestPlaceOrderInsufficientStockIsStateConflict(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, gdb, 5, decimal.NewFromInt(2))

	_, err := svc.PlaceOrder(ctx, placeInput(product.StoreID, PlaceOrderItemInput{
		ProductID: product.ID, Quantity: 3, Price: decimal.NewFromInt(2),
	}))
	require.NoError(t, err)

	var reloaded models.Product
	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)

	_, err = svc.PlaceOrder(ctx, placeInput(product.StoreID, PlaceOrderItemInput{
		ProductID: product.ID, Quantity: 3, Price: decimal.NewFromInt(2),
	}))
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeStateConflict))

	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)
}

func TestOrderItemPriceIsSnapshotNotCatalogPrice(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, gdb, 10, decimal.RequireFromString("4.00"))

	view, err := svc.PlaceOrder(ctx, placeInput(product.StoreID, PlaceOrderItemInput{
		ProductID: product.ID, Quantity: 1, Price: decimal.RequireFromString("3.50"),
	}))
	require.NoError(t, err)

	// raising the catalog price later must not rewrite the order line
	require.NoError(t, gdb.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("9.99")).Error)

	reloaded, err := svc.GetOrder(ctx, view.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.True(t, reloaded.Items[0].Price.Equal(decimal.RequireFromString("3.50")))
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, PlaceOrderInput{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.PlaceOrder(ctx, PlaceOrderInput{
		StoreID: uuid.New(),
		Items:   []PlaceOrderItemInput{{ProductID: uuid.New(), Quantity: 0, Price: decimal.NewFromInt(1)}},
		Total:   decimal.NewFromInt(1),
	})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestRevenueTodayCountsOnlyToday(t *testing.T) {
	gdb := newTestDB(t)
	ob := outbox.NewService(outbox.NewRepository(gdb), nil)
	svc, err := NewService(NewRepository(gdb), gormTxRunner{db: gdb}, ob, nil)
	require.NoError(t, err)
	ctx := context.Background()

	product := seedProduct(t, gdb, 100, decimal.NewFromInt(5))

	_, err = svc.PlaceOrder(ctx, placeInput(product.StoreID, PlaceOrderItemInput{
		ProductID: product.ID, Quantity: 2, Price: decimal.NewFromInt(5),
	}))
	require.NoError(t, err)

	view, err := svc.RevenueToday(ctx, product.StoreID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, view.OrderCount)
	assert.True(t, view.Revenue.Equal(decimal.NewFromInt(10)))
}
