package stores

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	pkgerrors "github.com/mfekete/backoffice-backend/pkg/errors"
)

const storesDDL = `
CREATE TABLE stores (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

func newTestService(t *testing.T) Service {
	t.Helper()
	dsn := "file:stores_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Exec(storesDDL).Error)

	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc
}

func TestStoreLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := svc.CreateStore(ctx, CreateStoreInput{Name: "  Corner Shop  ", OwnerID: ownerID})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Corner Shop", created.Name)

	listed, err := svc.ListStores(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// another owner sees nothing
	other, err := svc.ListStores(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, svc.DeleteStore(ctx, ownerID, created.ID))
	err = svc.DeleteStore(ctx, ownerID, created.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestStoreDeleteRequiresOwnership(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := svc.CreateStore(ctx, CreateStoreInput{Name: "Bakery", OwnerID: ownerID})
	require.NoError(t, err)

	err = svc.DeleteStore(ctx, uuid.New(), created.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeForbidden))

	listed, err := svc.ListStores(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestStoreValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateStore(ctx, CreateStoreInput{Name: "   ", OwnerID: uuid.New()})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.CreateStore(ctx, CreateStoreInput{Name: "Shop"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeUnauthorized))

	_, err = svc.ListStores(ctx, uuid.Nil)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeUnauthorized))

	err = svc.DeleteStore(ctx, uuid.New(), uuid.Nil)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	err = svc.DeleteStore(ctx, uuid.New(), uuid.New())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}
