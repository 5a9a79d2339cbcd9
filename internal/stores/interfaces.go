package stores

import (
	"context"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

// Repository defines persistence operations for stores.
type Repository interface {
	Create(ctx context.Context, store *models.Store) (*models.Store, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Store, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service defines the store operations exposed over HTTP.
type Service interface {
	CreateStore(ctx context.Context, input CreateStoreInput) (*StoreView, error)
	ListStores(ctx context.Context, ownerID uuid.UUID) ([]StoreView, error)
	DeleteStore(ctx context.Context, ownerID, storeID uuid.UUID) error
}
