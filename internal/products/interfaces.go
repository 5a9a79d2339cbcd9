package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
	"github.com/mfekete/backoffice-backend/pkg/pagination"
)

// Repository defines persistence operations for products.
type Repository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context, storeID uuid.UUID, params pagination.Params, search string) (*ProductList, error)
}

// Service defines the product operations exposed over HTTP.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductView, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, storeID uuid.UUID, params pagination.Params, search string) (*ProductList, error)
}
