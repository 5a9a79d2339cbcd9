package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput carries the fields accepted by POST /products.
type CreateProductInput struct {
	StoreID  uuid.UUID
	Name     string
	Price    decimal.Decimal
	Stock    int
	ImageURL *string
}

// UpdateProductInput carries the optional fields accepted by PUT /products/{id}.
// Nil pointers leave the column untouched.
type UpdateProductInput struct {
	Name     *string
	Price    *decimal.Decimal
	Stock    *int
	ImageURL *string
}

// ProductView is the representation returned to clients.
type ProductView struct {
	ID        uuid.UUID       `json:"id"`
	StoreID   uuid.UUID       `json:"store_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	ImageURL  *string         `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductList wraps the paginated products plus the next page cursor.
type ProductList struct {
	Products   []ProductView `json:"products"`
	NextCursor string        `json:"next_cursor,omitempty"`
}
