package stores

import (
	"time"

	"github.com/google/uuid"
)

// CreateStoreInput carries the fields accepted by POST /stores.
type CreateStoreInput struct {
	Name    string
	OwnerID uuid.UUID
}

// StoreView is the representation returned to clients.
type StoreView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
