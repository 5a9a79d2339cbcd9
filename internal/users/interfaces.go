package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mfekete/backoffice-backend/pkg/db/models"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
