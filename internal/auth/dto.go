package auth

import (
	"time"

	"github.com/google/uuid"
)

// LoginInput carries the credentials submitted to POST /auth/login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserView  `json:"user"`
}

// UserView is the sanitized account representation returned to clients.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}
