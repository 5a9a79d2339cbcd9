package auth

import "context"

// Service defines the authentication operations exposed over HTTP.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}
