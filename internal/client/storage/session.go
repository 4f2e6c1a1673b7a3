package storage

import (
	"context"
)

// SessionKey is the fixed name under which the session token is persisted
const SessionKey = "cloudstore_token"

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines the durable store for the session token on the client.
// It keeps the raw token string and performs no validation of it.
type SessionStorage interface {
	// SaveToken stores the token, overwriting any previous value
	SaveToken(ctx context.Context, token string) error

	// GetToken returns the stored token
	// Returns ErrSessionNotFound if no token is stored
	GetToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored token (logout)
	// Returns ErrSessionNotFound if no token is stored
	DeleteToken(ctx context.Context) error
}
