// Package session holds the client's single active session token.
//
// A Holder keeps the token in memory and mirrors every change to a durable
// storage.SessionStorage, so a session survives process restarts until logout.
// Holders are plain values: several may coexist (one per account) and they are
// injected into the auth and data clients instead of living in a global.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/cloudstore/internal/client/storage"
)

// ErrEmptyToken is returned by Save for an empty token
var ErrEmptyToken = errors.New("session token is empty")

// Store is the session contract used by the clients
type Store interface {
	// Save stores the token, overwriting any previous one (last write wins)
	Save(ctx context.Context, token string) error
	// Read returns the current token; ok is false when there is none
	Read() (token string, ok bool)
	// Clear removes the token
	Clear(ctx context.Context) error
	// HasSession reports whether a token is stored. No server-side validity check.
	HasSession() bool
}

// Holder is the default Store implementation
type Holder struct {
	storage storage.SessionStorage
	logger  *slog.Logger
	token   string
	mu      sync.RWMutex
}

// Compile-time check that Holder implements Store
var _ Store = (*Holder)(nil)

// NewHolder creates a Holder primed from durable storage.
// A nil storage gives a memory-only holder.
func NewHolder(ctx context.Context, st storage.SessionStorage, logger *slog.Logger) (*Holder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Holder{
		storage: st,
		logger:  logger,
	}

	if st == nil {
		return h, nil
	}

	token, err := st.GetToken(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		// Сессии еще нет
	case err != nil:
		return nil, fmt.Errorf("failed to load session: %w", err)
	default:
		h.token = token
		logger.DebugContext(ctx, "session restored from storage")
	}

	return h, nil
}

// NewMemoryHolder creates a Holder without durable storage
func NewMemoryHolder() *Holder {
	return &Holder{logger: slog.Default()}
}

// Save stores the token in memory and in durable storage
func (h *Holder) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.storage != nil {
		if err := h.storage.SaveToken(ctx, token); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
	}
	h.token = token

	return nil
}

// Read returns the current token
func (h *Holder) Read() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token, h.token != ""
}

// Clear removes the token. The in-memory token is dropped even when
// durable storage fails; the storage error is returned to the caller.
func (h *Holder) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = ""

	if h.storage == nil {
		return nil
	}
	if err := h.storage.DeleteToken(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete persisted session: %w", err)
	}

	return nil
}

// HasSession reports whether a token is held
func (h *Holder) HasSession() bool {
	_, ok := h.Read()
	return ok
}
