package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cloudstore/internal/client/storage"
)

var sessionKey = []byte(storage.SessionKey)

// SaveToken stores the session token
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(sessionKey, []byte(token)); err != nil {
			return fmt.Errorf("failed to save session token: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the stored session token
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var token string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(sessionKey)
		if len(data) == 0 {
			return storage.ErrSessionNotFound
		}

		// Копируем: память bbolt валидна только внутри транзакции
		token = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteToken removes the stored session token (logout)
func (s *Storage) DeleteToken(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(sessionKey) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session token: %w", err)
		}

		return nil
	})
}
