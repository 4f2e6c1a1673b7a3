package data

import (
	"context"

	"github.com/iudanet/cloudstore/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service defines CRUD operations over the records of the session owner.
// Every method requires a session token; without it api.ErrNoSession is
// returned and nothing is sent.
type Service interface {
	// GetAll возвращает все записи владельца в порядке сервера
	GetAll(ctx context.Context) ([]models.DataRecord, error)
	// GetByID возвращает одну запись
	GetByID(ctx context.Context, id int64) (*models.DataRecord, error)
	// Create создает запись key/value
	Create(ctx context.Context, key, value string) (*models.DataRecord, error)
	// Update заменяет value записи
	Update(ctx context.Context, id int64, value string) (*models.DataRecord, error)
	// Delete удаляет запись
	Delete(ctx context.Context, id int64) error
}
