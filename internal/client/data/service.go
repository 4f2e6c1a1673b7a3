package data

import (
	"context"
	"log/slog"

	"github.com/iudanet/cloudstore/internal/client/api"
	"github.com/iudanet/cloudstore/internal/models"
	pkgapi "github.com/iudanet/cloudstore/pkg/api"
)

// DataAPI is the part of the HTTP client used by the data service
type DataAPI interface {
	ListRecords(ctx context.Context, token string) ([]models.DataRecord, error)
	GetRecord(ctx context.Context, token string, id int64) (*models.DataRecord, error)
	CreateRecord(ctx context.Context, token string, req pkgapi.CreateRecordRequest) (*models.DataRecord, error)
	UpdateRecord(ctx context.Context, token string, req pkgapi.UpdateRecordRequest) (*models.DataRecord, error)
	DeleteRecord(ctx context.Context, token string, id int64) error
}

// TokenSource отдает текущий токен сессии
type TokenSource interface {
	Read() (string, bool)
}

// service handles record operations for the current session
type service struct {
	apiClient DataAPI
	tokens    TokenSource
	logger    *slog.Logger
}

// NewService creates a new data service
func NewService(apiClient DataAPI, tokens TokenSource, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient: apiClient,
		tokens:    tokens,
		logger:    logger,
	}
}

// token возвращает токен или ErrNoSession
func (s *service) token() (string, error) {
	token, ok := s.tokens.Read()
	if !ok {
		return "", api.ErrNoSession
	}
	return token, nil
}

func (s *service) GetAll(ctx context.Context) ([]models.DataRecord, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.apiClient.ListRecords(ctx, token)
}

func (s *service) GetByID(ctx context.Context, id int64) (*models.DataRecord, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.apiClient.GetRecord(ctx, token, id)
}

// Create создает запись. Пустой key не проверяется локально,
// сервер отвечает "Missing key or value".
func (s *service) Create(ctx context.Context, key, value string) (*models.DataRecord, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}

	record, err := s.apiClient.CreateRecord(ctx, token, pkgapi.CreateRecordRequest{
		Key:   key,
		Value: value,
	})
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "record created", slog.Int64("id", record.ID))
	return record, nil
}

func (s *service) Update(ctx context.Context, id int64, value string) (*models.DataRecord, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}

	record, err := s.apiClient.UpdateRecord(ctx, token, pkgapi.UpdateRecordRequest{
		ID:    id,
		Value: value,
	})
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "record updated", slog.Int64("id", record.ID))
	return record, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	token, err := s.token()
	if err != nil {
		return err
	}

	if err := s.apiClient.DeleteRecord(ctx, token, id); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "record deleted", slog.Int64("id", id))
	return nil
}
