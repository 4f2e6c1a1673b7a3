package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/cloudstore/internal/client/api"
	"github.com/iudanet/cloudstore/internal/client/session"
	"github.com/iudanet/cloudstore/internal/models"
	pkgapi "github.com/iudanet/cloudstore/pkg/api"
)

// AuthAPI is the part of the HTTP client used by the auth service
type AuthAPI interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)
	GetProfile(ctx context.Context, token string) (*models.User, error)
}

// service предоставляет функции авторизации
type service struct {
	apiClient AuthAPI
	session   session.Store
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient AuthAPI, store session.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient: apiClient,
		session:   store,
		logger:    logger,
	}
}

// Register регистрирует нового пользователя.
// Входные данные не проверяются локально: сервер сам отвечает
// "Missing required fields", и это сообщение возвращается как есть.
func (s *service) Register(ctx context.Context, name, email, password string) (*pkgapi.AuthResponse, error) {
	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	if err := s.session.Save(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.Int64("user_id", resp.User.ID))
	return resp, nil
}

// Login выполняет аутентификацию пользователя
func (s *service) Login(ctx context.Context, email, password string) (*pkgapi.AuthResponse, error) {
	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	if err := s.session.Save(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.Int64("user_id", resp.User.ID))
	return resp, nil
}

// GetProfile получает профиль владельца токена
func (s *service) GetProfile(ctx context.Context) (*models.User, error) {
	token, ok := s.session.Read()
	if !ok {
		return nil, api.ErrNoSession
	}

	return s.apiClient.GetProfile(ctx, token)
}

// Logout выполняет выход из системы.
// Ошибка хранилища не мешает выходу: токен в памяти уже удален.
func (s *service) Logout(ctx context.Context) {
	if err := s.session.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to clear persisted session", slog.Any("error", err))
		return
	}
	s.logger.InfoContext(ctx, "logged out")
}

func (s *service) Token() (string, bool) {
	return s.session.Read()
}

func (s *service) HasSession() bool {
	return s.session.HasSession()
}
