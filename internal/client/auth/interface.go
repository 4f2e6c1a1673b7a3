package auth

import (
	"context"

	"github.com/iudanet/cloudstore/internal/models"
	pkgapi "github.com/iudanet/cloudstore/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the authentication operations of the client.
// Register and Login store the issued token in the session holder,
// GetProfile reads it, Logout removes it.
type Service interface {
	// Register создает аккаунт и сохраняет выданный токен
	Register(ctx context.Context, name, email, password string) (*pkgapi.AuthResponse, error)

	// Login выполняет вход и сохраняет выданный токен
	Login(ctx context.Context, email, password string) (*pkgapi.AuthResponse, error)

	// GetProfile возвращает профиль владельца текущего токена.
	// Без токена возвращает api.ErrNoSession, запрос не отправляется.
	GetProfile(ctx context.Context) (*models.User, error)

	// Logout удаляет локальную сессию. Сервер не уведомляется.
	Logout(ctx context.Context)

	// Token возвращает текущий токен сессии
	Token() (string, bool)

	// HasSession сообщает, есть ли сохраненный токен (валидность не проверяется)
	HasSession() bool
}
