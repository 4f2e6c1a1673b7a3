package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/cloudstore/internal/models"
)

// Значения поля action в POST запросах к auth endpoint
const (
	ActionRegister = "register"
	ActionLogin    = "login"
)

// HeaderAuthToken заголовок, в котором передается токен сессии
const HeaderAuthToken = "X-Auth-Token"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Action   string `json:"action"`   // всегда ActionRegister
	Name     string `json:"name"`     // отображаемое имя
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только по HTTPS)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Action   string `json:"action"` // всегда ActionLogin
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ на успешную регистрацию или логин
type AuthResponse struct {
	Token string      `json:"token"` // токен сессии для заголовка X-Auth-Token
	User  models.User `json:"user"`
}

// Validate проверяет схему ответа
func (r *AuthResponse) Validate() error {
	if r.Token == "" {
		return errors.New("token is empty")
	}
	if err := r.User.Validate(); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	return nil
}

// ProfileResponse представляет ответ на GET запрос профиля
type ProfileResponse struct {
	User *models.User `json:"user"`
}

// Validate проверяет схему ответа
func (r *ProfileResponse) Validate() error {
	if r.User == nil {
		return errors.New("user field is missing")
	}
	if err := r.User.Validate(); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	return nil
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
