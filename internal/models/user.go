package models

import (
	"errors"
	"time"
)

// User представляет пользователя CloudStore так, как его возвращает auth endpoint.
// Клиент никогда не изменяет пользователя локально.
type User struct {
	Name      string `json:"name"`       // отображаемое имя
	Email     string `json:"email"`      // email, уникальный на сервере
	CreatedAt string `json:"created_at"` // время регистрации (ISO-8601)
	ID        int64  `json:"id"`         // идентификатор, назначенный сервером
}

// Validate проверяет, что ответ сервера содержит корректного пользователя
func (u *User) Validate() error {
	if u == nil {
		return errors.New("user is missing")
	}
	if u.ID <= 0 {
		return errors.New("user id must be positive")
	}
	if u.Email == "" {
		return errors.New("user email is empty")
	}
	if _, err := ParseTimestamp(u.CreatedAt); err != nil {
		return errors.New("user created_at: " + err.Error())
	}
	return nil
}

// CreatedTime возвращает время регистрации
func (u *User) CreatedTime() (time.Time, error) {
	return ParseTimestamp(u.CreatedAt)
}
