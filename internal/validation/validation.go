// Package validation checks user input before the CLI sends it.
// The service clients do not validate: the server's own messages
// ("Missing required fields" etc.) are part of their contract.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EmailPattern упрощенная проверка email: local@domain.tld
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MaxNameLen максимальная длина имени
	MaxNameLen = 100
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MaxKeyLen максимальная длина ключа записи
	MaxKeyLen = 255
)

// ValidateName проверяет имя пользователя
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}
	return nil
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format: %q", email)
	}
	return nil
}

// ValidatePassword проверяет, что пароль задан
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateKey проверяет ключ записи
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if utf8.RuneCountInString(key) > MaxKeyLen {
		return fmt.Errorf("key must not exceed %d characters", MaxKeyLen)
	}
	return nil
}

// ParseID разбирает идентификатор записи из аргумента командной строки
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

// ValidateJSON проверяет, что value является корректным JSON документом
func ValidateJSON(value string) error {
	if !json.Valid([]byte(value)) {
		return fmt.Errorf("value is not valid JSON")
	}
	return nil
}
