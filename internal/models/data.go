package models

import (
	"errors"
	"fmt"
	"time"
)

// DataRecord представляет одну запись key-value хранилища пользователя.
// Key и ID неизменяемы после создания, Value может быть заменено через update.
// Value непрозрачен для клиента: вызывающий код может хранить в нем сериализованные структуры.
type DataRecord struct {
	Key       string `json:"key"`        // ключ, задается клиентом (не обязательно уникален)
	Value     string `json:"value"`      // значение, задается клиентом
	CreatedAt string `json:"created_at"` // время создания (ISO-8601, назначается сервером)
	UpdatedAt string `json:"updated_at"` // время последнего изменения (ISO-8601, назначается сервером)
	ID        int64  `json:"id"`         // идентификатор, назначенный сервером
}

// Validate проверяет запись, полученную от сервера
func (r *DataRecord) Validate() error {
	if r == nil {
		return errors.New("record is missing")
	}
	if r.ID <= 0 {
		return fmt.Errorf("record id must be positive, got %d", r.ID)
	}
	if r.Key == "" {
		return fmt.Errorf("record %d has empty key", r.ID)
	}
	if _, err := ParseTimestamp(r.CreatedAt); err != nil {
		return fmt.Errorf("record %d created_at: %w", r.ID, err)
	}
	if _, err := ParseTimestamp(r.UpdatedAt); err != nil {
		return fmt.Errorf("record %d updated_at: %w", r.ID, err)
	}
	return nil
}

// CreatedTime возвращает время создания записи
func (r *DataRecord) CreatedTime() (time.Time, error) {
	return ParseTimestamp(r.CreatedAt)
}

// UpdatedTime возвращает время последнего изменения записи
func (r *DataRecord) UpdatedTime() (time.Time, error) {
	return ParseTimestamp(r.UpdatedAt)
}
