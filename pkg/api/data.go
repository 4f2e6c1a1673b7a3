package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/cloudstore/internal/models"
)

// CreateRecordRequest тело POST запроса к data endpoint
type CreateRecordRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdateRecordRequest тело PUT запроса к data endpoint.
// Изменить можно только value, key и id неизменяемы.
type UpdateRecordRequest struct {
	Value string `json:"value"`
	ID    int64  `json:"id"`
}

// RecordListResponse ответ на GET запрос без id
type RecordListResponse struct {
	Data []models.DataRecord `json:"data"`
}

// Validate проверяет схему ответа
func (r *RecordListResponse) Validate() error {
	if r.Data == nil {
		return errors.New("data field is missing")
	}
	for i := range r.Data {
		if err := r.Data[i].Validate(); err != nil {
			return fmt.Errorf("data[%d]: %w", i, err)
		}
	}
	return nil
}

// DeleteRecordResponse ответ на DELETE запрос.
// Тело ответа клиентом не используется, но сервер может его вернуть.
type DeleteRecordResponse struct {
	Success bool `json:"success"`
}
