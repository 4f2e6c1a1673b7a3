package api

import (
	"errors"
	"fmt"
)

// ErrNoSession возвращается, когда операция требует токен сессии, а он не сохранен.
// Запрос на сервер в этом случае не отправляется.
var ErrNoSession = errors.New("no token found")

// Виды серверных ошибок. ServerError.Kind содержит один из них,
// поэтому проверка делается через errors.Is(err, api.ErrRegistration).
var (
	ErrRegistration   = errors.New("registration failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrProfileFetch   = errors.New("profile fetch failed")
	ErrDataFetch      = errors.New("data fetch failed")
	ErrDataCreate     = errors.New("data create failed")
	ErrDataUpdate     = errors.New("data update failed")
	ErrDataDelete     = errors.New("data delete failed")
)

// ServerError описывает ответ сервера со статусом вне 2xx.
// Error() возвращает ровно сообщение сервера (или fallback операции).
type ServerError struct {
	Kind       error
	Op         string
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Unwrap() error {
	return e.Kind
}

// TransportError describes a failure below HTTP: DNS, connect, timeout, reset.
// No retry is attempted.
type TransportError struct {
	Err error
	Op  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SchemaError означает, что сервер ответил 2xx, но тело не соответствует схеме
type SchemaError struct {
	Op     string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: invalid server response: %s", e.Op, e.Reason)
}

// IsUnauthorized сообщает, что сервер отверг токен (401) или не нашел его владельца (404)
func IsUnauthorized(err error) bool {
	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		return false
	}
	return serverErr.StatusCode == 401 || serverErr.StatusCode == 404
}
