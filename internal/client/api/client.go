package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgapi "github.com/iudanet/cloudstore/pkg/api"
)

const (
	// DefaultAuthURL адрес auth функции CloudStore
	DefaultAuthURL = "https://functions.poehali.dev/21b0ffa1-87d6-4c8c-bff5-f9458d088cff"
	// DefaultDataURL адрес data функции CloudStore
	DefaultDataURL = "https://functions.poehali.dev/34121e91-6d34-485d-a7a6-cabc03134f0e"

	// DefaultTimeout таймаут HTTP клиента по умолчанию
	DefaultTimeout = 30 * time.Second

	headerRequestID = "X-Request-Id"
	maxRedirects    = 10
)

// Client представляет HTTP клиент для auth и data endpoint'ов
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	authURL    string
	dataURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient подменяет HTTP клиент (например, в тестах)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout задает таймаут HTTP клиента
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger задает логгер клиента
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient создает новый API клиент
func NewClient(authURL, dataURL string, opts ...Option) *Client {
	c := &Client{
		authURL: authURL,
		dataURL: dataURL,
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				// Токен сессии сохраняется при редиректе
				if token := via[0].Header.Get(pkgapi.HeaderAuthToken); token != "" {
					req.Header.Set(pkgapi.HeaderAuthToken, token)
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AuthURL возвращает адрес auth endpoint
func (c *Client) AuthURL() string {
	return c.authURL
}

// DataURL возвращает адрес data endpoint
func (c *Client) DataURL() string {
	return c.dataURL
}

// validator реализуют ответы, схема которых проверяется на границе
type validator interface {
	Validate() error
}

// request описывает один HTTP запрос к endpoint'у
type request struct {
	body   any
	result any
	op     operation
	method string
	url    string
	token  string
}

// doRequest выполняет HTTP запрос и классифицирует результат:
// транспортная ошибка, ошибка сервера или ответ, не прошедший проверку схемы
func (c *Client) doRequest(ctx context.Context, r request) error {
	var bodyReader io.Reader
	if r.body != nil {
		jsonData, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set(pkgapi.HeaderAuthToken, r.token)
	}

	logger := c.logger.With(
		slog.String("op", r.op.name),
		slog.String("method", r.method),
		slog.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		return &TransportError{Op: r.op.name, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read response body", slog.Any("error", err))
		return &TransportError{Op: r.op.name, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	logger.DebugContext(ctx, "request completed",
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Int("bytes_read", len(respBody)),
	)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := &ServerError{
			Op:         r.op.name,
			Kind:       r.op.kind,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody, r.op.fallback),
		}
		logger.WarnContext(ctx, "server returned error",
			slog.Int("status", resp.StatusCode),
			slog.String("message", serverErr.Message),
		)
		return serverErr
	}

	if r.result == nil {
		return nil
	}

	// Декодируем успешный ответ
	if err := json.Unmarshal(respBody, r.result); err != nil {
		return &SchemaError{Op: r.op.name, Reason: err.Error()}
	}
	if v, ok := r.result.(validator); ok {
		if err := v.Validate(); err != nil {
			return &SchemaError{Op: r.op.name, Reason: err.Error()}
		}
	}

	return nil
}

// errorMessage извлекает сообщение об ошибке из тела ответа.
// Используется поле error, затем message, иначе fallback.
func errorMessage(body []byte, fallback string) string {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return fallback
	}
	if msg := strings.TrimSpace(errResp.Error); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(errResp.Message); msg != "" {
		return msg
	}
	return fallback
}

// requireToken не дает отправить запрос без токена сессии
func requireToken(token string) error {
	if token == "" {
		return ErrNoSession
	}
	return nil
}

// IsTransport сообщает, что ошибка произошла на транспортном уровне
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
