// Package testserver is an in-process double of the CloudStore auth and data
// functions. It answers with the same status codes, messages and JSON shapes
// as the production endpoints, issues real HS256 tokens and keeps records per
// owner, so client code can be exercised end-to-end without the network.
package testserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"
)

const (
	// AuthPath и DataPath пути endpoint'ов на сервере
	AuthPath = "/auth"
	DataPath = "/data"

	// DefaultSecret ключ подписи токенов по умолчанию
	DefaultSecret = "dev-secret-key"
	// DefaultTokenTTL время жизни токена, как у production функции
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// Server is a running test double
type Server struct {
	srv      *httptest.Server
	logger   *slog.Logger
	store    *store
	now      func() time.Time
	tokens   tokenIssuer
	requests atomic.Int64
}

// Option настраивает Server
type Option func(*Server)

// WithClock подменяет источник времени (метки записей и exp токенов)
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithTokenTTL задает время жизни выдаваемых токенов
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.tokens.ttl = ttl
	}
}

// WithSecret задает ключ подписи токенов
func WithSecret(secret string) Option {
	return func(s *Server) {
		s.tokens.secret = []byte(secret)
	}
}

// WithLogger задает логгер сервера
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New starts a test double on a loopback port. Call Close when done.
func New(opts ...Option) *Server {
	s := newServer(opts...)
	s.srv = httptest.NewServer(s.routes())
	return s
}

// NewHandler returns the endpoints of a fresh double as an http.Handler,
// mounted at /auth and /data. Used by the local dev server.
func NewHandler(opts ...Option) http.Handler {
	return newServer(opts...).routes()
}

func newServer(opts ...Option) *Server {
	s := &Server{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:  newStore(),
		now:    time.Now,
		tokens: tokenIssuer{
			secret: []byte(DefaultSecret),
			ttl:    DefaultTokenTTL,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tokens.now = s.now
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(AuthPath, corsMiddleware("GET, POST, OPTIONS")(http.HandlerFunc(s.handleAuth)))
	mux.Handle(DataPath, corsMiddleware("GET, POST, PUT, DELETE, OPTIONS")(http.HandlerFunc(s.handleData)))
	mux.HandleFunc(HealthPath, s.handleHealth)

	var handler http.Handler = mux
	handler = loggingMiddleware(s.logger)(handler)
	handler = recoveryMiddleware(s.logger)(handler)
	handler = s.countRequests(handler)
	return handler
}

// Close останавливает сервер
func (s *Server) Close() {
	s.srv.Close()
}

// URL базовый адрес сервера
func (s *Server) URL() string {
	return s.srv.URL
}

// AuthURL адрес auth endpoint
func (s *Server) AuthURL() string {
	return s.srv.URL + AuthPath
}

// DataURL адрес data endpoint
func (s *Server) DataURL() string {
	return s.srv.URL + DataPath
}

// Requests возвращает число запросов, полученных сервером
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// DeleteUser удаляет пользователя, его токены остаются подписанными.
// Нужен для проверки ответа "User not found".
func (s *Server) DeleteUser(id int64) {
	s.store.deleteUser(id)
}

// IssueToken выдает токен для произвольного user_id
func (s *Server) IssueToken(userID int64, email string) (string, error) {
	return s.tokens.issue(userID, email)
}
