package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cloudstore/internal/client/api"
	"github.com/iudanet/cloudstore/internal/client/session"
	"github.com/iudanet/cloudstore/internal/client/storage"
	"github.com/iudanet/cloudstore/internal/client/storage/boltdb"
	"github.com/iudanet/cloudstore/internal/models"
	"github.com/iudanet/cloudstore/internal/testserver"
	pkgapi "github.com/iudanet/cloudstore/pkg/api"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	server  *testserver.Server
	holder  *session.Holder
	service Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	srv := testserver.New()
	t.Cleanup(srv.Close)

	apiClient := api.NewClient(srv.AuthURL(), srv.DataURL(), api.WithLogger(discardLogger()))
	holder := session.NewMemoryHolder()

	return &fixture{
		server:  srv,
		holder:  holder,
		service: NewService(apiClient, holder, discardLogger()),
	}
}

func TestService_RegisterThenGetProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.service.Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	token, ok := f.service.Token()
	require.True(t, ok)
	assert.Equal(t, resp.Token, token)

	user, err := f.service.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, resp.User.ID, user.ID)
}

func TestService_LoginSetsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	f.service.Logout(ctx)
	require.False(t, f.service.HasSession())

	resp, err := f.service.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, f.service.HasSession())
	assert.Equal(t, "Alice", resp.User.Name)
}

func TestService_GetProfileWithoutSession(t *testing.T) {
	f := newFixture(t)

	user, err := f.service.GetProfile(context.Background())
	require.ErrorIs(t, err, api.ErrNoSession)
	assert.Nil(t, user)
	assert.Equal(t, "no token found", err.Error())
	assert.Zero(t, f.server.Requests(), "no request must be sent without a token")
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	requestsBefore := f.server.Requests()

	f.service.Logout(ctx)
	assert.False(t, f.service.HasSession())
	_, ok := f.service.Token()
	assert.False(t, ok)
	assert.Equal(t, requestsBefore, f.server.Requests(), "logout is local only")

	// Повторный выход без сессии не паникует
	f.service.Logout(ctx)
}

func TestService_ServerErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	firstToken, _ := f.service.Token()

	t.Run("duplicate email", func(t *testing.T) {
		_, err := f.service.Register(ctx, "Alice2", "alice@example.com", "other")
		require.Error(t, err)
		assert.Equal(t, "Email already exists", err.Error())
		assert.ErrorIs(t, err, api.ErrRegistration)

		// Неудачная регистрация не трогает сессию
		token, _ := f.service.Token()
		assert.Equal(t, firstToken, token)
	})

	t.Run("missing fields reach the server", func(t *testing.T) {
		_, err := f.service.Register(ctx, "", "", "")
		require.Error(t, err)
		assert.Equal(t, "Missing required fields", err.Error())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		_, err := f.service.Login(ctx, "alice@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
		assert.ErrorIs(t, err, api.ErrAuthentication)
	})

	t.Run("user removed", func(t *testing.T) {
		resp, err := f.service.Login(ctx, "alice@example.com", "secret")
		require.NoError(t, err)
		f.server.DeleteUser(resp.User.ID)

		_, err = f.service.GetProfile(ctx)
		require.Error(t, err)
		assert.Equal(t, "User not found", err.Error())
		assert.ErrorIs(t, err, api.ErrProfileFetch)
		assert.True(t, api.IsUnauthorized(err))
	})
}

func TestService_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	srv := testserver.New()
	defer srv.Close()
	dbPath := filepath.Join(t.TempDir(), "client.db")
	apiClient := api.NewClient(srv.AuthURL(), srv.DataURL(), api.WithLogger(discardLogger()))

	st, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	holder, err := session.NewHolder(ctx, st, discardLogger())
	require.NoError(t, err)

	_, err = NewService(apiClient, holder, discardLogger()).Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Второй запуск клиента
	st2, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = st2.Close() }()
	holder2, err := session.NewHolder(ctx, st2, discardLogger())
	require.NoError(t, err)

	svc := NewService(apiClient, holder2, discardLogger())
	require.True(t, svc.HasSession())

	user, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	svc.Logout(ctx)
	_, err = st2.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

// stubAPI реализует AuthAPI для проверки обработки ошибок хранилища
type stubAPI struct {
	resp *pkgapi.AuthResponse
	err  error
}

func (s *stubAPI) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAPI) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAPI) GetProfile(ctx context.Context, token string) (*models.User, error) {
	return nil, s.err
}

func TestService_SaveSessionFailure(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk full")
	st := &storage.SessionStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) {
			return "", storage.ErrSessionNotFound
		},
		SaveTokenFunc: func(ctx context.Context, token string) error {
			return diskErr
		},
	}
	holder, err := session.NewHolder(ctx, st, discardLogger())
	require.NoError(t, err)

	svc := NewService(&stubAPI{resp: &pkgapi.AuthResponse{Token: "T"}}, holder, discardLogger())

	_, err = svc.Login(ctx, "a@example.com", "p")
	require.ErrorIs(t, err, diskErr)
	assert.Contains(t, err.Error(), "failed to save session")
	assert.False(t, svc.HasSession())

	_, err = svc.Register(ctx, "A", "a@example.com", "p")
	require.ErrorIs(t, err, diskErr)
}

func TestService_LogoutStorageFailure(t *testing.T) {
	ctx := context.Background()
	st := &storage.SessionStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) {
			return "T", nil
		},
		DeleteTokenFunc: func(ctx context.Context) error {
			return errors.New("io error")
		},
	}
	holder, err := session.NewHolder(ctx, st, discardLogger())
	require.NoError(t, err)

	svc := NewService(&stubAPI{}, holder, discardLogger())
	require.True(t, svc.HasSession())

	svc.Logout(ctx)
	assert.False(t, svc.HasSession())
	assert.Len(t, st.DeleteTokenCalls(), 1)
}

func TestService_TransportErrorPassesThrough(t *testing.T) {
	srv := testserver.New()
	authURL, dataURL := srv.AuthURL(), srv.DataURL()
	srv.Close()

	apiClient := api.NewClient(authURL, dataURL, api.WithLogger(discardLogger()))
	svc := NewService(apiClient, session.NewMemoryHolder(), discardLogger())

	_, err := svc.Login(context.Background(), "a@example.com", "p")
	require.Error(t, err)
	assert.True(t, api.IsTransport(err))
	assert.False(t, svc.HasSession())
}
