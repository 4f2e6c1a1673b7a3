package testserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cloudstore/internal/models"
	"github.com/iudanet/cloudstore/pkg/api"
)

func doJSON(t *testing.T, method, url, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set(api.HeaderAuthToken, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func errorOf(t *testing.T, body []byte) string {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func register(t *testing.T, s *Server, name, email string) api.AuthResponse {
	t.Helper()
	status, body := doJSON(t, http.MethodPost, s.AuthURL(), "", api.RegisterRequest{
		Action: api.ActionRegister, Name: name, Email: email, Password: "secret",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestAuth_RegisterLoginProfile(t *testing.T) {
	s := New()
	defer s.Close()

	reg := register(t, s, "Alice", "alice@example.com")
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, int64(1), reg.User.ID)
	assert.Equal(t, "alice@example.com", reg.User.Email)
	require.NoError(t, reg.Validate())

	status, body := doJSON(t, http.MethodPost, s.AuthURL(), "", api.LoginRequest{
		Action: api.ActionLogin, Email: "alice@example.com", Password: "secret",
	})
	require.Equal(t, http.StatusOK, status)
	var login api.AuthResponse
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, reg.User.ID, login.User.ID)

	status, body = doJSON(t, http.MethodGet, s.AuthURL(), login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var profile api.ProfileResponse
	require.NoError(t, json.Unmarshal(body, &profile))
	require.NoError(t, profile.Validate())
	assert.Equal(t, "Alice", profile.User.Name)
}

func TestAuth_Errors(t *testing.T) {
	s := New()
	defer s.Close()
	register(t, s, "Alice", "alice@example.com")

	tests := []struct {
		body       any
		name       string
		method     string
		token      string
		wantError  string
		wantStatus int
	}{
		{
			name:       "register missing fields",
			method:     http.MethodPost,
			body:       api.RegisterRequest{Action: api.ActionRegister, Email: "x@example.com"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing required fields",
		},
		{
			name:   "register duplicate email",
			method: http.MethodPost,
			body: api.RegisterRequest{
				Action: api.ActionRegister, Name: "A", Email: "alice@example.com", Password: "p",
			},
			wantStatus: http.StatusConflict,
			wantError:  "Email already exists",
		},
		{
			name:       "login missing password",
			method:     http.MethodPost,
			body:       api.LoginRequest{Action: api.ActionLogin, Email: "alice@example.com"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing email or password",
		},
		{
			name:       "login wrong password",
			method:     http.MethodPost,
			body:       api.LoginRequest{Action: api.ActionLogin, Email: "alice@example.com", Password: "nope"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid credentials",
		},
		{
			name:       "login unknown email",
			method:     http.MethodPost,
			body:       api.LoginRequest{Action: api.ActionLogin, Email: "bob@example.com", Password: "secret"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid credentials",
		},
		{
			name:       "unknown action",
			method:     http.MethodPost,
			body:       map[string]string{"action": "reset"},
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method not allowed",
		},
		{
			name:       "profile without token",
			method:     http.MethodGet,
			wantStatus: http.StatusUnauthorized,
			wantError:  "No token provided",
		},
		{
			name:       "profile with garbage token",
			method:     http.MethodGet,
			token:      "not-a-jwt",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
		{
			name:       "delete not allowed",
			method:     http.MethodDelete,
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, tt.method, s.AuthURL(), tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, errorOf(t, body))
		})
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return now }))
	defer s.Close()

	reg := register(t, s, "Alice", "alice@example.com")

	// Через 8 дней токен просрочен
	now = now.Add(8 * 24 * time.Hour)

	status, body := doJSON(t, http.MethodGet, s.AuthURL(), reg.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token expired", errorOf(t, body))

	status, body = doJSON(t, http.MethodGet, s.DataURL(), reg.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", errorOf(t, body))
}

func TestAuth_ForeignSecret(t *testing.T) {
	s := New()
	defer s.Close()
	other := New(WithSecret("another-secret"))
	defer other.Close()

	reg := register(t, other, "Alice", "alice@example.com")

	status, body := doJSON(t, http.MethodGet, s.AuthURL(), reg.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", errorOf(t, body))
}

func TestAuth_UserNotFound(t *testing.T) {
	s := New()
	defer s.Close()

	reg := register(t, s, "Alice", "alice@example.com")
	s.DeleteUser(reg.User.ID)

	status, body := doJSON(t, http.MethodGet, s.AuthURL(), reg.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", errorOf(t, body))
}

func TestData_CRUD(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return now }))
	defer s.Close()

	token := register(t, s, "Alice", "alice@example.com").Token

	status, body := doJSON(t, http.MethodPost, s.DataURL(), token, api.CreateRecordRequest{Key: "k1", Value: "v1"})
	require.Equal(t, http.StatusCreated, status)
	var created models.DataRecord
	require.NoError(t, json.Unmarshal(body, &created))
	require.NoError(t, created.Validate())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	now = now.Add(time.Minute)
	status, _ = doJSON(t, http.MethodPost, s.DataURL(), token, api.CreateRecordRequest{Key: "k2", Value: "v2"})
	require.Equal(t, http.StatusCreated, status)

	// Список: новые записи первыми
	status, body = doJSON(t, http.MethodGet, s.DataURL(), token, nil)
	require.Equal(t, http.StatusOK, status)
	var list api.RecordListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, "k2", list.Data[0].Key)
	assert.Equal(t, "k1", list.Data[1].Key)

	now = now.Add(time.Minute)
	status, body = doJSON(t, http.MethodPut, s.DataURL(), token, api.UpdateRecordRequest{ID: created.ID, Value: "v1b"})
	require.Equal(t, http.StatusOK, status)
	var updated models.DataRecord
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "v1b", updated.Value)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, models.FormatTimestamp(now), updated.UpdatedAt)

	recordURL := s.DataURL() + "?id=" + strconv.FormatInt(created.ID, 10)
	status, body = doJSON(t, http.MethodGet, recordURL, token, nil)
	require.Equal(t, http.StatusOK, status)
	var got models.DataRecord
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, updated, got)

	status, _ = doJSON(t, http.MethodDelete, recordURL, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, http.MethodGet, recordURL, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Data not found", errorOf(t, body))

	status, body = doJSON(t, http.MethodDelete, recordURL, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Data not found", errorOf(t, body))
}

func TestData_OwnerIsolation(t *testing.T) {
	s := New()
	defer s.Close()

	alice := register(t, s, "Alice", "alice@example.com").Token
	bob := register(t, s, "Bob", "bob@example.com").Token

	status, body := doJSON(t, http.MethodPost, s.DataURL(), alice, api.CreateRecordRequest{Key: "a", Value: "1"})
	require.Equal(t, http.StatusCreated, status)
	var rec models.DataRecord
	require.NoError(t, json.Unmarshal(body, &rec))

	status, body = doJSON(t, http.MethodGet, s.DataURL(), bob, nil)
	require.Equal(t, http.StatusOK, status)
	var list api.RecordListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.NotNil(t, list.Data)
	assert.Empty(t, list.Data)

	recordURL := s.DataURL() + "?id=" + strconv.FormatInt(rec.ID, 10)
	status, _ = doJSON(t, http.MethodGet, recordURL, bob, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, http.MethodPut, s.DataURL(), bob, api.UpdateRecordRequest{ID: rec.ID, Value: "x"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, http.MethodDelete, recordURL, bob, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestData_Errors(t *testing.T) {
	s := New()
	defer s.Close()
	token := register(t, s, "Alice", "alice@example.com").Token

	tests := []struct {
		body       any
		name       string
		method     string
		url        string
		token      string
		wantError  string
		wantStatus int
	}{
		{
			name:       "no token",
			method:     http.MethodGet,
			url:        s.DataURL(),
			wantStatus: http.StatusUnauthorized,
			wantError:  "No token provided",
		},
		{
			name:       "invalid token",
			method:     http.MethodGet,
			url:        s.DataURL(),
			token:      "garbage",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
		{
			name:       "create without key",
			method:     http.MethodPost,
			url:        s.DataURL(),
			token:      token,
			body:       map[string]any{"value": "v"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing key or value",
		},
		{
			name:       "create with null value",
			method:     http.MethodPost,
			url:        s.DataURL(),
			token:      token,
			body:       map[string]any{"key": "k", "value": nil},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing key or value",
		},
		{
			name:       "update without id",
			method:     http.MethodPut,
			url:        s.DataURL(),
			token:      token,
			body:       map[string]any{"value": "v"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing id or value",
		},
		{
			name:       "update unknown id",
			method:     http.MethodPut,
			url:        s.DataURL(),
			token:      token,
			body:       api.UpdateRecordRequest{ID: 999, Value: "v"},
			wantStatus: http.StatusNotFound,
			wantError:  "Data not found",
		},
		{
			name:       "get with invalid id",
			method:     http.MethodGet,
			url:        s.DataURL() + "?id=abc",
			token:      token,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid id",
		},
		{
			name:       "delete without id",
			method:     http.MethodDelete,
			url:        s.DataURL(),
			token:      token,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing id",
		},
		{
			name:       "patch not allowed",
			method:     http.MethodPatch,
			url:        s.DataURL(),
			token:      token,
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, tt.method, tt.url, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, errorOf(t, body))
		})
	}
}

func TestData_StructuredValue(t *testing.T) {
	s := New()
	defer s.Close()
	token := register(t, s, "Alice", "alice@example.com").Token

	status, body := doJSON(t, http.MethodPost, s.DataURL(), token, map[string]any{
		"key":   "settings",
		"value": map[string]any{"theme": "dark"},
	})
	require.Equal(t, http.StatusCreated, status)

	var rec models.DataRecord
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.JSONEq(t, `{"theme":"dark"}`, rec.Value)
}

func TestServer_CORSAndCounter(t *testing.T) {
	s := New()
	defer s.Close()

	req, err := http.NewRequest(http.MethodOptions, s.DataURL(), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "DELETE")
	assert.Equal(t, "Content-Type, X-Auth-Token", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, int64(1), s.Requests())
}

func TestRecoveryMiddleware(t *testing.T) {
	s := New()
	defer s.Close()

	handler := recoveryMiddleware(s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", errorOf(t, w.Body.Bytes()))
}

func TestNewHandler(t *testing.T) {
	srv := httptest.NewServer(NewHandler(WithSecret("other")))
	defer srv.Close()

	status, body := doJSON(t, http.MethodPost, srv.URL+AuthPath, "", api.RegisterRequest{
		Action: api.ActionRegister, Name: "Bob", Email: "bob@example.com", Password: "secret",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))

	status, body = doJSON(t, http.MethodGet, srv.URL+DataPath, resp.Token, nil)
	assert.Equal(t, http.StatusOK, status, string(body))

	status, _ = doJSON(t, http.MethodGet, srv.URL+"/other", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealth(t *testing.T) {
	s := New()
	defer s.Close()

	register(t, s, "Alice", "alice@example.com")

	status, body := doJSON(t, http.MethodGet, s.URL()+HealthPath, "", nil)
	require.Equal(t, http.StatusOK, status)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, HealthResponse{Status: "ok", Users: 1}, resp)

	status, _ = doJSON(t, http.MethodPost, s.URL()+HealthPath, "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
