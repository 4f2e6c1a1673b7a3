package testserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/cloudstore/pkg/api"
)

// authRequest объединяет поля register и login
type authRequest struct {
	Action   string `json:"action"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		switch req.Action {
		case api.ActionRegister:
			s.register(w, r, req)
			return
		case api.ActionLogin:
			s.login(w, r, req)
			return
		}
	case http.MethodGet:
		s.profile(w, r)
		return
	}

	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (s *Server) register(w http.ResponseWriter, r *http.Request, req authRequest) {
	ctx := r.Context()

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	u, err := s.store.createUser(req.Name, req.Email, req.Password, s.now())
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			writeError(w, http.StatusConflict, "Email already exists")
			return
		}
		s.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.writeAuth(w, r, http.StatusCreated, u)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, req authRequest) {
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	u, ok := s.store.authenticate(req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s.writeAuth(w, r, http.StatusOK, u)
}

func (s *Server) writeAuth(w http.ResponseWriter, r *http.Request, status int, u *user) {
	token, err := s.tokens.issue(u.id, u.email)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to issue token", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, status, api.AuthResponse{
		Token: token,
		User:  u.model(),
	})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get(api.HeaderAuthToken)
	if tokenString == "" {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	c, err := s.tokens.parse(tokenString)
	if err != nil {
		if errors.Is(err, errTokenExpired) {
			writeError(w, http.StatusUnauthorized, "Token expired")
			return
		}
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	u, err := s.store.userByID(c.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	profile := u.model()
	writeJSON(w, http.StatusOK, api.ProfileResponse{User: &profile})
}
