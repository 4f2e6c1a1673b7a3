package api

import (
	"context"
	"net/http"

	"github.com/iudanet/cloudstore/internal/models"
	pkgapi "github.com/iudanet/cloudstore/pkg/api"
)

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error) {
	req.Action = pkgapi.ActionRegister

	var resp pkgapi.AuthResponse
	err := c.doRequest(ctx, request{
		op:     opRegister,
		method: http.MethodPost,
		url:    c.authURL,
		body:   req,
		result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error) {
	req.Action = pkgapi.ActionLogin

	var resp pkgapi.AuthResponse
	err := c.doRequest(ctx, request{
		op:     opLogin,
		method: http.MethodPost,
		url:    c.authURL,
		body:   req,
		result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile получает профиль владельца токена
func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var resp pkgapi.ProfileResponse
	err := c.doRequest(ctx, request{
		op:     opGetProfile,
		method: http.MethodGet,
		url:    c.authURL,
		token:  token,
		result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}
