package cli

import (
	"context"

	"github.com/iudanet/cloudstore/internal/client/api"
)

// runToken печатает токен сессии для заголовка X-Auth-Token
func (c *Cli) runToken(_ context.Context) error {
	token, ok := c.authService.Token()
	if !ok {
		return requireSession(api.ErrNoSession)
	}

	c.io.Println(token)
	return nil
}
