package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cloudstore/internal/client/api"
)

// runProfile показывает профиль владельца сессии.
// Если сервер отверг токен (401) или не нашел пользователя (404),
// локальная сессия удаляется. Сетевые ошибки и 5xx сессию не трогают.
func (c *Cli) runProfile(ctx context.Context) error {
	user, err := c.authService.GetProfile(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			c.authService.Logout(ctx)
			return fmt.Errorf("%w (session cleared, please run 'cloudstore login')", err)
		}
		return requireSession(err)
	}

	return c.render("profile", profileTemplate, user)
}
