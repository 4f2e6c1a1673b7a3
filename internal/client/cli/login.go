package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cloudstore/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, _, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	return c.render("login", authResultTemplate, map[string]any{
		"Title": "Login successful!",
		"User":  resp.User,
	})
}
