package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	if !c.authService.HasSession() {
		c.io.Println("Not logged in.")
		return nil
	}

	c.authService.Logout(ctx)
	c.io.Println("✓ Logged out. Local session removed.")
	return nil
}
