package cli

import "context"

// runStatus показывает наличие локальной сессии без запроса к серверу
func (c *Cli) runStatus(_ context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if !c.authService.HasSession() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'cloudstore login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Println()
	c.io.Println("The token is not checked against the server.")
	c.io.Println("Run 'cloudstore profile' to verify it.")
	return nil
}
