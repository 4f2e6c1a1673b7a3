package cli

import (
	"fmt"

	"github.com/iudanet/cloudstore/internal/client/auth"
	"github.com/iudanet/cloudstore/internal/client/data"
	"github.com/iudanet/cloudstore/internal/client/iocli"
)

// PasswordSource returns a password configured for non-interactive use.
// ok is false when nothing was configured and the user must be prompted.
type PasswordSource func() (password string, ok bool, err error)

// Cli выполняет команды cloudstore поверх auth и data сервисов
type Cli struct {
	io          iocli.IO
	authService auth.Service
	dataService data.Service
	password    PasswordSource
}

// New создает CLI. password может быть nil: тогда пароль всегда запрашивается.
func New(io iocli.IO, authService auth.Service, dataService data.Service, password PasswordSource) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		password:    password,
	}
}

// getPassword retrieves the password with priority:
// 1. Environment variable CLOUDSTORE_PASSWORD
// 2. File given by --password-file
// 3. Command-line parameter --password
// 4. Interactive prompt (fallback)
//
// Sources 1-3 are resolved by PasswordSource. interactive is true when the
// password was typed by the user.
func (c *Cli) getPassword(prompt string) (password string, interactive bool, err error) {
	if c.password != nil {
		password, ok, err := c.password()
		if err != nil {
			return "", false, err
		}
		if ok {
			return password, false, nil
		}
	}

	password, err = c.io.ReadPassword(prompt)
	if err != nil {
		return "", false, fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", false, fmt.Errorf("password cannot be empty")
	}
	return password, true, nil
}
