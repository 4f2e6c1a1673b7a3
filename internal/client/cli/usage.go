package cli

import (
	"fmt"
	"io"

	"github.com/iudanet/cloudstore/internal/config"
)

const usageText = `CloudStore Client

Usage:
  cloudstore [OPTIONS] COMMAND [ARGS]

Commands:
  register                      Create an account and start a session
  login                         Start a session
  logout                        Remove the local session
  status                        Show whether a session is stored
  profile                       Show the account of the current session
  token                         Print the session token (for X-Auth-Token)
  list                          List records, newest first
  get <id>                      Show one record
  add [--json] <key> [value]    Create a record (value is prompted if omitted)
  update [--json] <id> [value]  Replace the value of a record
  delete [-y] <id>              Delete a record

Password Priority (highest to lowest):
  1. CLOUDSTORE_PASSWORD environment variable
  2. --password-file (file path)
  3. --password (command line)
  4. Interactive prompt (fallback)

Examples:
  cloudstore register
  CLOUDSTORE_PASSWORD=secret cloudstore login
  cloudstore add theme dark
  cloudstore add --json settings '{"theme":"dark"}'
  cloudstore update 12 light
  cloudstore delete -y 12
  curl -H "X-Auth-Token: $(cloudstore token)" "$CLOUDSTORE_DATA_URL"

Options:
`

// PrintUsage печатает справку по командам и флагам
func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, usageText)
	config.PrintFlags(w)
}
