// Package config loads runtime configuration for the cloudstore CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see Defaults).
//  2. Optional JSON-with-comments file, selected by --config or CLOUDSTORE_CONFIG.
//  3. Environment variables CLOUDSTORE_*.
//  4. Command-line flags that were set explicitly.
//
// Later sources take precedence over earlier ones.
//
// # File format
//
// Comments and trailing commas are allowed. Timeout is a Go duration string
// or a number of seconds:
//
//	{
//	  // production functions
//	  "auth_url": "https://functions.poehali.dev/...",
//	  "data_url": "https://functions.poehali.dev/...",
//	  "db": "~/.cloudstore.db",
//	  "timeout": "15s",
//	  "log_level": "debug",
//	}
//
// # Password
//
// The password for register/login is taken from CLOUDSTORE_PASSWORD, then
// from --password-file, then from --password; otherwise the CLI prompts.
package config
