package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/cloudstore/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.io)
	asJSON := fs.Bool("json", false, "Require value to be valid JSON")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) < 1 || len(positional) > 2 {
		return fmt.Errorf("usage: cloudstore add [--json] <key> [value]")
	}

	key := positional[0]
	if err := validation.ValidateKey(key); err != nil {
		return err
	}

	value, err := c.valueArg(positional, 1, *asJSON)
	if err != nil {
		return err
	}

	record, err := c.dataService.Create(ctx, key, value)
	if err != nil {
		return requireSession(err)
	}

	c.io.Printf("✓ Record created with ID %d\n\n", record.ID)
	return c.render("record", recordTemplate, record)
}

// valueArg берет value из аргументов или запрашивает его
func (c *Cli) valueArg(positional []string, idx int, asJSON bool) (string, error) {
	var value string
	if len(positional) > idx {
		value = positional[idx]
	} else {
		v, err := c.io.ReadInput("Value: ")
		if err != nil {
			return "", fmt.Errorf("failed to read value: %w", err)
		}
		value = v
	}

	if asJSON {
		if err := validation.ValidateJSON(value); err != nil {
			return "", err
		}
	}
	return value, nil
}
