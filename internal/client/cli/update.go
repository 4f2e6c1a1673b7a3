package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/cloudstore/internal/validation"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(c.io)
	asJSON := fs.Bool("json", false, "Require value to be valid JSON")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) < 1 || len(positional) > 2 {
		return fmt.Errorf("usage: cloudstore update [--json] <id> [value]")
	}

	id, err := validation.ParseID(positional[0])
	if err != nil {
		return err
	}

	value, err := c.valueArg(positional, 1, *asJSON)
	if err != nil {
		return err
	}

	record, err := c.dataService.Update(ctx, id, value)
	if err != nil {
		return requireSession(err)
	}

	c.io.Printf("✓ Record %d updated\n\n", record.ID)
	return c.render("record", recordTemplate, record)
}
