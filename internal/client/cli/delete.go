package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/cloudstore/internal/validation"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(c.io)
	yes := fs.Bool("y", false, "Do not ask for confirmation")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("missing record ID. Usage: cloudstore delete [-y] <id>")
	}

	id, err := validation.ParseID(positional[0])
	if err != nil {
		return err
	}

	if !*yes {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete record %d? [y/N]: ", id))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !isYes(answer) {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	if err := c.dataService.Delete(ctx, id); err != nil {
		return requireSession(err)
	}

	c.io.Printf("✓ Record %d deleted\n", id)
	return nil
}
