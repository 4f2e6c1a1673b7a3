package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cloudstore/internal/validation"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing record ID. Usage: cloudstore get <id>")
	}

	id, err := validation.ParseID(args[0])
	if err != nil {
		return err
	}

	record, err := c.dataService.GetByID(ctx, id)
	if err != nil {
		return requireSession(err)
	}

	return c.render("record", recordTemplate, record)
}
