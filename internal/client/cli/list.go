package cli

import "context"

func (c *Cli) runList(ctx context.Context) error {
	records, err := c.dataService.GetAll(ctx)
	if err != nil {
		return requireSession(err)
	}

	if len(records) == 0 {
		c.io.Println("No records found.")
		c.io.Println()
		c.io.Println("Use 'cloudstore add <key> <value>' to add your first record.")
		return nil
	}

	return c.render("list", recordListTemplate, records)
}
