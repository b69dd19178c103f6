package collections

import (
	"context"
	"fmt"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
)

// ListCommand prints every collection on the engine.
type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List collections"
}

func (c *ListCommand) Help() string {
	return `Usage: typesense-admin collections list

  Lists every collection on the engine with its document count.

` + c.FlagSet("collections list").Help()
}

func (c *ListCommand) Run(args []string) int {
	f := c.FlagSet("collections list")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	cols, err := client.RetrieveCollections(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing collections: %v", err))
		return 1
	}

	if len(cols) == 0 {
		c.UI.Output("No collections found.")
		return 0
	}

	c.UI.Output(fmt.Sprintf("%-30s %-10s %s", "NAME", "FIELDS", "DOCUMENTS"))
	for _, col := range cols {
		c.UI.Output(fmt.Sprintf("%-30s %-10d %d",
			col.Name, len(col.Fields), col.NumDocuments))
	}

	return 0
}
