package collections

import (
	"context"
	"fmt"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
)

// DropCommand deletes a collection and all of its documents.
type DropCommand struct {
	*base.Command
}

func (c *DropCommand) Synopsis() string {
	return "Drop a collection"
}

func (c *DropCommand) Help() string {
	return `Usage: typesense-admin collections drop <name>

  Deletes the named collection and every document in it.

` + c.FlagSet("collections drop").Help()
}

func (c *DropCommand) Run(args []string) int {
	f := c.FlagSet("collections drop")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	rest := f.Args()
	if len(rest) != 1 {
		c.UI.Error("exactly one collection name is required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	if err := client.DropCollection(context.Background(), rest[0]); err != nil {
		c.UI.Error(fmt.Sprintf("error dropping collection: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Dropped collection %q.", rest[0]))

	return 0
}
