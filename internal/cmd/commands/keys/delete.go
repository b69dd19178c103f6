package keys

import (
	"context"
	"fmt"
	"strconv"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
	"github.com/robertoperuzzo/typesense-drupal/pkg/keyadmin"
)

// DeleteCommand revokes an API key by its numeric id.
type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete an API key by id"
}

func (c *DeleteCommand) Help() string {
	return `Usage: typesense-admin keys delete <id>

  Revokes the API key with the given numeric id. Prints a confirmation
  on success; on failure the underlying cause is rendered as text.

` + c.FlagSet("keys delete").Help()
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.FlagSet("keys delete")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	rest := f.Args()
	if len(rest) != 1 {
		c.UI.Error("exactly one key id is required")
		return 1
	}

	id, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		c.UI.Error(fmt.Sprintf("invalid key id %q: %v", rest[0], err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	surface := keyadmin.NewSurface(client.Keys(), c.Log)

	msg, err := surface.Delete(context.Background(), id)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error deleting key: %v", err))
		return 1
	}

	c.UI.Output(msg)

	return 0
}
