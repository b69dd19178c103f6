package keys

import (
	"context"
	"fmt"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
	"github.com/robertoperuzzo/typesense-drupal/pkg/keyadmin"
)

// ListCommand prints every API key known to the engine.
type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List the engine's scoped API keys"
}

func (c *ListCommand) Help() string {
	return `Usage: typesense-admin keys list

  Lists every API key on the engine. Only key prefixes are shown; the
  engine never returns full secrets after creation.

` + c.FlagSet("keys list").Help()
}

func (c *ListCommand) Run(args []string) int {
	f := c.FlagSet("keys list")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	surface := keyadmin.NewSurface(client.Keys(), c.Log)

	rows, err := surface.List(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing keys: %v", err))
		return 1
	}

	if len(rows) == 0 {
		c.UI.Output("No keys found.")
		return 0
	}

	c.UI.Output(fmt.Sprintf("%-6s %-10s %-30s %-30s %-30s %s",
		"ID", "PREFIX", "DESCRIPTION", "ACTIONS", "COLLECTIONS", "EXPIRES"))
	for _, r := range rows {
		c.UI.Output(fmt.Sprintf("%-6d %-10s %-30s %-30s %-30s %s",
			r.ID, r.Prefix, r.Description, r.Actions, r.Collections, r.ExpiresAt))
	}

	return 0
}
