package keys

import (
	"context"
	"fmt"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
	"github.com/robertoperuzzo/typesense-drupal/pkg/keyadmin"
)

// CreateCommand creates a new scoped API key and surfaces the one-time
// secret.
type CreateCommand struct {
	*base.Command

	flagDescription string
	flagActions     string
	flagCollections string
	flagExpiry      string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a scoped API key"
}

func (c *CreateCommand) Help() string {
	return `Usage: typesense-admin keys create -description=... -actions=... -collections=...

  Creates a new API key limited to the given actions and collection
  patterns. The full secret is printed exactly once; the engine only
  reports the prefix afterwards.

` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := c.FlagSet("keys create")
	f.StringVar(
		&c.flagDescription, "description", "",
		"What this key is for.",
	)
	f.StringVar(
		&c.flagActions, "actions", "",
		"Comma-separated engine actions, e.g. \"documents:search, collections:list\".",
	)
	f.StringVar(
		&c.flagCollections, "collections", "",
		"Comma-separated collection names; regex patterns are allowed.",
	)
	f.StringVar(
		&c.flagExpiry, "expiry", "never",
		"Expiry as a date, or \"never\".",
	)
	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
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

	created, err := surface.Create(context.Background(), keyadmin.Input{
		Description: c.flagDescription,
		Actions:     c.flagActions,
		Collections: c.flagCollections,
		Expiry:      c.flagExpiry,
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating key: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Created key %d (prefix %s).",
		created.Key.ID, created.Key.ValuePrefix))
	c.UI.Output(fmt.Sprintf("Secret: %s", created.Key.Value))
	c.UI.Warn(created.Warning)

	return 0
}
