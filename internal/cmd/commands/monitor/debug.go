package monitor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
)

// DebugCommand prints the engine's debug diagnostics as JSON.
type DebugCommand struct {
	*base.Command
}

func (c *DebugCommand) Synopsis() string {
	return "Print engine debug diagnostics"
}

func (c *DebugCommand) Help() string {
	return `Usage: typesense-admin debug

  Prints the engine's debug diagnostics verbatim as indented JSON.

` + c.FlagSet("debug").Help()
}

func (c *DebugCommand) Run(args []string) int {
	f := c.FlagSet("debug")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	diag, err := client.RetrieveDebug(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error retrieving debug info: %v", err))
		return 1
	}

	out, err := json.MarshalIndent(diag, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error rendering debug info: %v", err))
		return 1
	}

	c.UI.Output(string(out))

	return 0
}
