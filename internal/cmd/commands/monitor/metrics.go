package monitor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
)

// MetricsCommand prints the engine's system metrics as JSON.
type MetricsCommand struct {
	*base.Command
}

func (c *MetricsCommand) Synopsis() string {
	return "Print engine system metrics"
}

func (c *MetricsCommand) Help() string {
	return `Usage: typesense-admin metrics

  Prints the engine's system metrics verbatim as indented JSON.

` + c.FlagSet("metrics").Help()
}

func (c *MetricsCommand) Run(args []string) int {
	f := c.FlagSet("metrics")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	metrics, err := client.RetrieveMetrics(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error retrieving metrics: %v", err))
		return 1
	}

	out, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error rendering metrics: %v", err))
		return 1
	}

	c.UI.Output(string(out))

	return 0
}
