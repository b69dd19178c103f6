// Package monitor holds the pass-through monitoring commands: health,
// debug and metrics.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

// HealthCommand reports engine health. The façade itself never retries, so
// the -wait loop lives here, around it.
type HealthCommand struct {
	*base.Command

	flagWait    bool
	flagTimeout time.Duration
}

func (c *HealthCommand) Synopsis() string {
	return "Check engine health"
}

func (c *HealthCommand) Help() string {
	return `Usage: typesense-admin health [-wait] [-timeout=60s]

  Checks whether the engine is healthy. With -wait, retries with
  exponential backoff until the engine is healthy or the timeout elapses.

` + c.Flags().Help()
}

func (c *HealthCommand) Flags() *base.FlagSet {
	f := c.FlagSet("health")
	f.BoolVar(
		&c.flagWait, "wait", false,
		"Retry until the engine is healthy.",
	)
	f.DurationVar(
		&c.flagTimeout, "timeout", 60*time.Second,
		"Give up waiting after this long.",
	)
	return f
}

func (c *HealthCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := c.Config()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	connect := func() (*typesense.Client, error) {
		return typesense.NewClient(cfg)
	}

	var client *typesense.Client
	if c.flagWait {
		ctx, cancel := context.WithTimeout(context.Background(), c.flagTimeout)
		defer cancel()

		err = backoff.Retry(func() error {
			var cerr error
			client, cerr = connect()
			if cerr != nil {
				c.Log.Debug("engine not healthy yet", "error", cerr)
			}
			return cerr
		}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
	} else {
		client, err = connect()
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("engine is not healthy: %v", err))
		return 1
	}

	health, err := client.RetrieveHealth(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error retrieving health: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Engine healthy: %t", health.Ok))

	return 0
}
