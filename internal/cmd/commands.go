package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/commands/collections"
	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/commands/documents"
	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/commands/keys"
	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/commands/monitor"
	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/commands/versioncmd"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	newBase := func(name string) *base.Command {
		return &base.Command{
			Log: log.Named(name),
			UI:  ui,
		}
	}

	Commands = map[string]cli.CommandFactory{
		"collections list": func() (cli.Command, error) {
			return &collections.ListCommand{Command: newBase("collections list")}, nil
		},
		"collections create": func() (cli.Command, error) {
			return &collections.CreateCommand{Command: newBase("collections create")}, nil
		},
		"collections drop": func() (cli.Command, error) {
			return &collections.DropCommand{Command: newBase("collections drop")}, nil
		},
		"documents index": func() (cli.Command, error) {
			return &documents.IndexCommand{Command: newBase("documents index")}, nil
		},
		"keys list": func() (cli.Command, error) {
			return &keys.ListCommand{Command: newBase("keys list")}, nil
		},
		"keys create": func() (cli.Command, error) {
			return &keys.CreateCommand{Command: newBase("keys create")}, nil
		},
		"keys delete": func() (cli.Command, error) {
			return &keys.DeleteCommand{Command: newBase("keys delete")}, nil
		},
		"health": func() (cli.Command, error) {
			return &monitor.HealthCommand{Command: newBase("health")}, nil
		},
		"debug": func() (cli.Command, error) {
			return &monitor.DebugCommand{Command: newBase("debug")}, nil
		},
		"metrics": func() (cli.Command, error) {
			return &monitor.MetricsCommand{Command: newBase("metrics")}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{}, nil
		},
	}
}
