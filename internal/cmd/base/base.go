// Package base carries the pieces every CLI command shares: logger, UI,
// flag handling and client construction from the config file.
package base

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/robertoperuzzo/typesense-drupal/internal/config"
	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FlagConfig is the path to the HCL configuration file.
	FlagConfig string
}

// FlagSet wraps flag.FlagSet with help rendering for command Help output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns an empty flag set for the named command.
func NewFlagSet(name string) *FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help renders the flag set as an options block for command help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("Options:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n      %s\n", fl.Name, fl.Usage)
	})
	return b.String()
}

// FlagSet returns the shared flags every command accepts.
func (c *Command) FlagSet(name string) *FlagSet {
	f := NewFlagSet(name)
	f.StringVar(
		&c.FlagConfig, "config", "typesense.hcl",
		"Path to the HCL configuration file.",
	)
	return f
}

// Config loads the façade configuration from the config file.
func (c *Command) Config() (*typesense.Config, error) {
	cfg, err := config.Load(c.FlagConfig)
	if err != nil {
		return nil, err
	}
	cfg.Logger = c.Log
	return cfg, nil
}

// Client builds the client façade from the config file. Construction fails
// fast when the engine is unreachable.
func (c *Command) Client() (*typesense.Client, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}
	return typesense.NewClient(cfg)
}
