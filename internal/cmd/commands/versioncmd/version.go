package versioncmd

import (
	"fmt"

	"github.com/robertoperuzzo/typesense-drupal/internal/version"
)

// Command prints the build version.
type Command struct{}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: typesense-admin version\n"
}

func (c *Command) Run(args []string) int {
	fmt.Println(version.Version)
	return 0
}
