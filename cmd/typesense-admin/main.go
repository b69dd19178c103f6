package main

import (
	"os"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
