package collections

import (
	"context"
	"fmt"
	"strings"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

// CreateCommand creates a collection from a compact field-list flag.
type CreateCommand struct {
	*base.Command

	flagName   string
	flagFields string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a collection"
}

func (c *CreateCommand) Help() string {
	return `Usage: typesense-admin collections create -name=articles -fields="Title:string,Word Count:int32"

  Creates a collection with the given name and fields. Field labels are
  normalized to snake_case names, so "Word Count:int32" declares a
  word_count field.

` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := c.FlagSet("collections create")
	f.StringVar(
		&c.flagName, "name", "",
		"Collection name.",
	)
	f.StringVar(
		&c.flagFields, "fields", "",
		"Comma-separated label:type pairs; types are string, int32, int64, float, bool.",
	)
	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	schema, err := parseSchema(c.flagName, c.flagFields)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	col, err := client.CreateCollection(context.Background(), schema)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating collection: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Created collection %q with %d fields.",
		col.Name, len(col.Fields)))

	return 0
}

// parseSchema turns "-name" and "-fields" flag values into a schema.
func parseSchema(name, fields string) (*typesense.CollectionSchema, error) {
	schema := &typesense.CollectionSchema{Name: name}

	for _, pair := range strings.Split(fields, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		label, fieldType, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid field %q: want label:type", pair)
		}
		schema.Fields = append(schema.Fields, typesense.Field{
			Name: typesense.NormalizeFieldName(label),
			Type: strings.TrimSpace(fieldType),
		})
	}

	return schema, nil
}
