package documents

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/robertoperuzzo/typesense-drupal/internal/cmd/base"
	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

// IndexCommand upserts a batch of documents from a YAML file, coercing
// field values onto the collection's declared schema types first.
type IndexCommand struct {
	*base.Command

	flagCollection string
}

func (c *IndexCommand) Synopsis() string {
	return "Index documents from a YAML file"
}

func (c *IndexCommand) Help() string {
	return `Usage: typesense-admin documents index -collection=<name> <file.yaml>

  Reads a YAML list of documents and upserts each one into the named
  collection. Field values are coerced onto the schema's declared field
  types before indexing; documents without an "id" field get a generated
  one.

` + c.Flags().Help()
}

func (c *IndexCommand) Flags() *base.FlagSet {
	f := c.FlagSet("documents index")
	f.StringVar(
		&c.flagCollection, "collection", "",
		"Target collection name.",
	)
	return f
}

func (c *IndexCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	rest := f.Args()
	if len(rest) != 1 {
		c.UI.Error("exactly one document file is required")
		return 1
	}
	if c.flagCollection == "" {
		c.UI.Error("-collection is required")
		return 1
	}

	docs, err := loadDocuments(rest[0])
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to engine: %v", err))
		return 1
	}

	ctx := context.Background()

	col, err := client.RetrieveCollection(ctx, c.flagCollection)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error retrieving collection: %v", err))
		return 1
	}

	fieldTypes := make(map[string]typesense.FieldType, len(col.Fields))
	for _, field := range col.Fields {
		fieldTypes[field.Name] = typesense.FieldTypeFromEngine(field.Type)
	}

	for i, doc := range docs {
		if _, ok := doc["id"]; !ok {
			doc["id"] = uuid.NewString()
		}
		for name, value := range doc {
			if ft, ok := fieldTypes[name]; ok && ft != "" {
				doc[name] = typesense.PrepareItemValue(value, ft)
			}
		}

		if err := client.CreateDocument(ctx, c.flagCollection, doc); err != nil {
			c.UI.Error(fmt.Sprintf("error indexing document %d: %v", i, err))
			return 1
		}
	}

	c.UI.Output(fmt.Sprintf("Indexed %d documents into %q.",
		len(docs), c.flagCollection))

	return 0
}

// loadDocuments reads a YAML list of field maps.
func loadDocuments(path string) ([]typesense.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading document file: %w", err)
	}

	var docs []typesense.Document
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("error parsing document file: %w", err)
	}
	return docs, nil
}
