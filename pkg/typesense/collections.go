package typesense

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
)

// Field declares one schema field on the engine.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Facet    bool   `json:"facet,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// CollectionSchema is the shape submitted when creating a collection.
type CollectionSchema struct {
	Name                string  `json:"name"`
	Fields              []Field `json:"fields"`
	DefaultSortingField string  `json:"default_sorting_field,omitempty"`
}

// Validate checks the schema before it is submitted to the engine.
func (s *CollectionSchema) Validate() error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Fields, validation.Required),
	); err != nil {
		return err
	}

	var result *multierror.Error
	for i, f := range s.Fields {
		if f.Name == "" {
			result = multierror.Append(result,
				fmt.Errorf("field[%d]: name is required", i))
		}
		if f.Type == "" {
			result = multierror.Append(result,
				fmt.Errorf("field[%d] %q: type is required", i, f.Name))
		}
	}
	return result.ErrorOrNil()
}

// Collection is the engine's canonical view of a collection. Existence is
// authoritative on the engine and never cached locally beyond a single call.
type Collection struct {
	CollectionSchema
	NumDocuments int64 `json:"num_documents"`
	CreatedAt    int64 `json:"created_at"`
}

// NormalizeFieldName converts a human-entered field label into the
// snake_case name the engine schema expects.
func NormalizeFieldName(label string) string {
	return strcase.ToSnake(strings.TrimSpace(label))
}

// RetrieveCollection fetches the collection schema fresh from the engine.
// A missing collection is reported as ErrNotFound wrapped in *Error, so
// callers can tell absence apart from transport or auth failures.
func (c *Client) RetrieveCollection(ctx context.Context, name string) (*Collection, error) {
	var col Collection
	err := c.do(ctx, "RetrieveCollection", http.MethodGet,
		"/collections/"+url.PathEscape(name), nil, nil, &col)
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// CollectionExists is the canonical existence check used by every mutating
// operation. Not-found folds to (false, nil); transport and auth failures
// surface as errors instead of masquerading as absence.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	if _, err := c.RetrieveCollection(ctx, name); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateCollection submits a schema to the engine and re-fetches the
// canonical handle the engine reports. Creation is rejected for duplicate
// names or schemas the engine refuses.
func (c *Client) CreateCollection(ctx context.Context, schema *CollectionSchema) (*Collection, error) {
	if err := schema.Validate(); err != nil {
		return nil, &Error{
			Op:  "CreateCollection",
			Msg: "schema rejected before submission",
			Err: fmt.Errorf("%w: %w", ErrInvalidSchema, err),
		}
	}

	err := c.do(ctx, "CreateCollection", http.MethodPost, "/collections", nil, schema, nil)
	if err != nil {
		return nil, err
	}

	return c.RetrieveCollection(ctx, schema.Name)
}

// DropCollection deletes a collection and all of its documents.
func (c *Client) DropCollection(ctx context.Context, name string) error {
	return c.do(ctx, "DropCollection", http.MethodDelete,
		"/collections/"+url.PathEscape(name), nil, nil, nil)
}

// RetrieveCollections lists all collections on the engine.
func (c *Client) RetrieveCollections(ctx context.Context) ([]*Collection, error) {
	var cols []*Collection
	err := c.do(ctx, "RetrieveCollections", http.MethodGet, "/collections", nil, nil, &cols)
	if err != nil {
		return nil, err
	}
	if cols == nil {
		cols = []*Collection{}
	}
	return cols, nil
}
