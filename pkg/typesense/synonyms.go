package typesense

import (
	"context"
	"net/http"
	"net/url"
)

// Synonym is a named equivalence group of terms applied at query time
// within a collection.
type Synonym struct {
	ID       string   `json:"id,omitempty"`
	Synonyms []string `json:"synonyms"`
	Root     string   `json:"root,omitempty"`
}

// UpsertSynonym creates or replaces a synonym in the named collection. When
// the collection does not exist it no-ops to an empty synonym.
func (c *Client) UpsertSynonym(ctx context.Context, collection, id string, syn *Synonym) (*Synonym, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &Synonym{}, nil
	}

	var out Synonym
	err = c.do(ctx, "UpsertSynonym", http.MethodPut,
		synonymsPath(collection)+"/"+url.PathEscape(id), nil, syn, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RetrieveSynonym returns a synonym by id, or an empty synonym when the
// collection does not exist.
func (c *Client) RetrieveSynonym(ctx context.Context, collection, id string) (*Synonym, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &Synonym{}, nil
	}

	var out Synonym
	err = c.do(ctx, "RetrieveSynonym", http.MethodGet,
		synonymsPath(collection)+"/"+url.PathEscape(id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RetrieveSynonyms lists every synonym in the named collection, or an empty
// list when the collection does not exist.
func (c *Client) RetrieveSynonyms(ctx context.Context, collection string) ([]*Synonym, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []*Synonym{}, nil
	}

	var resp struct {
		Synonyms []*Synonym `json:"synonyms"`
	}
	err = c.do(ctx, "RetrieveSynonyms", http.MethodGet,
		synonymsPath(collection), nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Synonyms == nil {
		resp.Synonyms = []*Synonym{}
	}
	return resp.Synonyms, nil
}

// DeleteSynonym deletes a synonym by id and returns the deleted id, or an
// empty synonym when the collection does not exist.
func (c *Client) DeleteSynonym(ctx context.Context, collection, id string) (*Synonym, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &Synonym{}, nil
	}

	var out Synonym
	err = c.do(ctx, "DeleteSynonym", http.MethodDelete,
		synonymsPath(collection)+"/"+url.PathEscape(id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func synonymsPath(collection string) string {
	return "/collections/" + url.PathEscape(collection) + "/synonyms"
}
