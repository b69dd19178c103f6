package typesense

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Document is a single indexed record: a mapping from field name to scalar
// or array-of-scalar value, identified within its collection by an "id"
// field.
type Document map[string]any

// DeleteResult reports the outcome of a bulk delete.
type DeleteResult struct {
	NumDeleted int `json:"num_deleted"`
}

// CreateDocument upserts a document into the named collection. The upsert
// only happens when the collection exists; a missing collection is an error
// rather than a silent drop, because losing writes would hide indexing bugs
// from the caller. A successful upsert returns nil.
func (c *Client) CreateDocument(ctx context.Context, collection string, doc Document) error {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return err
	}
	if !exists {
		return &Error{
			Op:  "CreateDocument",
			Msg: fmt.Sprintf("collection %q does not exist", collection),
			Err: ErrNotFound,
		}
	}

	params := url.Values{"action": []string{"upsert"}}
	return c.do(ctx, "CreateDocument", http.MethodPost,
		documentsPath(collection), params, doc, nil)
}

// RetrieveDocument returns the document with the given id, or an empty
// document when the collection does not exist.
func (c *Client) RetrieveDocument(ctx context.Context, collection, id string) (Document, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return Document{}, nil
	}

	var doc Document
	err = c.do(ctx, "RetrieveDocument", http.MethodGet,
		documentsPath(collection)+"/"+url.PathEscape(id), nil, nil, &doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocument deletes a document by id and returns the deleted
// representation, or an empty document when the collection does not exist.
func (c *Client) DeleteDocument(ctx context.Context, collection, id string) (Document, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return Document{}, nil
	}

	var doc Document
	err = c.do(ctx, "DeleteDocument", http.MethodDelete,
		documentsPath(collection)+"/"+url.PathEscape(id), nil, nil, &doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocuments bulk-deletes every document matching the filter
// condition. A missing collection or an empty filter is a no-op that
// returns an empty result.
func (c *Client) DeleteDocuments(ctx context.Context, collection, filter string) (*DeleteResult, error) {
	if filter == "" {
		return &DeleteResult{}, nil
	}

	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &DeleteResult{}, nil
	}

	params := url.Values{"filter_by": []string{filter}}
	var res DeleteResult
	err = c.do(ctx, "DeleteDocuments", http.MethodDelete,
		documentsPath(collection), params, nil, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func documentsPath(collection string) string {
	return "/collections/" + url.PathEscape(collection) + "/documents"
}
