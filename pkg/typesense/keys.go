package typesense

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// NeverExpires is the engine's documented expiry sentinel for keys that
// never expire.
const NeverExpires int64 = 64723363199

// Key is a scoped API key as reported by the engine: a credential limited
// to a set of actions and a set of collection-name patterns (which may
// contain regexes), with an optional expiry.
//
// Value holds the raw secret and is populated only in the creation
// response. The engine never returns the full secret again, so callers must
// surface it once and then discard it; every later listing carries only
// ValuePrefix.
type Key struct {
	ID          int64    `json:"id" mapstructure:"id"`
	ValuePrefix string   `json:"value_prefix" mapstructure:"value_prefix"`
	Value       string   `json:"value,omitempty" mapstructure:"value"`
	Description string   `json:"description" mapstructure:"description"`
	Actions     []string `json:"actions" mapstructure:"actions"`
	Collections []string `json:"collections" mapstructure:"collections"`
	ExpiresAt   int64    `json:"expires_at" mapstructure:"expires_at"`
}

// KeyRequest is the shape submitted when creating a key.
type KeyRequest struct {
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
	Collections []string `json:"collections"`
	ExpiresAt   int64    `json:"expires_at,omitempty"`
}

// Keys is the key-administration handle returned by Client.Keys. It holds
// no state beyond the client reference.
type Keys struct {
	client *Client
}

// Keys returns the handle for key administration.
func (c *Client) Keys() *Keys {
	return &Keys{client: c}
}

// Retrieve lists every key known to the engine. The engine wraps the list
// in a single-element response object; the shape is decoded defensively and
// falls back to an empty list when the wrapper is absent or malformed.
func (k *Keys) Retrieve(ctx context.Context) ([]*Key, error) {
	var raw map[string]any
	err := k.client.do(ctx, "RetrieveKeys", http.MethodGet, "/keys", nil, nil, &raw)
	if err != nil {
		return nil, err
	}

	wrapped, ok := raw["keys"]
	if !ok {
		return []*Key{}, nil
	}

	var keys []*Key
	if err := mapstructure.Decode(wrapped, &keys); err != nil {
		k.client.logger.Warn("malformed key listing from engine", "error", err)
		return []*Key{}, nil
	}
	if keys == nil {
		keys = []*Key{}
	}
	return keys, nil
}

// Create registers a new scoped key. The returned Key carries the one-time
// secret in Value; see the Key doc for the disclosure invariant.
func (k *Keys) Create(ctx context.Context, req *KeyRequest) (*Key, error) {
	var key Key
	err := k.client.do(ctx, "CreateKey", http.MethodPost, "/keys", nil, req, &key)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// Delete revokes a key by its numeric id and returns the engine's record of
// the deleted key.
func (k *Keys) Delete(ctx context.Context, id int64) (*Key, error) {
	var key Key
	err := k.client.do(ctx, "DeleteKey", http.MethodDelete,
		fmt.Sprintf("/keys/%d", id), nil, nil, &key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &Error{
				Op:  "DeleteKey",
				Msg: fmt.Sprintf("key %d", id),
				Err: ErrKeyNotFound,
			}
		}
		return nil, err
	}
	return &key, nil
}
