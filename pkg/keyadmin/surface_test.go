package keyadmin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

// fakeKeyStore records calls and plays back canned responses.
type fakeKeyStore struct {
	keys      []*typesense.Key
	created   *typesense.KeyRequest
	deletedID int64
	err       error
}

func (f *fakeKeyStore) Retrieve(ctx context.Context) ([]*typesense.Key, error) {
	return f.keys, f.err
}

func (f *fakeKeyStore) Create(ctx context.Context, req *typesense.KeyRequest) (*typesense.Key, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &typesense.Key{
		ID:          42,
		Value:       "k8pX5NNShMNw8q9mnaywwmEx",
		ValuePrefix: "k8pX",
		Description: req.Description,
		Actions:     req.Actions,
		Collections: req.Collections,
		ExpiresAt:   req.ExpiresAt,
	}, nil
}

func (f *fakeKeyStore) Delete(ctx context.Context, id int64) (*typesense.Key, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletedID = id
	return &typesense.Key{ID: id}, nil
}

func TestSurface_List(t *testing.T) {
	store := &fakeKeyStore{
		keys: []*typesense.Key{
			{
				ID:          1,
				ValuePrefix: "vxpUP",
				Description: "Search-only key",
				Actions:     []string{"documents:search"},
				Collections: []string{"articles", "pages"},
				ExpiresAt:   typesense.NeverExpires,
			},
		},
	}
	surface := NewSurface(store, nil)

	rows, err := surface.List(t.Context())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, Row{
		ID:          1,
		Prefix:      "vxpUP",
		Description: "Search-only key",
		Actions:     "[documents:search]",
		Collections: "[articles, pages]",
		ExpiresAt:   "never",
	}, rows[0])
}

func TestSurface_List_Error(t *testing.T) {
	store := &fakeKeyStore{err: typesense.ErrEngineUnavailable}
	surface := NewSurface(store, nil)

	_, err := surface.List(t.Context())
	assert.ErrorIs(t, err, typesense.ErrEngineUnavailable)
}

func TestSurface_Create(t *testing.T) {
	store := &fakeKeyStore{}
	surface := NewSurface(store, nil)

	created, err := surface.Create(t.Context(), Input{
		Description: "Admin key",
		Actions:     "documents:search, collections:list",
		Collections: "articles, pages",
		Expiry:      "never",
	})
	require.NoError(t, err)

	// Scope lists reach the engine as trimmed ordered tokens.
	require.NotNil(t, store.created)
	assert.Equal(t, []string{"documents:search", "collections:list"},
		store.created.Actions)
	assert.Equal(t, []string{"articles", "pages"}, store.created.Collections)
	assert.Equal(t, typesense.NeverExpires, store.created.ExpiresAt)

	assert.Equal(t, "k8pX5NNShMNw8q9mnaywwmEx", created.Key.Value)
	assert.Equal(t, SecretWarning, created.Warning)
}

func TestSurface_Create_InvalidInput(t *testing.T) {
	store := &fakeKeyStore{}
	surface := NewSurface(store, nil)

	_, err := surface.Create(t.Context(), Input{
		Actions: " , ",
		Expiry:  "not a date",
	})
	require.Error(t, err)

	// Every failure is reported at once.
	assert.Contains(t, err.Error(), "description is required")
	assert.Contains(t, err.Error(), "at least one action is required")
	assert.Contains(t, err.Error(), "at least one collection pattern is required")
	assert.Contains(t, err.Error(), "unrecognized expiry")

	// Nothing reached the engine.
	assert.Nil(t, store.created)
}

func TestSurface_Create_EngineError(t *testing.T) {
	store := &fakeKeyStore{err: typesense.ErrEngineUnavailable}
	surface := NewSurface(store, nil)

	_, err := surface.Create(t.Context(), Input{
		Description: "Admin key",
		Actions:     "*",
		Collections: ".*",
	})
	assert.ErrorIs(t, err, typesense.ErrEngineUnavailable)
}

func TestSurface_Delete(t *testing.T) {
	store := &fakeKeyStore{}
	surface := NewSurface(store, nil)

	msg, err := surface.Delete(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Key 7 has been deleted.", msg)
	assert.Equal(t, int64(7), store.deletedID)
}

func TestSurface_Delete_Unknown(t *testing.T) {
	store := &fakeKeyStore{err: typesense.ErrKeyNotFound}
	surface := NewSurface(store, nil)

	_, err := surface.Delete(t.Context(), 99)
	assert.ErrorIs(t, err, typesense.ErrKeyNotFound)
}

func TestInput_Validate(t *testing.T) {
	valid := Input{
		Description: "Admin key",
		Actions:     "*",
		Collections: ".*",
	}
	assert.NoError(t, valid.Validate())

	missing := Input{}
	require.Error(t, missing.Validate())
}
