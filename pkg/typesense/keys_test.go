package typesense

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_Retrieve(t *testing.T) {
	engine := newTestEngine(t)
	engine.mux.HandleFunc("GET /keys", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"keys": []map[string]any{
				{
					"id":           1,
					"value_prefix": "vxpUP",
					"description":  "Search-only key",
					"actions":      []string{"documents:search"},
					"collections":  []string{"articles", "pages"},
					"expires_at":   64723363199,
				},
			},
		})
	})

	client := engine.client()

	keys, err := client.Keys().Retrieve(t.Context())
	require.NoError(t, err)
	require.Len(t, keys, 1)

	key := keys[0]
	assert.Equal(t, int64(1), key.ID)
	assert.Equal(t, "vxpUP", key.ValuePrefix)
	assert.Empty(t, key.Value)
	assert.Equal(t, []string{"documents:search"}, key.Actions)
	assert.Equal(t, NeverExpires, key.ExpiresAt)
}

func TestKeys_Retrieve_DefensiveShapes(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{
			name: "missing keys wrapper",
			body: map[string]any{},
		},
		{
			name: "null keys element",
			body: map[string]any{"keys": nil},
		},
		{
			name: "malformed keys element",
			body: map[string]any{"keys": "oops"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t)
			engine.mux.HandleFunc("GET /keys", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})

			client := engine.client()

			keys, err := client.Keys().Retrieve(t.Context())
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestKeys_Create(t *testing.T) {
	engine := newTestEngine(t)
	engine.mux.HandleFunc("POST /keys", func(w http.ResponseWriter, r *http.Request) {
		var req KeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		writeJSON(w, http.StatusCreated, Key{
			ID:          7,
			Value:       "k8pX5NNShMNw8q9mnaywwmEx",
			ValuePrefix: "k8pX",
			Description: req.Description,
			Actions:     req.Actions,
			Collections: req.Collections,
			ExpiresAt:   req.ExpiresAt,
		})
	})

	client := engine.client()

	key, err := client.Keys().Create(t.Context(), &KeyRequest{
		Description: "Admin key",
		Actions:     []string{"*"},
		Collections: []string{".*"},
		ExpiresAt:   NeverExpires,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), key.ID)
	// The secret is disclosed only here, never in later listings.
	assert.Equal(t, "k8pX5NNShMNw8q9mnaywwmEx", key.Value)
}

func TestKeys_Create_EngineRejects(t *testing.T) {
	engine := newTestEngine(t)
	engine.mux.HandleFunc("POST /keys", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest,
			map[string]any{"message": "actions is required"})
	})

	client := engine.client()

	_, err := client.Keys().Create(t.Context(), &KeyRequest{Description: "broken"})
	require.Error(t, err)

	var facadeErr *Error
	require.ErrorAs(t, err, &facadeErr)
	assert.Equal(t, http.StatusBadRequest, facadeErr.StatusCode)
	assert.Equal(t, "actions is required", facadeErr.Msg)
}

func TestKeys_Delete(t *testing.T) {
	engine := newTestEngine(t)
	engine.mux.HandleFunc("DELETE /keys/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 7})
	})

	client := engine.client()

	key, err := client.Keys().Delete(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), key.ID)
}

func TestKeys_Delete_Unknown(t *testing.T) {
	engine := newTestEngine(t)
	engine.mux.HandleFunc("DELETE /keys/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
	})

	client := engine.client()

	_, err := client.Keys().Delete(t.Context(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
