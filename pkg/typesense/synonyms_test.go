package typesense

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynonyms_CRUD(t *testing.T) {
	engine := newTestEngine(t)
	registerCollection(engine, CollectionSchema{Name: "articles"})

	stored := map[string]*Synonym{}
	engine.mux.HandleFunc("PUT /collections/articles/synonyms/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			var syn Synonym
			require.NoError(t, json.NewDecoder(r.Body).Decode(&syn))
			syn.ID = r.PathValue("id")
			stored[syn.ID] = &syn
			writeJSON(w, http.StatusOK, syn)
		})
	engine.mux.HandleFunc("GET /collections/articles/synonyms/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			syn, ok := stored[r.PathValue("id")]
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
				return
			}
			writeJSON(w, http.StatusOK, syn)
		})
	engine.mux.HandleFunc("GET /collections/articles/synonyms",
		func(w http.ResponseWriter, r *http.Request) {
			syns := make([]*Synonym, 0, len(stored))
			for _, s := range stored {
				syns = append(syns, s)
			}
			writeJSON(w, http.StatusOK, map[string]any{"synonyms": syns})
		})
	engine.mux.HandleFunc("DELETE /collections/articles/synonyms/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("id")
			delete(stored, id)
			writeJSON(w, http.StatusOK, map[string]any{"id": id})
		})

	client := engine.client()
	ctx := t.Context()

	created, err := client.UpsertSynonym(ctx, "articles", "coat-group", &Synonym{
		Synonyms: []string{"blazer", "coat", "jacket"},
	})
	require.NoError(t, err)
	assert.Equal(t, "coat-group", created.ID)

	got, err := client.RetrieveSynonym(ctx, "articles", "coat-group")
	require.NoError(t, err)
	assert.Equal(t, []string{"blazer", "coat", "jacket"}, got.Synonyms)

	all, err := client.RetrieveSynonyms(ctx, "articles")
	require.NoError(t, err)
	require.Len(t, all, 1)

	deleted, err := client.DeleteSynonym(ctx, "articles", "coat-group")
	require.NoError(t, err)
	assert.Equal(t, "coat-group", deleted.ID)
	assert.Empty(t, stored)
}

func TestSynonyms_MissingCollectionNoOps(t *testing.T) {
	engine := newTestEngine(t)
	client := engine.client()
	ctx := t.Context()

	created, err := client.UpsertSynonym(ctx, "missing", "s1", &Synonym{
		Synonyms: []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Empty(t, created.ID)

	got, err := client.RetrieveSynonym(ctx, "missing", "s1")
	require.NoError(t, err)
	assert.Empty(t, got.Synonyms)

	all, err := client.RetrieveSynonyms(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, all)

	deleted, err := client.DeleteSynonym(ctx, "missing", "s1")
	require.NoError(t, err)
	assert.Empty(t, deleted.ID)
}
