package keyadmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyForm_Render(t *testing.T) {
	form := NewKeyForm(NewSurface(&fakeKeyStore{}, nil))

	fields := form.Render()
	require.Len(t, fields, 4)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		FieldDescription, FieldActions, FieldCollections, FieldExpiry,
	}, names)

	// Expiry is the only optional field.
	for _, f := range fields {
		assert.Equal(t, f.Name != FieldExpiry, f.Required, f.Name)
	}
}

func TestKeyForm_Validate(t *testing.T) {
	form := NewKeyForm(NewSurface(&fakeKeyStore{}, nil))

	t.Run("valid", func(t *testing.T) {
		errs := form.Validate(map[string]string{
			FieldDescription: "Search-only key",
			FieldActions:     "documents:search",
			FieldCollections: "articles",
			FieldExpiry:      "never",
		})
		assert.Empty(t, errs)
	})

	t.Run("every problem reported per field", func(t *testing.T) {
		errs := form.Validate(map[string]string{
			FieldExpiry: "not a date",
		})
		require.Len(t, errs, 4)

		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.Equal(t, []string{
			FieldDescription, FieldActions, FieldCollections, FieldExpiry,
		}, fields)
	})
}

func TestKeyForm_Submit(t *testing.T) {
	store := &fakeKeyStore{}
	form := NewKeyForm(NewSurface(store, nil))

	outcome, err := form.Submit(t.Context(), map[string]string{
		FieldDescription: "Admin key",
		FieldActions:     "*",
		FieldCollections: ".*",
	})
	require.NoError(t, err)

	assert.Equal(t, SeverityWarning, outcome.Severity)
	assert.Contains(t, outcome.Message, "k8pX5NNShMNw8q9mnaywwmEx")
	assert.Contains(t, outcome.Message, SecretWarning)
}

func TestKeyForm_Submit_InvalidInput(t *testing.T) {
	store := &fakeKeyStore{}
	form := NewKeyForm(NewSurface(store, nil))

	outcome, err := form.Submit(t.Context(), map[string]string{})
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.Nil(t, store.created)
}
