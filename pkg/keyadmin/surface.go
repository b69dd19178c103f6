// Package keyadmin presents scoped engine API keys and creates new ones
// through the client façade. The surface owns no state of its own; every
// call goes straight to the engine.
package keyadmin

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

// KeyStore is the slice of the client façade the administration surface
// needs. *typesense.Keys satisfies it.
type KeyStore interface {
	Retrieve(ctx context.Context) ([]*typesense.Key, error)
	Create(ctx context.Context, req *typesense.KeyRequest) (*typesense.Key, error)
	Delete(ctx context.Context, id int64) (*typesense.Key, error)
}

var _ KeyStore = (*typesense.Keys)(nil)

// Surface lists, creates and deletes scoped API keys. Façade errors are
// never caught here; they propagate untouched to the caller, which owns
// user-visible rendering.
type Surface struct {
	keys   KeyStore
	logger hclog.Logger
}

// NewSurface creates a key administration surface over the given store.
func NewSurface(keys KeyStore, logger hclog.Logger) *Surface {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Surface{
		keys:   keys,
		logger: logger.Named("keyadmin"),
	}
}

// Row is one key formatted for display. The raw secret never appears here;
// listings only ever carry the engine-reported prefix.
type Row struct {
	ID          int64
	Prefix      string
	Description string
	Actions     string
	Collections string
	ExpiresAt   string
}

// List fetches and formats every key known to the engine.
func (s *Surface) List(ctx context.Context) ([]Row, error) {
	keys, err := s.keys.Retrieve(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, Row{
			ID:          k.ID,
			Prefix:      k.ValuePrefix,
			Description: k.Description,
			Actions:     FormatList(k.Actions),
			Collections: FormatList(k.Collections),
			ExpiresAt:   FormatExpiry(k.ExpiresAt),
		})
	}
	return rows, nil
}

// Input is the raw form input for key creation: free-text description,
// comma-separated action and collection scopes, and a human-entered expiry
// ("never", empty, or any parseable date).
type Input struct {
	Description string
	Actions     string
	Collections string
	Expiry      string
}

// Validate checks the input and aggregates every failure, so a form can
// report all problems at once.
func (in *Input) Validate() error {
	var result *multierror.Error
	if in.Description == "" {
		result = multierror.Append(result,
			fmt.Errorf("description is required"))
	}
	if len(SplitCSV(in.Actions)) == 0 {
		result = multierror.Append(result,
			fmt.Errorf("at least one action is required"))
	}
	if len(SplitCSV(in.Collections)) == 0 {
		result = multierror.Append(result,
			fmt.Errorf("at least one collection pattern is required"))
	}
	if _, err := ParseExpiry(in.Expiry); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// SecretWarning is shown alongside a freshly created key's secret.
const SecretWarning = "This is the only time the full key will be displayed. " +
	"Store it now; the engine only reports the prefix from here on."

// Created carries the outcome of a key creation. Key.Value is the one-time
// secret: render it once together with Warning, then drop it.
type Created struct {
	Key     *typesense.Key
	Warning string
}

// Create validates the input, splits the scope lists into trimmed ordered
// tokens and submits the creation request.
func (s *Surface) Create(ctx context.Context, in Input) (*Created, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	expiresAt, err := ParseExpiry(in.Expiry)
	if err != nil {
		return nil, err
	}

	key, err := s.keys.Create(ctx, &typesense.KeyRequest{
		Description: in.Description,
		Actions:     SplitCSV(in.Actions),
		Collections: SplitCSV(in.Collections),
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created key", "id", key.ID, "prefix", key.ValuePrefix)

	return &Created{Key: key, Warning: SecretWarning}, nil
}

// Delete revokes a key by id and returns a confirmation message.
func (s *Surface) Delete(ctx context.Context, id int64) (string, error) {
	if _, err := s.keys.Delete(ctx, id); err != nil {
		return "", err
	}

	s.logger.Info("deleted key", "id", id)

	return fmt.Sprintf("Key %d has been deleted.", id), nil
}
