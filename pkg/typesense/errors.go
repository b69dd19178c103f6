package typesense

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the client façade. They are always wrapped in
// *Error; match them with errors.Is.
var (
	// ErrNotFound reports that a collection, document or synonym does not
	// exist on the remote engine.
	ErrNotFound = errors.New("not found on search engine")

	// ErrKeyNotFound reports that an API key id is unknown to the engine.
	ErrKeyNotFound = errors.New("api key not found on search engine")

	// ErrEngineUnavailable reports that the engine could not be reached or
	// answered with a gateway/availability status.
	ErrEngineUnavailable = errors.New("search engine unavailable")

	// ErrInvalidSchema reports a collection schema the engine would reject.
	ErrInvalidSchema = errors.New("invalid collection schema")
)

// Error is the single error kind every façade operation returns. It carries
// the operation that failed, an optional human-readable message, the HTTP
// status code when the engine answered at all, and the underlying cause.
type Error struct {
	Op         string
	Msg        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Msg, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}
