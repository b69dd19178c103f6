package typesense

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const apiKeyHeader = "X-TYPESENSE-API-KEY"

// Client is a façade over the remote Typesense HTTP API. It normalizes the
// engine's REST surface (collections, documents, synonyms, keys,
// health/debug/metrics) into typed local calls and translates every
// transport or remote failure into *Error.
//
// A Client holds only its configuration, an *http.Client and a logger, and
// is immutable after construction, so concurrent use from multiple
// goroutines is safe. It caches nothing across calls: every existence check
// is a fresh round trip, because collections can be created or dropped by
// other actors between calls.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     hclog.Logger
}

// NewClient builds a client and verifies the engine is reachable with a
// health check. Any failure (network, non-2xx status, malformed response)
// returns *Error and no client, so a constructed client implies the engine
// was healthy at construction time. It implies nothing about later calls.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.ConnectionTimeout == 0 {
		cfg.ConnectionTimeout = DefaultConfig().ConnectionTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Op: "NewClient", Msg: "invalid config", Err: err}
	}

	c := &Client{
		config:     cfg,
		httpClient: cfg.NewHTTPClient(),
		logger:     cfg.Logger.Named("typesense-client"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectionTimeout)
	defer cancel()

	health, err := c.RetrieveHealth(ctx)
	if err != nil {
		return nil, err
	}
	if !health.Ok {
		return nil, &Error{
			Op:  "NewClient",
			Msg: "engine reported unhealthy",
			Err: ErrEngineUnavailable,
		}
	}

	c.logger.Debug("connected to engine", "base_url", cfg.BaseURL())

	return c, nil
}

// do executes one engine round trip and decodes the JSON response into
// result when provided. There is no retry: callers needing backoff must
// implement it around the façade.
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, body, result any) error {
	endpoint := c.config.BaseURL() + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Msg: "failed to marshal request body", Err: err}
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return &Error{Op: op, Msg: "failed to create request", Err: err}
	}

	req.Header.Set(apiKeyHeader, c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("engine request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{
			Op:  op,
			Msg: "request failed",
			Err: fmt.Errorf("%w: %w", ErrEngineUnavailable, err),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Msg: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(op, resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{
				Op:         op,
				Msg:        "failed to decode response",
				StatusCode: resp.StatusCode,
				Err:        err,
			}
		}
	}

	return nil
}

// statusError maps a non-2xx engine answer onto the unified error kind,
// preserving the engine's message and status code.
func (c *Client) statusError(op string, status int, body []byte) *Error {
	msg := strings.TrimSpace(string(body))
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}

	var cause error
	switch status {
	case http.StatusNotFound:
		cause = ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		cause = ErrEngineUnavailable
	default:
		cause = fmt.Errorf("engine returned status %d", status)
	}

	return &Error{Op: op, Msg: msg, StatusCode: status, Err: cause}
}
