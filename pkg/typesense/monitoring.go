package typesense

import (
	"context"
	"net/http"
)

// Health is the engine's liveness report.
type Health struct {
	Ok bool `json:"ok"`
}

// RetrieveHealth asks the engine whether it is alive.
func (c *Client) RetrieveHealth(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, "RetrieveHealth", http.MethodGet, "/health", nil, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// RetrieveDebug returns the engine's debug diagnostics verbatim.
func (c *Client) RetrieveDebug(ctx context.Context) (map[string]any, error) {
	var d map[string]any
	if err := c.do(ctx, "RetrieveDebug", http.MethodGet, "/debug", nil, nil, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// RetrieveMetrics returns the engine's system metrics verbatim.
func (c *Client) RetrieveMetrics(ctx context.Context) (map[string]any, error) {
	var m map[string]any
	if err := c.do(ctx, "RetrieveMetrics", http.MethodGet, "/metrics.json", nil, nil, &m); err != nil {
		return nil, err
	}
	return m, nil
}
