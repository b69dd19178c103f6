package typesense

import (
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Config contains connection parameters for a remote Typesense engine. A
// Config is built once per engine instance and must not be mutated after the
// client is constructed.
type Config struct {
	// Host of the engine, without scheme or port.
	// Example: "search.example.com"
	Host string

	// Port the engine listens on.
	Port int

	// Protocol is "http" or "https". It decides whether the transport
	// negotiates TLS.
	Protocol string

	// APIKey is sent as the X-TYPESENSE-API-KEY header on every request.
	APIKey string

	// ConnectionTimeout bounds every round trip, including the health check
	// issued at construction. Default: 10 seconds. The façade has no other
	// timeout or cancellation logic of its own.
	ConnectionTimeout time.Duration

	// Logger (optional).
	Logger hclog.Logger
}

// DefaultConfig returns a Config with sensible defaults for a local engine.
func DefaultConfig() *Config {
	return &Config{
		Host:              "localhost",
		Port:              8108,
		Protocol:          "http",
		ConnectionTimeout: 10 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Protocol, validation.Required, validation.In("http", "https")),
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.ConnectionTimeout, validation.Required, validation.Min(time.Duration(1))),
	)
}

// BaseURL returns the engine root URL, without a trailing slash.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Protocol, c.Host, c.Port)
}

// NewHTTPClient creates the HTTP client the façade uses for every call.
// Connection pooling and timeouts live here; the façade adds neither.
func (c *Config) NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: c.ConnectionTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
