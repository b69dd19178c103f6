// Package config loads the admin CLI's HCL configuration file and turns it
// into a client façade configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/robertoperuzzo/typesense-drupal/pkg/typesense"
)

// APIKeyEnvVar names the environment variable consulted when the config
// file omits api_key, so secrets can stay out of checked-in files.
const APIKeyEnvVar = "TYPESENSE_API_KEY"

// File is the root of the HCL configuration file.
//
// Example:
//
//	typesense {
//	  host               = "localhost"
//	  port               = 8108
//	  protocol           = "http"
//	  api_key            = "xyz"
//	  connection_timeout = "10s"
//	}
type File struct {
	Typesense *Block `hcl:"typesense,block"`
}

// Block holds the typesense connection block.
type Block struct {
	Host              string `hcl:"host"`
	Port              int    `hcl:"port"`
	Protocol          string `hcl:"protocol"`
	APIKey            string `hcl:"api_key,optional"`
	ConnectionTimeout string `hcl:"connection_timeout,optional"`
}

// Load parses the HCL file at path into a façade configuration. The result
// is not validated here; typesense.NewClient validates on construction.
func Load(path string) (*typesense.Config, error) {
	var f File
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if f.Typesense == nil {
		return nil, fmt.Errorf("config file %s has no typesense block", path)
	}

	cfg := typesense.DefaultConfig()
	cfg.Host = f.Typesense.Host
	cfg.Port = f.Typesense.Port
	cfg.Protocol = f.Typesense.Protocol
	cfg.APIKey = f.Typesense.APIKey

	if f.Typesense.ConnectionTimeout != "" {
		d, err := time.ParseDuration(f.Typesense.ConnectionTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid connection_timeout: %w", err)
		}
		cfg.ConnectionTimeout = d
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(APIKeyEnvVar)
	}

	return cfg, nil
}
