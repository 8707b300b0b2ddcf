package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:8080").
	HTTPAddress string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter `envPrefix:"NOVEL_"`
	// Token is a previously issued access token, if any.
	Token string `env:"NOVEL_TOKEN"`
}

// GetClientConfig loads the client configuration from environment variables
// and validates it. Command-line flags of the client override the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, cfg.validate()
}

// Validate re-checks the config after the caller applied its own overrides.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
