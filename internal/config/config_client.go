package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the admin command-line client.
type ClientConfig struct {
	// Address is the base URL of the issuer, e.g. "http://localhost:8080".
	// Env: ISSUER_ADDRESS
	Address string `env:"ISSUER_ADDRESS"`

	// AdminSecret is sent in AdminSecretHeader on every admin request.
	// Env: ISSUER_ADMIN_SECRET
	AdminSecret string `env:"ISSUER_ADMIN_SECRET"`

	// Env: ISSUER_ADMIN_SECRET_HEADER
	AdminSecretHeader string `env:"ISSUER_ADMIN_SECRET_HEADER"`

	// RequestTimeout bounds one outbound request.
	// Env: ISSUER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ISSUER_REQUEST_TIMEOUT"`
}

func clientDefaults() *ClientConfig {
	return &ClientConfig{
		Address:           "http://" + defaultHTTPAddress,
		AdminSecretHeader: defaultAdminSecretHeader,
		RequestTimeout:    defaultRequestTimeout,
	}
}

// GetClientConfig loads the client configuration from defaults overridden
// by environment variables.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := clientDefaults()
	if err := mergo.Merge(cfg, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Address == "" || cfg.AdminSecret == "" || cfg.AdminSecretHeader == "" {
		return ErrInvalidClientConfigs
	}
	if cfg.RequestTimeout < 0 {
		return ErrInvalidClientConfigs
	}
	return nil
}
