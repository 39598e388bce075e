// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Signing engines accepted by [Signing.Engine].
const (
	SigningEngineNative  = "native"
	SigningEngineOpenSSL = "openssl"
)

// StructuredConfig is the top-level configuration container for the
// go-wallet-issuer application. It aggregates all sub-configurations and is
// populated by merging values from defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the admin secret and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Passes configures issuing of pass bundles.
	Passes Wallet `envPrefix:"PASSES_"`

	// Orders configures issuing of order bundles.
	Orders Wallet `envPrefix:"ORDERS_"`

	// Push configures the APNs transport used for update notifications.
	Push Push `envPrefix:"PUSH_"`

	// Workers holds configuration for background and batch workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// AdminSecret is the shared secret required by every admin endpoint.
	// Env: APP_ADMIN_SECRET
	AdminSecret string `env:"ADMIN_SECRET"`

	// AdminSecretHeader names the request header carrying AdminSecret.
	// Env: APP_ADMIN_SECRET_HEADER
	AdminSecretHeader string `env:"ADMIN_SECRET_HEADER"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL, a "sqlite://" URL, "file:" URI or plain path opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Wallet configures one item kind. A kind is served only when its
// TemplatesDir is set.
type Wallet struct {
	// TemplatesDir is the directory holding one sub-directory per template.
	// Env: PASSES_TEMPLATES_DIR / ORDERS_TEMPLATES_DIR
	TemplatesDir string `env:"TEMPLATES_DIR"`

	// WebServiceURL is written into every issued document so devices know
	// where to register (e.g. "https://wallet.example.com/api/passes").
	// Env: PASSES_WEB_SERVICE_URL / ORDERS_WEB_SERVICE_URL
	WebServiceURL string `env:"WEB_SERVICE_URL"`

	// Signing holds the signing identity of this kind.
	Signing Signing `envPrefix:"SIGNING_"`
}

// Enabled reports whether the kind is configured to be served.
func (w Wallet) Enabled() bool {
	return w.TemplatesDir != ""
}

// Signing describes a signing identity and the engine that uses it.
type Signing struct {
	// Engine is either "native" (in-process CMS) or "openssl".
	// Env: *_SIGNING_ENGINE
	Engine string `env:"ENGINE"`

	// CertPath is the PEM leaf certificate.
	// Env: *_SIGNING_CERT_PATH
	CertPath string `env:"CERT_PATH"`

	// KeyPath is the PEM private key of the leaf certificate.
	// Env: *_SIGNING_KEY_PATH
	KeyPath string `env:"KEY_PATH"`

	// KeyPassword decrypts KeyPath or P12Path.
	// Env: *_SIGNING_KEY_PASSWORD
	KeyPassword string `env:"KEY_PASSWORD"`

	// ChainPath holds the intermediate (WWDR) certificate, PEM or DER.
	// Env: *_SIGNING_CHAIN_PATH
	ChainPath string `env:"CHAIN_PATH"`

	// P12Path is a PKCS#12 bundle used instead of CertPath and KeyPath.
	// Native engine only.
	// Env: *_SIGNING_P12_PATH
	P12Path string `env:"P12_PATH"`

	// OpenSSLPath overrides the openssl executable.
	// Env: *_SIGNING_OPENSSL_PATH
	OpenSSLPath string `env:"OPENSSL_PATH"`

	// Timeout bounds a single signing call.
	// Env: *_SIGNING_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Push configures the APNs provider connection. Push is enabled when
// Endpoint is set.
type Push struct {
	// Endpoint is the APNs base URL, e.g. "https://api.push.apple.com".
	// Env: PUSH_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Timeout bounds one notification fan-out.
	// Env: PUSH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Concurrency is the size of the asynchronous dispatch pool.
	// Env: PUSH_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// KeyID, TeamID and AuthKeyPath enable provider-token authentication.
	// When AuthKeyPath is empty the signing certificate of the item kind
	// is used as the TLS client certificate.
	// Env: PUSH_KEY_ID, PUSH_TEAM_ID, PUSH_AUTH_KEY_PATH
	KeyID       string `env:"KEY_ID"`
	TeamID      string `env:"TEAM_ID"`
	AuthKeyPath string `env:"AUTH_KEY_PATH"`
}

// Enabled reports whether update notifications are delivered.
func (p Push) Enabled() bool {
	return p.Endpoint != ""
}

// TokenAuth reports whether provider-token authentication is configured.
func (p Push) TokenAuth() bool {
	return p.AuthKeyPath != ""
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BundleConcurrency bounds concurrent item generation in a batch.
	// Env: WORKERS_BUNDLE_CONCURRENCY
	BundleConcurrency int `env:"BUNDLE_CONCURRENCY"`

	// OrphanSweepInterval enables the periodic orphan-device sweep when
	// positive.
	// Env: WORKERS_ORPHAN_SWEEP_INTERVAL
	OrphanSweepInterval time.Duration `env:"ORPHAN_SWEEP_INTERVAL"`
}

// Kind returns the wallet configuration for the named kind ("pass" or
// "order"). Unknown names return a zero Wallet.
func (cfg *StructuredConfig) Kind(name string) Wallet {
	switch name {
	case "pass":
		return cfg.Passes
	case "order":
		return cfg.Orders
	default:
		return Wallet{}
	}
}

const redacted = "[REDACTED]"

// Redacted returns a copy of cfg that is safe to log: the admin secret and
// the signing key passwords are masked when set.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	cfg.App.AdminSecret = mask(cfg.App.AdminSecret)
	cfg.Passes.Signing.KeyPassword = mask(cfg.Passes.Signing.KeyPassword)
	cfg.Orders.Signing.KeyPassword = mask(cfg.Orders.Signing.KeyPassword)
	return cfg
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
