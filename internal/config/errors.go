package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing admin secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWalletConfigs indicates that no kind is served or a
	// templates directory is unusable.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidSigningConfigs indicates an incomplete signing identity.
	ErrInvalidSigningConfigs = errors.New("invalid signing configuration")
	// ErrInvalidPushConfigs indicates invalid push transport settings.
	ErrInvalidPushConfigs = errors.New("invalid push configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker settings
	// (for example, zero batch concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ErrInvalidClientConfigs indicates a missing issuer address or admin
// secret in the client configuration.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")
