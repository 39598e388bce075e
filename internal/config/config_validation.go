// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Configuration errors
// are fatal: the server refuses to start rather than degrade.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.AdminSecret == "" || cfg.App.AdminSecretHeader == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !cfg.Passes.Enabled() && !cfg.Orders.Enabled() {
		return fmt.Errorf("%w: neither passes nor orders are configured", ErrInvalidWalletConfigs)
	}

	for name, w := range map[string]Wallet{"passes": cfg.Passes, "orders": cfg.Orders} {
		if !w.Enabled() {
			continue
		}
		if err := w.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if cfg.Push.Enabled() {
		if cfg.Push.Concurrency < 1 || cfg.Push.Timeout <= 0 {
			return ErrInvalidPushConfigs
		}
		if cfg.Push.TokenAuth() && (cfg.Push.KeyID == "" || cfg.Push.TeamID == "") {
			return fmt.Errorf("%w: token auth needs key id and team id", ErrInvalidPushConfigs)
		}
	}

	if cfg.Workers.BundleConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (w Wallet) validate() error {
	info, err := os.Stat(w.TemplatesDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: templates dir %q is not a directory", ErrInvalidWalletConfigs, w.TemplatesDir)
	}

	s := w.Signing
	switch s.Engine {
	case SigningEngineNative:
		if s.P12Path == "" && (s.CertPath == "" || s.KeyPath == "") {
			return fmt.Errorf("%w: certificate and key or a p12 bundle are required", ErrInvalidSigningConfigs)
		}
	case SigningEngineOpenSSL:
		if s.CertPath == "" || s.KeyPath == "" {
			return fmt.Errorf("%w: openssl engine needs certificate and key files", ErrInvalidSigningConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidSigningConfigs, s.Engine)
	}

	if s.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidSigningConfigs)
	}

	return nil
}
