// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress         = "localhost:8080"
	defaultRequestTimeout      = 30 * time.Second
	defaultShutdownTimeout     = 15 * time.Second
	defaultAdminSecretHeader   = "X-Admin-Secret"
	defaultSigningTimeout      = 10 * time.Second
	defaultPushTimeout         = 30 * time.Second
	defaultPushConcurrency     = 8
	defaultBundleConcurrency   = 4
	defaultStorageDSN          = "sqlite://wallet.db"
	defaultApplicationVersion  = "dev"
	defaultSigningEngineNative = SigningEngineNative
)

func defaults() *StructuredConfig {
	signing := Signing{
		Engine:  defaultSigningEngineNative,
		Timeout: defaultSigningTimeout,
	}

	return &StructuredConfig{
		App: App{
			AdminSecretHeader: defaultAdminSecretHeader,
			Version:           defaultApplicationVersion,
		},
		Storage: Storage{
			DB: DB{DSN: defaultStorageDSN},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Passes: Wallet{Signing: signing},
		Orders: Wallet{Signing: signing},
		Push: Push{
			Timeout:     defaultPushTimeout,
			Concurrency: defaultPushConcurrency,
		},
		Workers: Workers{
			BundleConcurrency: defaultBundleConcurrency,
		},
	}
}
