package main

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/metrics"
	"github.com/MKhiriev/go-wallet-issuer/internal/push"
	"github.com/MKhiriev/go-wallet-issuer/internal/service"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

// newDependencies builds a signer and a push transport for every enabled
// kind. Without a push endpoint each kind gets a no-op transport.
func newDependencies(cfg *config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) (service.Dependencies, error) {
	deps := service.Dependencies{
		Signers:    make(map[models.Kind]bundle.Signer),
		Transports: make(map[models.Kind]push.Transport),
		Metrics:    m,
	}

	for _, kind := range models.Kinds() {
		wallet := cfg.Kind(kind.String())
		if !wallet.Enabled() {
			continue
		}

		signer := bundle.NewSigner(wallet.Signing)
		deps.Signers[kind] = signer

		if !cfg.Push.Enabled() {
			deps.Transports[kind] = push.Nop{}
			log.Warn().Str("kind", kind.String()).Msg("push endpoint is not set, update notifications are disabled")
			continue
		}

		transport, err := newTransport(cfg.Push, wallet.Signing, signer)
		if err != nil {
			return service.Dependencies{}, fmt.Errorf("%s push transport: %w", kind, err)
		}
		deps.Transports[kind] = transport
	}

	return deps, nil
}

// newTransport authenticates with the provider token when configured and
// falls back to the kind's signing certificate otherwise.
func newTransport(cfg config.Push, signing config.Signing, signer bundle.Signer) (push.Transport, error) {
	if cfg.TokenAuth() {
		return push.NewAPNsClient(cfg, nil)
	}

	var (
		creds *bundle.Credentials
		err   error
	)
	if native, ok := signer.(*bundle.NativeSigner); ok {
		creds, err = native.Credentials()
	} else {
		creds, err = bundle.LoadCredentials(signing)
	}
	if err != nil {
		return nil, err
	}

	cert := creds.TLSCertificate()
	return push.NewAPNsClient(cfg, &cert)
}
