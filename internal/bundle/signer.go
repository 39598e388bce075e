// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/smallstep/pkcs7"
)

//go:generate mockgen -source=signer.go -destination=../mock/signer_mock.go -package=mock

// Signer produces a detached CMS (PKCS#7 signed-data) signature over
// content. Implementations must honour ctx cancellation and deadlines.
//
// Signatures are not deterministic: two calls over the same content may
// return different bytes that both verify against the same chain.
type Signer interface {
	Sign(ctx context.Context, content []byte) ([]byte, error)
}

// NewSigner builds the signer selected by cfg.Engine.
func NewSigner(cfg config.Signing) Signer {
	if cfg.Engine == config.SigningEngineOpenSSL {
		return NewOpenSSLSigner(cfg)
	}
	return NewNativeSigner(cfg)
}

// NativeSigner signs in-process. Credentials are loaded on first use and
// cached for the lifetime of the signer, including a load error.
type NativeSigner struct {
	load func() (*Credentials, error)

	once  sync.Once
	creds *Credentials
	err   error
}

// NewNativeSigner returns a signer that lazily loads its identity from cfg.
func NewNativeSigner(cfg config.Signing) *NativeSigner {
	return &NativeSigner{
		load: func() (*Credentials, error) {
			return LoadCredentials(cfg)
		},
	}
}

// Credentials returns the cached signing identity, loading it if needed.
func (s *NativeSigner) Credentials() (*Credentials, error) {
	s.once.Do(func() {
		s.creds, s.err = s.load()
	})
	return s.creds, s.err
}

// Sign implements [Signer].
func (s *NativeSigner) Sign(ctx context.Context, content []byte) ([]byte, error) {
	creds, err := s.Credentials()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, contextSigningError(err)
	}

	type result struct {
		signature []byte
		err       error
	}

	done := make(chan result, 1)
	go func() {
		signature, err := signDetached(creds, content)
		done <- result{signature: signature, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, contextSigningError(ctx.Err())
	case r := <-done:
		return r.signature, r.err
	}
}

func signDetached(creds *Credentials, content []byte) ([]byte, error) {
	signedData, err := pkcs7.NewSignedData(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	signedData.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)

	if err := signedData.AddSignerChain(creds.Certificate, creds.PrivateKey, creds.Chain, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	signedData.Detach()

	signature, err := signedData.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}

	return signature, nil
}

func contextSigningError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrSigningTimedOut, err)
	}
	return fmt.Errorf("%w: %w", ErrSigningFailed, err)
}
