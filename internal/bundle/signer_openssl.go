// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
)

const defaultOpenSSLBinary = "openssl"

// OpenSSLSigner signs by running `openssl smime` as a subprocess. The
// process is killed when ctx is done.
type OpenSSLSigner struct {
	binary string
	cfg    config.Signing
}

// NewOpenSSLSigner returns a subprocess signer. cfg.OpenSSLPath selects the
// executable; an empty value means "openssl" on PATH.
func NewOpenSSLSigner(cfg config.Signing) *OpenSSLSigner {
	binary := cfg.OpenSSLPath
	if binary == "" {
		binary = defaultOpenSSLBinary
	}

	return &OpenSSLSigner{
		binary: binary,
		cfg:    cfg,
	}
}

// Sign implements [Signer].
func (s *OpenSSLSigner) Sign(ctx context.Context, content []byte) ([]byte, error) {
	if s.cfg.CertPath == "" {
		return nil, ErrPemCertificateMissing
	}
	if s.cfg.KeyPath == "" {
		return nil, ErrPemPrivateKeyMissing
	}

	binary, err := exec.LookPath(s.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningToolUnavailable, err)
	}

	workDir, err := os.MkdirTemp("", "wallet-sign-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	defer os.RemoveAll(workDir)

	in := filepath.Join(workDir, "content")
	out := filepath.Join(workDir, "signature")
	if err := os.WriteFile(in, content, 0o600); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}

	args := []string{
		"smime", "-binary", "-sign",
		"-signer", s.cfg.CertPath,
		"-inkey", s.cfg.KeyPath,
		"-in", in,
		"-out", out,
		"-outform", "DER",
	}
	if s.cfg.ChainPath != "" {
		args = append(args, "-certfile", s.cfg.ChainPath)
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.WaitDelay = time.Second
	if s.cfg.KeyPassword != "" {
		cmd.Args = append(cmd.Args, "-passin", "stdin")
		cmd.Stdin = strings.NewReader(s.cfg.KeyPassword + "\n")
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, contextSigningError(ctxErr)
		}
		return nil, classifyOpenSSLError(err, stderr.String())
	}

	signature, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}

	return signature, nil
}

func classifyOpenSSLError(err error, stderr string) error {
	msg := strings.ToLower(stderr)
	var execErr *exec.Error
	switch {
	case errors.As(err, &execErr):
		return fmt.Errorf("%w: %w", ErrSigningToolUnavailable, err)
	case strings.Contains(msg, "bad decrypt"),
		strings.Contains(msg, "signing key"),
		strings.Contains(msg, "private key"):
		return fmt.Errorf("%w: %w: %s", ErrKeyReadFailed, err, strings.TrimSpace(stderr))
	default:
		return fmt.Errorf("%w: %w: %s", ErrSigningFailed, err, strings.TrimSpace(stderr))
	}
}
