// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import "errors"

// Configuration errors. They are surfaced to the operator at startup or at
// the first bundle generation and never silently degraded.
var (
	// ErrTemplateNotDirectory is returned when a template path does not
	// resolve to a directory.
	ErrTemplateNotDirectory = errors.New("template path is not a directory")

	// ErrPemCertificateMissing is returned when no signing certificate is
	// configured or the configured file holds no certificate.
	ErrPemCertificateMissing = errors.New("signing certificate is missing")

	// ErrPemPrivateKeyMissing is returned when no private key is configured
	// or the configured file holds no key.
	ErrPemPrivateKeyMissing = errors.New("signing private key is missing")

	// ErrSigningToolUnavailable is returned when the external signing
	// executable cannot be located.
	ErrSigningToolUnavailable = errors.New("signing tool is unavailable")

	// ErrKeyReadFailed wraps the cause of a key or certificate that cannot
	// be parsed, e.g. because of a wrong password.
	ErrKeyReadFailed = errors.New("failed to read signing key")
)

// Generation errors.
var (
	// ErrSigningTimedOut is returned when the signer does not finish within
	// its deadline.
	ErrSigningTimedOut = errors.New("signing timed out")

	// ErrSigningFailed wraps any other signer failure.
	ErrSigningFailed = errors.New("signing failed")

	// ErrInvalidProperties is returned when item properties are not a JSON
	// object.
	ErrInvalidProperties = errors.New("item properties must be a JSON object")

	// ErrArchiveFailed wraps zip writer failures.
	ErrArchiveFailed = errors.New("failed to build bundle archive")
)
