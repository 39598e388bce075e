// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidCursor is returned when the "changed since" query parameter
	// is neither an integer nor a decimal number of epoch seconds.
	ErrInvalidCursor = errors.New("invalid update cursor")

	// ErrUnknownKind is returned when an admin path names no item kind.
	ErrUnknownKind = errors.New("unknown item kind")

	// ErrAdminSecretMismatch is returned when the admin secret header is
	// absent or does not match the configured secret.
	ErrAdminSecretMismatch = errors.New("admin secret is missing or invalid")
)
