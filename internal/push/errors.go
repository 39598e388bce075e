package push

import "errors"

var (
	// ErrNoCredentials is returned when neither a client certificate nor a
	// provider token key is configured.
	ErrNoCredentials = errors.New("push credentials are not configured")

	// ErrInvalidAuthKey is returned when the provider token key cannot be
	// read or is not an ECDSA P-256 key.
	ErrInvalidAuthKey = errors.New("invalid push auth key")

	// ErrTokenSigning wraps provider token signing failures.
	ErrTokenSigning = errors.New("failed to sign push provider token")
)
