package utils

import (
	"errors"
	"strings"
)

// ErrInvalidAuthorization is returned when an Authorization header is
// missing, malformed or uses another scheme.
var ErrInvalidAuthorization = errors.New("invalid authorization header")

// ParseAuthorization extracts the credentials of an Authorization header of
// the form "<scheme> <credentials>". The scheme is matched exactly.
//
// Example usage:
//
//	token, err := utils.ParseAuthorization(r.Header.Get("Authorization"), "ApplePass")
func ParseAuthorization(header, scheme string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != scheme || parts[1] == "" {
		return "", ErrInvalidAuthorization
	}
	return parts[1], nil
}
