package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// authTokenBytes is the entropy of generated authentication tokens. Wallet
// clients require at least 16 characters.
const authTokenBytes = 20

// UUIDGenerator issues item serials and authentication tokens.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// AuthToken returns a random hex authentication token.
func (g *UUIDGenerator) AuthToken() string {
	buf := make([]byte, authTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return hex.EncodeToString([]byte(uuid.NewString()))
	}
	return hex.EncodeToString(buf)
}
