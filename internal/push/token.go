package push

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLifetime is how long a provider token is reused. The push service
// rejects tokens older than one hour and throttles tokens refreshed more
// often than every twenty minutes.
const tokenLifetime = 50 * time.Minute

// providerToken issues and caches the ES256 bearer token used for
// token-based authentication.
type providerToken struct {
	keyID  string
	teamID string
	key    *ecdsa.PrivateKey
	now    func() time.Time

	mu       sync.Mutex
	token    string
	issuedAt time.Time
}

func loadProviderToken(path, keyID, teamID string) (*providerToken, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthKey, err)
	}

	key, err := jwt.ParseECPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthKey, err)
	}

	return newProviderToken(key, keyID, teamID), nil
}

func newProviderToken(key *ecdsa.PrivateKey, keyID, teamID string) *providerToken {
	return &providerToken{
		keyID:  keyID,
		teamID: teamID,
		key:    key,
		now:    time.Now,
	}
}

// Bearer returns a cached token, signing a new one when the cached token
// is older than tokenLifetime.
func (p *providerToken) Bearer() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.token != "" && now.Sub(p.issuedAt) < tokenLifetime {
		return p.token, nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iss": p.teamID,
		"iat": now.Unix(),
	})
	token.Header["kid"] = p.keyID

	signed, err := token.SignedString(p.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	p.token = signed
	p.issuedAt = now
	return signed, nil
}
