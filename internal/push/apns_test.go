package push

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Path          string
	Topic         string
	PushType      string
	Priority      string
	Authorization string
	Body          string
}

// apnsStub answers per token: "gone" → 410, "bad" → 400 BadDeviceToken,
// "topic" → 400 DeviceTokenNotForTopic, "busy" → 429, anything else → 200.
func apnsStub(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []recordedRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mu.Lock()
		requests = append(requests, recordedRequest{
			Path:          r.URL.Path,
			Topic:         r.Header.Get("apns-topic"),
			PushType:      r.Header.Get("apns-push-type"),
			Priority:      r.Header.Get("apns-priority"),
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})
		mu.Unlock()

		token := strings.TrimPrefix(r.URL.Path, "/3/device/")
		switch token {
		case "gone":
			w.WriteHeader(http.StatusGone)
			_ = json.NewEncoder(w).Encode(map[string]any{"reason": "Unregistered", "timestamp": 1700000000000})
		case "bad":
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"reason": reasonBadDeviceToken})
		case "topic":
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"reason": reasonDeviceTokenNotForTopic})
		case "payload":
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"reason": "PayloadEmpty"})
		case "busy":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func writeAuthKey(t *testing.T) (string, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "AuthKey_TEST.p8")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600))
	return path, key
}

func tokenClient(t *testing.T, endpoint string) (*APNsClient, *ecdsa.PrivateKey) {
	t.Helper()

	keyPath, key := writeAuthKey(t)
	c, err := NewAPNsClient(config.Push{
		Endpoint:    endpoint,
		Timeout:     5 * time.Second,
		Concurrency: 4,
		KeyID:       "KEY123",
		TeamID:      "TEAM123",
		AuthKeyPath: keyPath,
	}, nil)
	require.NoError(t, err)
	return c, key
}

func TestAPNsClient_SendClassifiesOutcomes(t *testing.T) {
	srv, requests := apnsStub(t)
	c, _ := tokenClient(t, srv.URL)

	tokens := []string{"ok1", "gone", "bad", "topic", "payload", "busy", "ok2"}
	results, err := c.Send(context.Background(), "pass.com.example.test", tokens)
	require.NoError(t, err)
	require.Len(t, results, len(tokens))

	want := []Outcome{
		OutcomeDelivered,
		OutcomeInvalidToken,
		OutcomeInvalidToken,
		OutcomeInvalidToken,
		OutcomeFailed,
		OutcomeFailed,
		OutcomeDelivered,
	}
	for i, r := range results {
		assert.Equal(t, tokens[i], r.Token)
		assert.Equal(t, want[i], r.Outcome, r.Token)
	}
	assert.Equal(t, reasonBadDeviceToken, results[2].Reason)
	assert.Equal(t, "Unregistered", results[1].Reason)

	reqs := requests()
	require.Len(t, reqs, len(tokens))
	for _, r := range reqs {
		assert.Equal(t, "pass.com.example.test", r.Topic)
		assert.Equal(t, "background", r.PushType)
		assert.Equal(t, "5", r.Priority)
		assert.Equal(t, "{}", r.Body)
		assert.True(t, strings.HasPrefix(r.Authorization, "Bearer "), r.Authorization)
	}
}

func TestAPNsClient_ProviderTokenClaims(t *testing.T) {
	srv, requests := apnsStub(t)
	c, key := tokenClient(t, srv.URL)

	_, err := c.Send(context.Background(), "order.com.example.test", []string{"ok"})
	require.NoError(t, err)

	reqs := requests()
	require.Len(t, reqs, 1)
	raw := strings.TrimPrefix(reqs[0].Authorization, "Bearer ")

	parsed, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}))
	require.NoError(t, err)

	assert.Equal(t, "KEY123", parsed.Header["kid"])
	iss, err := parsed.Claims.GetIssuer()
	require.NoError(t, err)
	assert.Equal(t, "TEAM123", iss)
}

func TestAPNsClient_EmptyTokens(t *testing.T) {
	srv, requests := apnsStub(t)
	c, _ := tokenClient(t, srv.URL)

	results, err := c.Send(context.Background(), "pass.com.example.test", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, requests())
}

func TestAPNsClient_UnreachableEndpointFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	c, _ := tokenClient(t, endpoint)
	results, err := c.Send(context.Background(), "pass.com.example.test", []string{"ok"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, OutcomeFailed, results[0].Outcome)
	assert.Error(t, results[0].Err)
}

func TestAPNsClient_ClientCertificate(t *testing.T) {
	var gotCert atomic.Bool
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCert.Store(r.TLS != nil && len(r.TLS.PeerCertificates) == 1)
		w.WriteHeader(http.StatusOK)
	}))
	srv.TLS = &tls.Config{ClientAuth: tls.RequireAnyClientCert}
	srv.StartTLS()
	t.Cleanup(srv.Close)

	clientCert := srv.TLS.Certificates[0]
	c, err := NewAPNsClient(config.Push{Endpoint: srv.URL, Concurrency: 1}, &clientCert)
	require.NoError(t, err)

	serverCert := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	c.client.SetRootCertificateFromString(string(serverCert))

	results, err := c.Send(context.Background(), "pass.com.example.test", []string{"ok"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, OutcomeDelivered, results[0].Outcome, results[0].Err)
	assert.True(t, gotCert.Load())
}

func TestNewAPNsClient_Errors(t *testing.T) {
	_, err := NewAPNsClient(config.Push{Endpoint: "https://api.push.apple.com"}, nil)
	assert.ErrorIs(t, err, ErrNoCredentials)

	_, err = NewAPNsClient(config.Push{
		Endpoint:    "https://api.push.apple.com",
		AuthKeyPath: filepath.Join(t.TempDir(), "missing.p8"),
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidAuthKey)

	garbage := filepath.Join(t.TempDir(), "garbage.p8")
	require.NoError(t, os.WriteFile(garbage, []byte("nope"), 0o600))
	_, err = NewAPNsClient(config.Push{Endpoint: "https://api.push.apple.com", AuthKeyPath: garbage}, nil)
	assert.ErrorIs(t, err, ErrInvalidAuthKey)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeDelivered, classify(http.StatusOK, ""))
	assert.Equal(t, OutcomeInvalidToken, classify(http.StatusGone, "Unregistered"))
	assert.Equal(t, OutcomeInvalidToken, classify(http.StatusBadRequest, reasonBadDeviceToken))
	assert.Equal(t, OutcomeInvalidToken, classify(http.StatusBadRequest, reasonDeviceTokenNotForTopic))
	assert.Equal(t, OutcomeFailed, classify(http.StatusBadRequest, "BadTopic"))
	assert.Equal(t, OutcomeFailed, classify(http.StatusInternalServerError, "InternalServerError"))
	assert.Equal(t, OutcomeFailed, classify(http.StatusForbidden, "ExpiredProviderToken"))
}

func TestNop_DeliversEverything(t *testing.T) {
	results, err := Nop{}.Send(context.Background(), "topic", []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, OutcomeDelivered, r.Outcome)
	}
	assert.Equal(t, "invalid_token", OutcomeInvalidToken.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
