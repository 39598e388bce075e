// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package push

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/gammazero/workerpool"
)

// APNs reasons that mean the token will never work for the topic.
const (
	reasonBadDeviceToken         = "BadDeviceToken"
	reasonDeviceTokenNotForTopic = "DeviceTokenNotForTopic"
)

// APNsClient is a [Transport] over the APNs HTTP/2 provider API.
//
// It authenticates either with a TLS client certificate (the pass/order
// signing certificate) or with an ES256 provider token.
type APNsClient struct {
	client  *utils.HTTPClient
	token   *providerToken
	workers int
}

// NewAPNsClient builds a client for cfg.Endpoint. Provider-token auth is
// used when cfg has an auth key; otherwise cert must be non-nil.
func NewAPNsClient(cfg config.Push, cert *tls.Certificate) (*APNsClient, error) {
	c := &APNsClient{
		client:  utils.NewHTTPClient(),
		workers: max(cfg.Concurrency, 1),
	}
	c.client.SetBaseURL(strings.TrimRight(cfg.Endpoint, "/"))
	if cfg.Timeout > 0 {
		c.client.SetTimeout(cfg.Timeout)
	}

	switch {
	case cfg.TokenAuth():
		token, err := loadProviderToken(cfg.AuthKeyPath, cfg.KeyID, cfg.TeamID)
		if err != nil {
			return nil, err
		}
		c.token = token
	case cert != nil:
		c.client.SetCertificates(*cert)
	default:
		return nil, ErrNoCredentials
	}

	return c, nil
}

// Send implements [Transport]. Tokens are delivered concurrently; results
// keep the order of tokens.
func (c *APNsClient) Send(ctx context.Context, topic string, tokens []string) ([]Result, error) {
	var bearer string
	if c.token != nil {
		var err error
		if bearer, err = c.token.Bearer(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(tokens))
	if len(tokens) == 0 {
		return results, nil
	}

	wp := workerpool.New(min(c.workers, len(tokens)))
	for i, token := range tokens {
		wp.Submit(func() {
			results[i] = c.send(ctx, topic, token, bearer)
		})
	}
	wp.StopWait()

	return results, nil
}

type apnsError struct {
	Reason string `json:"reason"`
}

func (c *APNsClient) send(ctx context.Context, topic, token, bearer string) Result {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("apns-topic", topic).
		SetHeader("apns-push-type", "background").
		SetHeader("apns-priority", "5").
		SetHeader("Content-Type", "application/json").
		SetBody([]byte("{}"))
	if bearer != "" {
		req.SetAuthToken(bearer)
	}

	resp, err := req.Post("/3/device/" + url.PathEscape(token))
	if err != nil {
		return Result{Token: token, Outcome: OutcomeFailed, Err: fmt.Errorf("error sending push: %w", err)}
	}

	var body apnsError
	if resp.StatusCode() != http.StatusOK {
		_ = json.Unmarshal(resp.Body(), &body)
	}

	return Result{
		Token:   token,
		Outcome: classify(resp.StatusCode(), body.Reason),
		Reason:  body.Reason,
	}
}

func classify(status int, reason string) Outcome {
	switch {
	case status == http.StatusOK:
		return OutcomeDelivered
	case status == http.StatusGone:
		return OutcomeInvalidToken
	case status == http.StatusBadRequest &&
		(reason == reasonBadDeviceToken || reason == reasonDeviceTokenNotForTopic):
		return OutcomeInvalidToken
	default:
		return OutcomeFailed
	}
}
