// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package push delivers silent update notifications to wallet devices.
//
// A notification carries no payload: it only tells the device that items
// of a given type identifier changed, after which the device polls the web
// service. Delivery is therefore best effort and never the only path by
// which a device learns about an update.
package push

import (
	"context"
)

//go:generate mockgen -source=push.go -destination=../mock/push_mock.go -package=mock

// Outcome is the per-token delivery result reported by a [Transport].
type Outcome int

const (
	// OutcomeDelivered means the push service accepted the notification.
	OutcomeDelivered Outcome = iota + 1
	// OutcomeInvalidToken means the token is permanently unusable for the
	// topic. The registration behind it should be removed.
	OutcomeInvalidToken
	// OutcomeFailed is any transient or unexpected failure. The
	// registration is kept.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeInvalidToken:
		return "invalid_token"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one token.
type Result struct {
	Token   string
	Outcome Outcome

	// Reason is the push service's reason string, if any.
	Reason string
	// Err is set for OutcomeFailed when the request itself failed.
	Err error
}

// Transport sends a silent notification for topic to every token. It
// returns one [Result] per token, in token order. The returned error is
// reserved for failures that affect every token, such as unusable
// credentials.
type Transport interface {
	Send(ctx context.Context, topic string, tokens []string) ([]Result, error)
}

// Nop is a [Transport] that reports every token as delivered without
// contacting anything. It is used when push is disabled.
type Nop struct{}

// Send implements [Transport].
func (Nop) Send(_ context.Context, _ string, tokens []string) ([]Result, error) {
	results := make([]Result, len(tokens))
	for i, token := range tokens {
		results[i] = Result{Token: token, Outcome: OutcomeDelivered}
	}
	return results, nil
}
