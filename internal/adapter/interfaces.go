// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the REST client of the issuer's admin API.
//
// Every request carries the admin secret header. Non-2xx responses are
// mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet-issuer/models"
)

// IssuerAdapter talks to the admin and push endpoints of a running issuer.
// kind is a wallet family; typeID and serial address one item.
type IssuerAdapter interface {
	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)

	// CreateItem creates an item and returns it with its generated fields.
	CreateItem(ctx context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error)

	// UpdateItem replaces the content of an item. The server bumps its
	// modification time and notifies registered devices.
	UpdateItem(ctx context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error)

	// DeleteItem removes an item with its registrations.
	DeleteItem(ctx context.Context, kind models.Kind, typeID, serial string) error

	// BatchBundle downloads one archive holding the bundles of every listed
	// item, in request order.
	BatchBundle(ctx context.Context, kind models.Kind, req models.BatchBundleRequest) ([]byte, error)

	// PushTokens lists the push tokens registered for an item.
	PushTokens(ctx context.Context, kind models.Kind, typeID, serial string) ([]string, error)

	// SendPush asks the server to notify every device registered for an
	// item.
	SendPush(ctx context.Context, kind models.Kind, typeID, serial string) error

	// SweepOrphanDevices deletes devices without registrations and returns
	// how many were removed.
	SweepOrphanDevices(ctx context.Context) (int64, error)
}
