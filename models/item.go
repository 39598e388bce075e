// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Item is the capability set every issuable record exposes to the bundle
// pipeline, the dispatcher and the protocol handler.
type Item interface {
	// ItemID is the globally unique serial of the item.
	ItemID() uuid.UUID
	// ItemKind is the wallet family of the item.
	ItemKind() Kind
	// ItemTypeIdentifier scopes serials per tenant/template.
	ItemTypeIdentifier() string
	// ItemAuthToken authorizes device-initiated requests about the item.
	ItemAuthToken() string
	// ItemUpdatedAt is bumped on every content mutation.
	ItemUpdatedAt() time.Time
}

// WalletItem is the persisted [Item] row.
type WalletItem struct {
	// ID is the item serial number.
	ID uuid.UUID `json:"serial_number"`

	// Kind is the wallet family (pass or order).
	Kind Kind `json:"kind"`

	// TypeIdentifier is the pass/order type identifier the item was issued
	// under, e.g. "pass.com.example.event".
	TypeIdentifier string `json:"type_identifier"`

	// AuthenticationToken is the shared secret devices present in the
	// Authorization header. It is never returned by device-facing endpoints.
	AuthenticationToken string `json:"authentication_token"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i WalletItem) ItemID() uuid.UUID          { return i.ID }
func (i WalletItem) ItemKind() Kind             { return i.Kind }
func (i WalletItem) ItemTypeIdentifier() string { return i.TypeIdentifier }
func (i WalletItem) ItemAuthToken() string      { return i.AuthenticationToken }
func (i WalletItem) ItemUpdatedAt() time.Time   { return i.UpdatedAt }

// TableName returns the name of the database table associated with
// the WalletItem model.
func (i WalletItem) TableName() string {
	return "items"
}

// ItemContent is the caller-owned content row of an item. Exactly one row
// exists per item and is created together with it.
type ItemContent struct {
	ID     int64     `json:"-"`
	ItemID uuid.UUID `json:"-"`

	// Template is the name of the template directory under the kind's
	// templates root.
	Template string `json:"template"`

	// Properties is the caller JSON object the item document is built from.
	Properties json.RawMessage `json:"properties"`

	// Personalization is an optional personalization document shipped with
	// the bundle until the pass is personalized.
	Personalization json.RawMessage `json:"personalization,omitempty"`

	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table associated with
// the ItemContent model.
func (c ItemContent) TableName() string {
	return "item_contents"
}

// ChangedItems is the answer to a "changed since" query: the serials of
// items modified strictly after the cursor and the greatest modification
// time among them.
type ChangedItems struct {
	Serials     []string
	LastUpdated time.Time
}
