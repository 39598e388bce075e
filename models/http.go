// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RegistrationRequest is the body of the device registration endpoint.
type RegistrationRequest struct {
	PushToken string `json:"pushToken"`
}

// SerialNumbersResponse answers the pass "changed since" query.
type SerialNumbersResponse struct {
	SerialNumbers []string `json:"serialNumbers"`
	LastUpdated   string   `json:"lastUpdated"`
}

// OrderIdentifiersResponse answers the order "changed since" query.
type OrderIdentifiersResponse struct {
	OrderIdentifiers []string `json:"orderIdentifiers"`
	LastModified     string   `json:"lastModified"`
}

// LogsRequest is the body of the client log endpoint.
type LogsRequest struct {
	Logs []string `json:"logs"`
}

// CreateItemRequest creates an item together with its content row.
type CreateItemRequest struct {
	// TypeIdentifier is required.
	TypeIdentifier string `json:"type_identifier"`
	// AuthenticationToken is generated when empty.
	AuthenticationToken string `json:"authentication_token,omitempty"`

	Template        string          `json:"template"`
	Properties      json.RawMessage `json:"properties"`
	Personalization json.RawMessage `json:"personalization,omitempty"`
}

// UpdateItemRequest replaces the content row of an item. Nil fields are
// left untouched.
type UpdateItemRequest struct {
	Template        *string          `json:"template,omitempty"`
	Properties      *json.RawMessage `json:"properties,omitempty"`
	Personalization *json.RawMessage `json:"personalization,omitempty"`
}

// BatchBundleRequest lists the items of a batch bundle by serial number.
type BatchBundleRequest struct {
	TypeIdentifier string   `json:"type_identifier"`
	SerialNumbers  []string `json:"serial_numbers"`
}

// OrphanSweepResponse reports how many devices without registrations
// were removed.
type OrphanSweepResponse struct {
	Deleted int64 `json:"deleted"`
}

// PushTokensResponse lists the push tokens registered for an item.
type PushTokensResponse struct {
	PushTokens []string `json:"pushTokens"`
}
