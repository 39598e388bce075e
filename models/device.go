// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is the capability set of a push-notification recipient.
type Subscriber interface {
	// DevicePushToken is the APNs token of the installation.
	DevicePushToken() string
	// DeviceLibraryIdentifier is the client-supplied installation id.
	DeviceLibraryIdentifier() string
}

// Device represents one wallet client installation. The pair
// (LibraryIdentifier, PushToken) is unique.
type Device struct {
	ID int64 `json:"-"`

	LibraryIdentifier string `json:"device_library_identifier"`
	PushToken         string `json:"push_token"`
}

func (d Device) DevicePushToken() string         { return d.PushToken }
func (d Device) DeviceLibraryIdentifier() string { return d.LibraryIdentifier }

// TableName returns the name of the database table associated with
// the Device model.
func (d Device) TableName() string {
	return "devices"
}

// Registration links one device to one item.
type Registration struct {
	ID       int64
	DeviceID int64
	ItemID   uuid.UUID
}

// TableName returns the name of the database table associated with
// the Registration model.
func (r Registration) TableName() string {
	return "registrations"
}

// RegistrationStatus is the outcome of an idempotent registration.
type RegistrationStatus int

const (
	// RegistrationCreated means a new registration row was inserted.
	RegistrationCreated RegistrationStatus = iota + 1
	// RegistrationAlreadyExists means the device was already registered.
	RegistrationAlreadyExists
)

func (s RegistrationStatus) String() string {
	switch s {
	case RegistrationCreated:
		return "created"
	case RegistrationAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// ErrorLog is one log line submitted by a wallet client.
type ErrorLog struct {
	ID        int64
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

// TableName returns the name of the database table associated with
// the ErrorLog model.
func (e ErrorLog) TableName() string {
	return "error_logs"
}
