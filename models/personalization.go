// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonalizationInfo is the user data a wallet client submits when the
// holder personalizes a pass.
type PersonalizationInfo struct {
	ID     int64     `json:"-"`
	ItemID uuid.UUID `json:"-"`

	FullName       string `json:"fullName,omitempty"`
	GivenName      string `json:"givenName,omitempty"`
	FamilyName     string `json:"familyName,omitempty"`
	EmailAddress   string `json:"emailAddress,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	ISOCountryCode string `json:"ISOCountryCode,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table associated with
// the PersonalizationInfo model.
func (p PersonalizationInfo) TableName() string {
	return "personalization_infos"
}

// PersonalizationRequest is the body of the personalize endpoint.
type PersonalizationRequest struct {
	PersonalizationToken        string              `json:"personalizationToken"`
	RequiredPersonalizationInfo PersonalizationInfo `json:"requiredPersonalizationInfo"`
}
