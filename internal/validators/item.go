// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTypeIdentifier  = "type_identifier"
	FieldAuthToken       = "authentication_token"
	FieldTemplate        = "template"
	FieldProperties      = "properties"
	FieldPersonalization = "personalization"
	FieldUpdate          = "update"
	FieldPushToken       = "push_token"
	FieldLogs            = "logs"
	FieldSerialNumbers   = "serial_numbers"
	FieldPersonalizeTok  = "personalization_token"
	FieldPersonalInfo    = "personalization_info"
)

// MinAuthTokenLength is the shortest authentication token wallet clients
// accept.
const MinAuthTokenLength = 16

// MaxBatchSize bounds the number of items in one batch bundle.
const MaxBatchSize = 100

// WalletValidator implements [Validator] for the request models of the
// issuing service: CreateItemRequest, UpdateItemRequest,
// RegistrationRequest, LogsRequest, BatchBundleRequest and
// PersonalizationRequest.
type WalletValidator struct{}

// NewWalletValidator constructs a [WalletValidator] and returns it as the
// Validator interface.
func NewWalletValidator() Validator {
	return &WalletValidator{}
}

// Validate dispatches validation by the dynamic type of obj. Both value and
// pointer forms of every supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *WalletValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateItemRequest:
		return v.validateCreateItem(value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreateItem(*value, fields...)

	case models.UpdateItemRequest:
		return v.validateUpdateItem(value, fields...)
	case *models.UpdateItemRequest:
		return v.validateUpdateItem(*value, fields...)

	case models.RegistrationRequest:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(*value, fields...)

	case models.LogsRequest:
		return v.validateLogs(value, fields...)
	case *models.LogsRequest:
		return v.validateLogs(*value, fields...)

	case models.BatchBundleRequest:
		return v.validateBatch(value, fields...)
	case *models.BatchBundleRequest:
		return v.validateBatch(*value, fields...)

	case models.PersonalizationRequest:
		return v.validatePersonalization(value, fields...)
	case *models.PersonalizationRequest:
		return v.validatePersonalization(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateItem checks a new item. An empty authentication token is
// accepted: the service generates one.
//
// Default fields: type identifier, auth token, template, properties,
// personalization.
func (v *WalletValidator) validateCreateItem(req models.CreateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTypeIdentifier, FieldAuthToken, FieldTemplate, FieldProperties, FieldPersonalization}
	}

	for _, f := range fields {
		switch f {
		case FieldTypeIdentifier:
			if strings.TrimSpace(req.TypeIdentifier) == "" {
				return ErrInvalidTypeIdentifier
			}
		case FieldAuthToken:
			if req.AuthenticationToken != "" && len(req.AuthenticationToken) < MinAuthTokenLength {
				return ErrInvalidAuthToken
			}
		case FieldTemplate:
			if !IsTemplateName(req.Template) {
				return ErrInvalidTemplate
			}
		case FieldProperties:
			if !isJSONObject(req.Properties) {
				return ErrInvalidProperties
			}
		case FieldPersonalization:
			if len(req.Personalization) > 0 && string(req.Personalization) != "null" && !isJSONObject(req.Personalization) {
				return ErrInvalidPersonalization
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletValidator) validateUpdateItem(req models.UpdateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldTemplate, FieldProperties, FieldPersonalization}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if req.Template == nil && req.Properties == nil && req.Personalization == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTemplate:
			if req.Template != nil && !IsTemplateName(*req.Template) {
				return ErrInvalidTemplate
			}
		case FieldProperties:
			if req.Properties != nil && !isJSONObject(*req.Properties) {
				return ErrInvalidProperties
			}
		case FieldPersonalization:
			// null clears the document
			if req.Personalization != nil && string(*req.Personalization) != "null" && !isJSONObject(*req.Personalization) {
				return ErrInvalidPersonalization
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletValidator) validateRegistration(req models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPushToken}
	}

	for _, f := range fields {
		switch f {
		case FieldPushToken:
			if strings.TrimSpace(req.PushToken) == "" {
				return ErrEmptyPushToken
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *WalletValidator) validateLogs(req models.LogsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogs}
	}

	for _, f := range fields {
		switch f {
		case FieldLogs:
			if len(req.Logs) == 0 {
				return ErrEmptyLogs
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *WalletValidator) validateBatch(req models.BatchBundleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTypeIdentifier, FieldSerialNumbers}
	}

	for _, f := range fields {
		switch f {
		case FieldTypeIdentifier:
			if strings.TrimSpace(req.TypeIdentifier) == "" {
				return ErrInvalidTypeIdentifier
			}
		case FieldSerialNumbers:
			if len(req.SerialNumbers) == 0 {
				return ErrEmptySerialNumbers
			}
			if len(req.SerialNumbers) > MaxBatchSize {
				return ErrTooManySerialNumbers
			}
			if hasDuplicateSerial(req.SerialNumbers) {
				return ErrDuplicateSerialNumber
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *WalletValidator) validatePersonalization(req models.PersonalizationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPersonalizeTok, FieldPersonalInfo}
	}

	for _, f := range fields {
		switch f {
		case FieldPersonalizeTok:
			if req.PersonalizationToken == "" {
				return ErrEmptyPersonalizationTok
			}
		case FieldPersonalInfo:
			info := req.RequiredPersonalizationInfo
			if info.FullName == "" && info.GivenName == "" && info.FamilyName == "" &&
				info.EmailAddress == "" && info.PhoneNumber == "" &&
				info.ISOCountryCode == "" && info.PostalCode == "" {
				return ErrEmptyPersonalInfo
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// hasDuplicateSerial compares serials the way they name archive entries:
// UUIDs in canonical form, anything else as given.
func hasDuplicateSerial(serials []string) bool {
	seen := make(map[string]struct{}, len(serials))
	for _, s := range serials {
		key := s
		if id, err := uuid.Parse(s); err == nil {
			key = id.String()
		}
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// IsTemplateName reports whether name selects a direct sub-directory of a
// templates root, i.e. it is a single non-special path element.
func IsTemplateName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

func isJSONObject(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return false
	}
	return json.Valid(raw)
}
