// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrString(s string) *string { return &s }

func ptrRaw(s string) *json.RawMessage {
	raw := json.RawMessage(s)
	return &raw
}

func validCreateItem() models.CreateItemRequest {
	return models.CreateItemRequest{
		TypeIdentifier: "pass.com.example.event",
		Template:       "event",
		Properties:     json.RawMessage(`{"description":"Concert"}`),
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewWalletValidator(t *testing.T) {
	require.NotNil(t, NewWalletValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewWalletValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerAndValueForms(t *testing.T) {
	v := NewWalletValidator()
	req := validCreateItem()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewWalletValidator().Validate(context.Background(), validCreateItem(), "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// CreateItemRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateItem(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateItemRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.CreateItemRequest) {}},
		{name: "generated token", mutate: func(r *models.CreateItemRequest) { r.AuthenticationToken = "" }},
		{name: "explicit token", mutate: func(r *models.CreateItemRequest) { r.AuthenticationToken = strings.Repeat("a", 16) }},
		{name: "short token", mutate: func(r *models.CreateItemRequest) { r.AuthenticationToken = "short" }, wantErr: ErrInvalidAuthToken},
		{name: "blank type identifier", mutate: func(r *models.CreateItemRequest) { r.TypeIdentifier = "  " }, wantErr: ErrInvalidTypeIdentifier},
		{name: "empty template", mutate: func(r *models.CreateItemRequest) { r.Template = "" }, wantErr: ErrInvalidTemplate},
		{name: "template traversal", mutate: func(r *models.CreateItemRequest) { r.Template = "../secrets" }, wantErr: ErrInvalidTemplate},
		{name: "nested template", mutate: func(r *models.CreateItemRequest) { r.Template = "a/b" }, wantErr: ErrInvalidTemplate},
		{name: "properties array", mutate: func(r *models.CreateItemRequest) { r.Properties = json.RawMessage(`[1]`) }, wantErr: ErrInvalidProperties},
		{name: "properties missing", mutate: func(r *models.CreateItemRequest) { r.Properties = nil }, wantErr: ErrInvalidProperties},
		{name: "properties broken", mutate: func(r *models.CreateItemRequest) { r.Properties = json.RawMessage(`{"a":`) }, wantErr: ErrInvalidProperties},
		{name: "personalization object", mutate: func(r *models.CreateItemRequest) { r.Personalization = json.RawMessage(`{"requiredPersonalizationFields":[]}`) }},
		{name: "personalization string", mutate: func(r *models.CreateItemRequest) { r.Personalization = json.RawMessage(`"x"`) }, wantErr: ErrInvalidPersonalization},
	}

	v := NewWalletValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateItem()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// UpdateItemRequest
// ---------------------------------------------------------------------------

func TestValidate_UpdateItem(t *testing.T) {
	v := NewWalletValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateItemRequest{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UpdateItemRequest{Template: ptrString("coupon")}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateItemRequest{Template: ptrString("..")}), ErrInvalidTemplate)
	assert.NoError(t, v.Validate(ctx, models.UpdateItemRequest{Properties: ptrRaw(`{}`)}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateItemRequest{Properties: ptrRaw(`null`)}), ErrInvalidProperties)
	assert.NoError(t, v.Validate(ctx, models.UpdateItemRequest{Personalization: ptrRaw(`null`)}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateItemRequest{Personalization: ptrRaw(`1`)}), ErrInvalidPersonalization)
}

// ---------------------------------------------------------------------------
// Device-facing requests
// ---------------------------------------------------------------------------

func TestValidate_Registration(t *testing.T) {
	v := NewWalletValidator()

	assert.NoError(t, v.Validate(context.Background(), models.RegistrationRequest{PushToken: "abc"}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.RegistrationRequest{PushToken: " "}), ErrEmptyPushToken)
}

func TestValidate_Logs(t *testing.T) {
	v := NewWalletValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LogsRequest{Logs: []string{"x"}}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LogsRequest{}), ErrEmptyLogs)
}

func TestValidate_Batch(t *testing.T) {
	v := NewWalletValidator()
	ctx := context.Background()

	ok := models.BatchBundleRequest{TypeIdentifier: "pass.com.example", SerialNumbers: []string{"a"}}
	assert.NoError(t, v.Validate(ctx, ok))

	assert.ErrorIs(t, v.Validate(ctx, models.BatchBundleRequest{SerialNumbers: []string{"a"}}), ErrInvalidTypeIdentifier)
	assert.ErrorIs(t, v.Validate(ctx, models.BatchBundleRequest{TypeIdentifier: "t"}), ErrEmptySerialNumbers)

	tooMany := models.BatchBundleRequest{TypeIdentifier: "t", SerialNumbers: make([]string, MaxBatchSize+1)}
	assert.ErrorIs(t, v.Validate(ctx, tooMany), ErrTooManySerialNumbers)

	id := uuid.New().String()
	dup := models.BatchBundleRequest{TypeIdentifier: "t", SerialNumbers: []string{id, "b", id}}
	assert.ErrorIs(t, v.Validate(ctx, dup), ErrDuplicateSerialNumber)

	caseDup := models.BatchBundleRequest{TypeIdentifier: "t", SerialNumbers: []string{id, strings.ToUpper(id)}}
	assert.ErrorIs(t, v.Validate(ctx, caseDup), ErrDuplicateSerialNumber)

	distinct := models.BatchBundleRequest{TypeIdentifier: "t", SerialNumbers: []string{uuid.New().String(), uuid.New().String()}}
	assert.NoError(t, v.Validate(ctx, distinct))
}

func TestValidate_Personalization(t *testing.T) {
	v := NewWalletValidator()
	ctx := context.Background()

	ok := models.PersonalizationRequest{
		PersonalizationToken:        "token",
		RequiredPersonalizationInfo: models.PersonalizationInfo{EmailAddress: "jane@example.com"},
	}
	assert.NoError(t, v.Validate(ctx, ok))

	noToken := ok
	noToken.PersonalizationToken = ""
	assert.ErrorIs(t, v.Validate(ctx, noToken), ErrEmptyPersonalizationTok)

	noInfo := ok
	noInfo.RequiredPersonalizationInfo = models.PersonalizationInfo{}
	assert.ErrorIs(t, v.Validate(ctx, noInfo), ErrEmptyPersonalInfo)
}

func TestIsTemplateName(t *testing.T) {
	for name, want := range map[string]bool{
		"event":     true,
		"store-card": true,
		"":          false,
		".":         false,
		"..":        false,
		"a/b":       false,
		`a\b`:       false,
	} {
		assert.Equal(t, want, IsTemplateName(name), name)
	}
}
