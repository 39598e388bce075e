// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-wallet-issuer/models"
)

const (
	authenticationTokenKey = "authenticationToken"
	webServiceURLKey       = "webServiceURL"
)

// BuildDocument produces the item JSON document from caller properties.
// Keys owned by the issuing service (serial, type identifier,
// authentication token and web-service URL) always overwrite caller values.
func BuildDocument(spec models.KindSpec, properties []byte, item models.Item, webServiceURL string) ([]byte, error) {
	doc := make(map[string]any)

	if len(bytes.TrimSpace(properties)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(properties))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidProperties, err)
		}
		if doc == nil {
			doc = make(map[string]any)
		}
	}

	doc[spec.SerialKey] = item.ItemID().String()
	doc[spec.TypeIdentifierKey] = item.ItemTypeIdentifier()
	doc[authenticationTokenKey] = item.ItemAuthToken()
	if webServiceURL != "" {
		doc[webServiceURLKey] = webServiceURL
	}

	return json.Marshal(doc)
}
