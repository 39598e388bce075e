// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha1" //nolint:gosec // pass manifests are SHA-1 by wallet contract
	"crypto/sha256"
	"hash"
)

// Kind identifies which wallet item family an item belongs to. Passes and
// orders share the whole issuing pipeline and differ only in the wire
// constants described by [KindSpec].
type Kind string

const (
	// KindPass is a boarding pass, ticket, coupon, store card, etc.
	KindPass Kind = "pass"
	// KindOrder is an order tracking item.
	KindOrder Kind = "order"
)

// Bundle entry names shared by every kind.
const (
	ManifestFileName        = "manifest.json"
	SignatureFileName       = "signature"
	PersonalizationFileName = "personalization.json"
)

// KindSpec holds the wire contract of a [Kind]: archive entry names, MIME
// types, authorization scheme and web-service vocabulary.
type KindSpec struct {
	Kind Kind

	// DocumentFileName is the name of the item JSON document inside the bundle.
	DocumentFileName string
	// Extension is the bundle file extension, including the leading dot.
	Extension string
	// MIMEType is the Content-Type of a single bundle.
	MIMEType string
	// BatchExtension and BatchMIMEType describe the outer archive of a batch.
	BatchExtension string
	BatchMIMEType  string

	// AuthScheme is the scheme of the Authorization header devices send.
	AuthScheme string
	// PathSegment is the URL segment under which bundles are served.
	PathSegment string
	// ChangedSinceParam is the query parameter carrying the update cursor.
	ChangedSinceParam string

	// SerialKey, TypeIdentifierKey are the document keys that identify the item.
	SerialKey         string
	TypeIdentifierKey string

	// SupportsPersonalization reports whether a personalization document
	// may be shipped with the bundle.
	SupportsPersonalization bool

	// NewDigest returns the hash used for manifest entries.
	NewDigest func() hash.Hash
}

var kindSpecs = map[Kind]KindSpec{
	KindPass: {
		Kind:                    KindPass,
		DocumentFileName:        "pass.json",
		Extension:               ".pkpass",
		MIMEType:                "application/vnd.apple.pkpass",
		BatchExtension:          ".pkpasses",
		BatchMIMEType:           "application/vnd.apple.pkpasses",
		AuthScheme:              "ApplePass",
		PathSegment:             "passes",
		ChangedSinceParam:       "passesUpdatedSince",
		SerialKey:               "serialNumber",
		TypeIdentifierKey:       "passTypeIdentifier",
		SupportsPersonalization: true,
		NewDigest:               sha1.New,
	},
	KindOrder: {
		Kind:              KindOrder,
		DocumentFileName:  "order.json",
		Extension:         ".order",
		MIMEType:          "application/vnd.apple.finance.order",
		BatchExtension:    ".orders",
		BatchMIMEType:     "application/zip",
		AuthScheme:        "AppleOrder",
		PathSegment:       "orders",
		ChangedSinceParam: "ordersModifiedSince",
		SerialKey:         "orderIdentifier",
		TypeIdentifierKey: "orderTypeIdentifier",
		NewDigest:         sha256.New,
	},
}

// Spec returns the wire contract for k. Unknown kinds return false.
func (k Kind) Spec() (KindSpec, bool) {
	spec, ok := kindSpecs[k]
	return spec, ok
}

// MustSpec is like [Kind.Spec] but panics on an unknown kind. It is meant
// for code paths where the kind has already been validated.
func (k Kind) MustSpec() KindSpec {
	spec, ok := kindSpecs[k]
	if !ok {
		panic("models: unknown kind " + string(k))
	}
	return spec
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPass, KindOrder}
}
