// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, constant-time
// token comparison, HTTP response writing, HTTP client initialization,
// Authorization header parsing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-wallet-issuer/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ItemCtxKey is the key used to store the item a device request is about,
// once it has been resolved and authorized.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ItemCtxKey, item)
var ItemCtxKey = contextKey("item")

// GetItemFromContext retrieves the resolved item from the context.
//
// Returns the item and an ok flag:
//   - ok == true : value is found and implements models.Item
//   - ok == false: value is missing or has an unexpected type
func GetItemFromContext(ctx context.Context) (models.Item, bool) {
	item, ok := ctx.Value(ItemCtxKey).(models.Item)
	return item, ok
}

// WithItem returns a copy of ctx carrying item.
func WithItem(ctx context.Context, item models.Item) context.Context {
	return context.WithValue(ctx, ItemCtxKey, item)
}
