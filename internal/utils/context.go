// Package utils provides general-purpose helpers shared by the CLI and the
// relay: context keys, hashing, HTTP response writing, the HTTP client,
// JWT handling, identifier and invitation code generation.
package utils

import (
	"context"
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

// PubkeyCtxKey is the key under which the relay auth middleware stores the
// authenticated device public key.
//
//	ctx := context.WithValue(ctx, utils.PubkeyCtxKey, pubkey)
var PubkeyCtxKey = contextKey("pubkey")

// GetPubkeyFromContext retrieves the authenticated public key from ctx.
// ok is false when the value is missing, has an unexpected type or is empty.
func GetPubkeyFromContext(ctx context.Context) (string, bool) {
	pubkey, ok := ctx.Value(PubkeyCtxKey).(string)
	return pubkey, ok && pubkey != ""
}
