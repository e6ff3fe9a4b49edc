// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the pure validation layer for protocol entities.
//
// Shards arriving from the network are checked with [ValidateShard], which
// reports the first violated field as a [*FieldError]. Services receive a
// [Validator] for the remaining entities (backup configs, invitations,
// recovery responses) so checks can be scoped to named fields.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
