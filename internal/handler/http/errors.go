// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the relay middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader means the request carried no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header could not be split
	// into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme was present but the token was empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrMissingHash means a body-carrying request had no HashSHA256 header.
	ErrMissingHash = errors.New("missing `HashSHA256` header")

	// ErrHashMismatch means the body does not match its HashSHA256 header.
	ErrHashMismatch = errors.New("body integrity check failed")
)
