// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-steward-keeper/internal/service"
)

// Client is the device runtime the commands operate on.
type Client interface {
	// Pubkey is the device public key.
	Pubkey() string

	// Services exposes the protocol services of the device.
	Services() *service.Services

	// Listen dispatches inbound envelopes until ctx is done.
	Listen(ctx context.Context) error

	// Close releases the local store.
	Close() error
}
