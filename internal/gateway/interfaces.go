// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway provides the messaging substrate the custody protocol
// talks through: send an envelope to a public key, and receive a stream of
// envelopes addressed to this device.
//
// Two implementations ship with the package. [MemoryHub] delivers between
// in-process [Endpoint] values and supports fault injection for tests.
// [RelayGateway] talks HTTP to the dev relay (cmd/relay), authenticates with
// an HS256 bearer token whose subject is the device public key, and polls
// the relay mailbox for inbound envelopes.
package gateway

import (
	"context"

	"github.com/MKhiriev/go-steward-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway sends and receives protocol envelopes for one device.
type Gateway interface {
	// SendEnvelope delivers payload to the device identified by to and
	// returns the envelope ID. Transport retries happen inside the
	// implementation; an error means delivery was given up.
	SendEnvelope(ctx context.Context, to string, payload []byte, relays []string) (string, error)

	// Inbound returns a channel of envelopes addressed to this device. The
	// channel is closed when ctx is done. Ordering is not guaranteed and an
	// envelope ID is never delivered twice on the same channel.
	Inbound(ctx context.Context) (<-chan models.Envelope, error)
}
