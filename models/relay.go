package models

import (
	"encoding/json"
	"time"
)

// SendEnvelopeRequest is the body of POST /api/envelopes on the relay.
// The sender is taken from the bearer token, never from the body.
type SendEnvelopeRequest struct {
	ID      string          `json:"id"`
	To      string          `json:"to"`
	Payload json.RawMessage `json:"payload"`
}

// SendEnvelopeResponse is returned once the relay stored an envelope.
type SendEnvelopeResponse struct {
	ID string `json:"id"`
}

// AckRequest removes delivered envelopes from the caller's mailbox.
type AckRequest struct {
	IDs []string `json:"ids"`
}

// MailboxEnvelope is an envelope as stored by the relay.
type MailboxEnvelope struct {
	ID         string          `json:"id"`
	FromPubkey string          `json:"from_pubkey"`
	ToPubkey   string          `json:"to_pubkey"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Envelope converts a stored mailbox entry into an inbound envelope.
func (m MailboxEnvelope) Envelope() Envelope {
	return Envelope{
		ID:         m.ID,
		FromPubkey: m.FromPubkey,
		ToPubkey:   m.ToPubkey,
		Payload:    m.Payload,
		CreatedAt:  m.CreatedAt,
	}
}
