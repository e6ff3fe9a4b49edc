package models

// Outbound is a side effect produced by a protocol transition: one payload to
// send to one recipient over the given relays. Services collect outbound
// messages while mutating state and hand them to the gateway afterwards.
type Outbound struct {
	To      string
	Relays  []string
	Message any
}

// DeliveryResult reports the outcome of sending one [Outbound].
type DeliveryResult struct {
	To         string
	EnvelopeID string
	Err        error
}
