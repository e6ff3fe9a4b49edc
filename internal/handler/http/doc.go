// Package http implements the relay's REST API: a store-and-forward
// mailbox devices post envelopes to and poll their own envelopes from.
// Authentication, body integrity, tracing, logging and compression are
// handled by middleware before requests reach the mailbox service.
package http
