package gateway

import "errors"

var (
	ErrUnknownRecipient = errors.New("unknown recipient")
	ErrEmptyRecipient   = errors.New("empty recipient pubkey")
	ErrDeliveryFailed   = errors.New("delivery failed")
	ErrInboundActive    = errors.New("inbound stream already active")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
