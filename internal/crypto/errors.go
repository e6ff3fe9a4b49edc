package crypto

import "errors"

var (
	// ErrSealedTooShort is returned when a blob cannot hold salt and nonce.
	ErrSealedTooShort = errors.New("sealed content too short")
	// ErrOpenFailed is returned when authentication of a sealed blob fails.
	ErrOpenFailed = errors.New("failed to open sealed content")
	// ErrEmptyPassphrase is returned when a sealer is built without a passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")
)
