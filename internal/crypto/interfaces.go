package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/content_sealer_mock.go -package=mock

// ContentSealer protects vault content at rest on the device.
// It knows nothing about vaults, stewards or the network.
//
// Sealed layout:
//
//	salt (16) ‖ nonce (24) ‖ XChaCha20-Poly1305 ciphertext
//
// The key is derived per seal from the device passphrase and the salt with
// Argon2id. aad binds the blob to its owner (the vault ID) so a sealed blob
// moved to another vault fails to open.
type ContentSealer interface {
	// Seal encrypts plaintext and returns the sealed blob.
	Seal(plaintext, aad []byte) ([]byte, error)

	// Open reverses Seal. It returns ErrOpenFailed when the passphrase, the
	// aad or the blob itself does not match.
	Open(sealed, aad []byte) ([]byte, error)
}
