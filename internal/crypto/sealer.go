// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

// Argon2Params holds the Argon2id tuning parameters used to turn the
// device passphrase into a content key.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultArgon2Params are the OWASP (2024) recommended parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// SealerOption customizes a sealer built by [NewContentSealer].
type SealerOption func(*passphraseSealer)

// WithArgon2Params overrides [DefaultArgon2Params].
func WithArgon2Params(p Argon2Params) SealerOption {
	return func(s *passphraseSealer) {
		s.params = p
	}
}

// passphraseSealer is the private implementation of [ContentSealer].
type passphraseSealer struct {
	passphrase []byte
	params     Argon2Params
	rand       io.Reader
}

// NewContentSealer constructs a [ContentSealer] keyed by passphrase.
func NewContentSealer(passphrase string, opts ...SealerOption) (ContentSealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	s := &passphraseSealer{
		passphrase: []byte(passphrase),
		params:     DefaultArgon2Params,
		rand:       rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// deriveKey derives the 256-bit XChaCha20 key for salt.
func (s *passphraseSealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(
		s.passphrase,
		salt,
		s.params.Time,
		s.params.Memory,
		s.params.Threads,
		chacha20poly1305.KeySize,
	)
}

// Seal implements [ContentSealer].
func (s *passphraseSealer) Seal(plaintext, aad []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(s.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(s.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)

	return aead.Seal(out, nonce, plaintext, aad), nil
}

// Open implements [ContentSealer].
func (s *passphraseSealer) Open(sealed, aad []byte) ([]byte, error) {
	if len(sealed) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, ErrSealedTooShort
	}

	salt := sealed[:saltSize]
	nonce := sealed[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := sealed[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return plaintext, nil
}
