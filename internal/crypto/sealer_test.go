package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// fastParams keeps Argon2id cheap in tests.
var fastParams = WithArgon2Params(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1})

func newTestSealer(t *testing.T, passphrase string) ContentSealer {
	t.Helper()
	s, err := NewContentSealer(passphrase, fastParams)
	if err != nil {
		t.Fatalf("NewContentSealer error: %v", err)
	}
	return s
}

func TestNewContentSealer_EmptyPassphrase(t *testing.T) {
	if _, err := NewContentSealer(""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("expected ErrEmptyPassphrase, got %v", err)
	}
}

func TestSeal_OpenRoundTrip(t *testing.T) {
	s := newTestSealer(t, "correct horse battery staple")
	plaintext := []byte("seed phrase: abandon abandon ability")
	aad := []byte("vault-1")

	sealed, err := s.Seal(plaintext, aad)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Fatal("sealed blob must not contain the plaintext")
	}

	got, err := s.Open(sealed, aad)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestSeal_FreshSaltAndNonce(t *testing.T) {
	s := newTestSealer(t, "pw")

	a, err := s.Seal([]byte("same"), nil)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b, err := s.Seal([]byte("same"), nil)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("expected two seals of the same plaintext to differ")
	}
}

func TestOpen_WrongPassphrase(t *testing.T) {
	sealed, err := newTestSealer(t, "right").Seal([]byte("secret"), nil)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = newTestSealer(t, "wrong").Open(sealed, nil)
	if !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("expected ErrOpenFailed, got %v", err)
	}
}

func TestOpen_WrongAAD(t *testing.T) {
	s := newTestSealer(t, "pw")
	sealed, err := s.Seal([]byte("secret"), []byte("vault-1"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := s.Open(sealed, []byte("vault-2")); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("expected ErrOpenFailed, got %v", err)
	}
}

func TestOpen_Tampered(t *testing.T) {
	s := newTestSealer(t, "pw")
	sealed, err := s.Seal([]byte("secret"), nil)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	sealed[len(sealed)-1] ^= 0xFF

	if _, err := s.Open(sealed, nil); !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("expected ErrOpenFailed, got %v", err)
	}
}

func TestOpen_TooShort(t *testing.T) {
	s := newTestSealer(t, "pw")

	if _, err := s.Open(make([]byte, 10), nil); !errors.Is(err, ErrSealedTooShort) {
		t.Fatalf("expected ErrSealedTooShort, got %v", err)
	}
}

func TestSeal_EmptyPlaintext(t *testing.T) {
	s := newTestSealer(t, "pw")

	sealed, err := s.Seal(nil, nil)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	got, err := s.Open(sealed, nil)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %q", got)
	}
}
