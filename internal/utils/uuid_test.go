package utils

import (
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GenerateV7(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if g.Generate() == id {
		t.Error("expected distinct identifiers")
	}
}

func TestRandomToken_LengthAndAlphabet(t *testing.T) {
	tok, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken: %v", err)
	}
	if len(tok) != 43 {
		t.Fatalf("token length = %d, want 43", len(tok))
	}

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil || len(raw) != 32 {
		t.Fatalf("token must decode to 32 bytes, got %d (%v)", len(raw), err)
	}

	other, _ := RandomToken(32)
	if other == tok {
		t.Error("expected tokens to differ")
	}
}
