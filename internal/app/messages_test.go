package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-steward-keeper/internal/crypto"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/internal/sharing"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "vault not found", err: service.ErrVaultNotFound, want: MsgVaultNotFound},
		{name: "wrapped config error", err: fmt.Errorf("%w: threshold 3", service.ErrInvalidConfiguration), want: MsgInvalidConfiguration},
		{name: "not ready", err: service.ErrNotReadyToDistribute, want: MsgNotReady},
		{name: "insufficient shares", err: fmt.Errorf("perform: %w", sharing.ErrInsufficientShares), want: MsgInsufficientShares},
		{name: "wrong passphrase", err: crypto.ErrOpenFailed, want: MsgWrongPassphrase},
		{name: "partial distribution", err: service.ErrPartialDistribution, want: MsgPartialDistribution},
		{name: "unknown", err: errors.New("boom"), want: MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
