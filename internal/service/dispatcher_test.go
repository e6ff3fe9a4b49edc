package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/models"
)

var (
	selfKey = strings.Repeat("e5", 32)
	peerKey = strings.Repeat("f6", 32)
)

type dispatcherMocks struct {
	backup      *servicemock.MockBackupService
	invitations *servicemock.MockInvitationService
	recovery    *servicemock.MockRecoveryService
	custody     *servicemock.MockCustodyService
}

func newTestDispatcher(t *testing.T) (service.Dispatcher, dispatcherMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := dispatcherMocks{
		backup:      servicemock.NewMockBackupService(ctrl),
		invitations: servicemock.NewMockInvitationService(ctrl),
		recovery:    servicemock.NewMockRecoveryService(ctrl),
		custody:     servicemock.NewMockCustodyService(ctrl),
	}
	return service.NewDispatcher(selfKey, m.backup, m.invitations, m.recovery, m.custody), m
}

func envelope(t *testing.T, from string, msg any) models.Envelope {
	t.Helper()
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	return models.Envelope{ID: "env-1", FromPubkey: from, ToPubkey: selfKey, Payload: payload}
}

func ctx() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func TestDispatcher_Routes(t *testing.T) {
	vaultID := "vault-1"
	name := "alice"
	shard := models.Shard{Share: "AQ==", Threshold: 1, TotalShards: 1, PrimeMod: "Bw==", CreatorPubkey: peerKey, VaultID: &vaultID}

	tests := []struct {
		name  string
		msg   any
		setup func(m dispatcherMocks)
	}{
		{
			name: "shard data",
			msg:  models.ShardMessage{Type: models.MessageShardData, Shard: shard},
			setup: func(m dispatcherMocks) {
				m.custody.EXPECT().
					ReceiveShard(gomock.Any(), gomock.Any(), shard).
					DoAndReturn(func(_ context.Context, env models.Envelope, _ models.Shard) error {
						assert.Equal(t, "env-1", env.ID)
						return nil
					})
			},
		},
		{
			name: "shard confirmation",
			msg:  models.ShardConfirmation{Type: models.MessageShardConfirmation, VaultID: vaultID, DistributionVersion: 3},
			setup: func(m dispatcherMocks) {
				m.backup.EXPECT().ApplyStewardConfirmation(gomock.Any(), vaultID, peerKey, 3, "env-1").Return(nil)
			},
		},
		{
			name: "shard error",
			msg:  models.ShardErrorMessage{Type: models.MessageShardError, VaultID: vaultID, Reason: "bad shard"},
			setup: func(m dispatcherMocks) {
				m.backup.EXPECT().ApplyStewardError(gomock.Any(), vaultID, peerKey, "bad shard").Return(nil)
			},
		},
		{
			name: "rsvp",
			msg:  models.InvitationRSVP{Type: models.MessageInvitationRSVP, Code: "code", ResponderPubkey: peerKey, ResponderName: &name},
			setup: func(m dispatcherMocks) {
				m.invitations.EXPECT().HandleRsvp(gomock.Any(), "code", peerKey, &name).Return(service.RsvpRedeemed, nil)
			},
		},
		{
			name: "denial",
			msg:  models.InvitationDenial{Type: models.MessageInvitationDenial, Code: "code"},
			setup: func(m dispatcherMocks) {
				m.invitations.EXPECT().HandleDenial(gomock.Any(), "code").Return(nil)
			},
		},
		{
			name:  "invitation invalid is only logged",
			msg:   models.InvitationInvalid{Type: models.MessageInvitationInvalid, Code: "code", Reason: "used"},
			setup: func(dispatcherMocks) {},
		},
		{
			name: "steward removed",
			msg:  models.StewardRemovedMessage{Type: models.MessageStewardRemoved, VaultID: vaultID},
			setup: func(m dispatcherMocks) {
				m.custody.EXPECT().HandleRemoval(gomock.Any(), peerKey, vaultID).Return(nil)
			},
		},
		{
			name: "recovery request",
			msg: models.RecoveryRequestMessage{
				Type: models.MessageRecoveryRequest, RecoveryRequestID: "req", VaultID: vaultID,
				InitiatorPubkey: peerKey, Threshold: 1,
			},
			setup: func(m dispatcherMocks) {
				m.recovery.EXPECT().
					HandleRecoveryRequest(gomock.Any(), peerKey, gomock.AssignableToTypeOf(models.RecoveryRequestMessage{})).
					Return(nil)
			},
		},
		{
			name: "recovery response",
			msg: models.RecoveryResponseMessage{
				Type: models.MessageRecoveryResponse, RecoveryRequestID: "req", VaultID: vaultID,
				ResponderPubkey: peerKey, Approved: true, ShardData: &shard,
			},
			setup: func(m dispatcherMocks) {
				m.recovery.EXPECT().
					RespondToRecoveryRequest(gomock.Any(), "req", peerKey, true, &shard).
					Return(models.RecoveryRequest{}, nil)
			},
		},
		{
			name:  "unknown type",
			msg:   map[string]string{"type": "holiday_greeting"},
			setup: func(dispatcherMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m := newTestDispatcher(t)
			tt.setup(m)
			assert.NoError(t, d.Dispatch(ctx(), envelope(t, peerKey, tt.msg)))
		})
	}
}

func TestDispatcher_SenderMismatch(t *testing.T) {
	d, _ := newTestDispatcher(t)

	rsvp := models.InvitationRSVP{Type: models.MessageInvitationRSVP, Code: "code", ResponderPubkey: selfKey}
	assert.ErrorIs(t, d.Dispatch(ctx(), envelope(t, peerKey, rsvp)), service.ErrSenderMismatch)

	resp := models.RecoveryResponseMessage{Type: models.MessageRecoveryResponse, RecoveryRequestID: "req", ResponderPubkey: selfKey}
	assert.ErrorIs(t, d.Dispatch(ctx(), envelope(t, peerKey, resp)), service.ErrSenderMismatch)
}

func TestDispatcher_MalformedPayload(t *testing.T) {
	d, _ := newTestDispatcher(t)

	env := models.Envelope{ID: "env-1", FromPubkey: peerKey, ToPubkey: selfKey, Payload: json.RawMessage(`{"type":`)}
	assert.ErrorIs(t, d.Dispatch(ctx(), env), service.ErrInvalidPayload)

	env.Payload = json.RawMessage(`{"type":"shard_confirmation","distribution_version":"three"}`)
	assert.ErrorIs(t, d.Dispatch(ctx(), env), service.ErrInvalidPayload)
}

func TestDispatcher_UnmatchedStateIsDropped(t *testing.T) {
	for _, unmatched := range []error{
		service.ErrVaultNotFound,
		service.ErrStewardNotFound,
		service.ErrNoBackupConfig,
	} {
		d, m := newTestDispatcher(t)
		m.backup.EXPECT().ApplyStewardConfirmation(gomock.Any(), "v", peerKey, 1, "env-1").Return(unmatched)

		msg := models.ShardConfirmation{Type: models.MessageShardConfirmation, VaultID: "v", DistributionVersion: 1}
		assert.NoError(t, d.Dispatch(ctx(), envelope(t, peerKey, msg)), unmatched.Error())
	}
}

func TestDispatcher_ServiceErrorIsReturned(t *testing.T) {
	d, m := newTestDispatcher(t)
	boom := errors.New("disk full")
	m.invitations.EXPECT().HandleDenial(gomock.Any(), "code").Return(boom)

	err := d.Dispatch(ctx(), envelope(t, peerKey, models.InvitationDenial{Type: models.MessageInvitationDenial, Code: "code"}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), string(models.MessageInvitationDenial))
}

func TestDispatcher_WrongRecipientDropped(t *testing.T) {
	d, _ := newTestDispatcher(t)

	env := envelope(t, peerKey, models.InvitationDenial{Type: models.MessageInvitationDenial, Code: "code"})
	env.ToPubkey = peerKey
	assert.NoError(t, d.Dispatch(ctx(), env))
}
