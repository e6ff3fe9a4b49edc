package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-steward-keeper/internal/mock"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

func TestAuthService_ParseToken(t *testing.T) {
	const (
		signKey = "relay-secret"
		issuer  = "steward-relay"
	)
	auth := NewAuthService(signKey, issuer)

	valid, err := utils.GenerateJWTToken(issuer, aliceKey, time.Hour, signKey)
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", aliceKey, time.Hour, signKey)
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken(issuer, aliceKey, time.Hour, "not-the-secret")
	require.NoError(t, err)
	notPubkey, err := utils.GenerateJWTToken(issuer, "alice", time.Hour, signKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(issuer, aliceKey, -time.Minute, signKey)
	require.NoError(t, err)

	token, err := auth.ParseToken(testCtx(), valid.SignedString)
	require.NoError(t, err)
	assert.Equal(t, aliceKey, token.Pubkey)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not.a.jwt", wantErr: ErrTokenIsInvalid},
		{name: "wrong issuer", token: otherIssuer.SignedString, wantErr: ErrTokenIsInvalid},
		{name: "wrong key", token: otherKey.SignedString, wantErr: ErrTokenIsInvalid},
		{name: "subject is not a pubkey", token: notPubkey.SignedString, wantErr: ErrTokenIsInvalid},
		{name: "expired", token: expired.SignedString, wantErr: ErrTokenIsExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.ParseToken(testCtx(), tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMailboxService_PostFetchAck(t *testing.T) {
	svc := NewMailboxService(store.NewMemoryMailboxStorage())
	payload := json.RawMessage(`{"type":"steward_removed","vault_id":"v"}`)

	id, err := svc.PostEnvelope(testCtx(), ownerKey, models.SendEnvelopeRequest{ID: "env-1", To: aliceKey, Payload: payload})
	require.NoError(t, err)
	assert.Equal(t, "env-1", id)

	generated, err := svc.PostEnvelope(testCtx(), ownerKey, models.SendEnvelopeRequest{To: aliceKey, Payload: payload})
	require.NoError(t, err)
	assert.NotEmpty(t, generated)

	_, err = svc.PostEnvelope(testCtx(), ownerKey, models.SendEnvelopeRequest{ID: "env-1", To: aliceKey, Payload: payload})
	assert.ErrorIs(t, err, store.ErrEnvelopeAlreadyExists)

	envelopes, err := svc.FetchEnvelopes(testCtx(), aliceKey, 0)
	require.NoError(t, err)
	require.Len(t, envelopes, 2)
	assert.Equal(t, ownerKey, envelopes[0].FromPubkey)
	assert.JSONEq(t, string(payload), string(envelopes[0].Payload))

	empty, err := svc.FetchEnvelopes(testCtx(), bobKey, 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	// acknowledging someone else's mailbox removes nothing
	n, err := svc.AckEnvelopes(testCtx(), bobKey, []string{"env-1"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.AckEnvelopes(testCtx(), aliceKey, []string{"env-1", generated})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = svc.AckEnvelopes(testCtx(), aliceKey, nil)
	assert.ErrorIs(t, err, ErrEmptyAckList)
}

func TestMailboxService_PostEnvelope_Invalid(t *testing.T) {
	svc := NewMailboxService(store.NewMemoryMailboxStorage())

	tests := []struct {
		name string
		req  models.SendEnvelopeRequest
	}{
		{name: "bad recipient", req: models.SendEnvelopeRequest{To: "bob", Payload: json.RawMessage(`{}`)}},
		{name: "empty payload", req: models.SendEnvelopeRequest{To: aliceKey}},
		{name: "payload not json", req: models.SendEnvelopeRequest{To: aliceKey, Payload: json.RawMessage(`{nope`)}},
		{name: "payload too large", req: models.SendEnvelopeRequest{
			To:      aliceKey,
			Payload: json.RawMessage(`"` + strings.Repeat("x", MaxPayloadBytes) + `"`),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PostEnvelope(testCtx(), ownerKey, tt.req)
			assert.ErrorIs(t, err, ErrInvalidEnvelope)
		})
	}
}

func TestMailboxService_FetchLimits(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "default", requested: 0, want: DefaultFetchLimit},
		{name: "negative", requested: -3, want: DefaultFetchLimit},
		{name: "within range", requested: 7, want: 7},
		{name: "capped", requested: MaxFetchLimit * 2, want: MaxFetchLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockMailboxStorage(ctrl)
			storage.EXPECT().FetchEnvelopes(gomock.Any(), aliceKey, tt.want).Return(nil, nil)

			_, err := NewMailboxService(storage).FetchEnvelopes(testCtx(), aliceKey, tt.requested)
			assert.NoError(t, err)
		})
	}
}

func TestMailboxService_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockMailboxStorage(ctrl)
	boom := errors.New("connection reset")
	storage.EXPECT().PutEnvelope(gomock.Any(), gomock.Any()).Return(boom)

	_, err := NewMailboxService(storage).PostEnvelope(testCtx(), ownerKey, models.SendEnvelopeRequest{
		To: aliceKey, Payload: json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, boom)
}

func TestAppInfoService_GetAppVersion(t *testing.T) {
	assert.Equal(t, "1.2.0 (abc123, 2026-03-01)",
		NewAppInfoService(models.NewAppBuildInfo("1.2.0", "2026-03-01", "abc123")).GetAppVersion(testCtx()))
	assert.Equal(t, "N/A (N/A, N/A)",
		NewAppInfoService(models.AppBuildInfo{}).GetAppVersion(testCtx()))
}
