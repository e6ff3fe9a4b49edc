// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/internal/validators"
	"github.com/MKhiriev/go-steward-keeper/models"
)

const (
	// DefaultFetchLimit is used when a mailbox poll asks for no limit.
	DefaultFetchLimit = 50
	// MaxFetchLimit caps one mailbox poll.
	MaxFetchLimit = 500
	// MaxPayloadBytes caps a single envelope payload.
	MaxPayloadBytes = 256 << 10
)

// RelayServices groups the services behind the relay's HTTP API.
type RelayServices struct {
	AuthService    AuthService
	MailboxService MailboxService
	AppInfoService AppInfoService
}

// NewRelayServices wires the relay services on top of storages.
func NewRelayServices(storages *store.RelayStorages, cfg config.Server, info models.AppBuildInfo) *RelayServices {
	return &RelayServices{
		AuthService:    NewAuthService(cfg.TokenSignKey, cfg.TokenIssuer),
		MailboxService: NewMailboxService(storages.Mailbox),
		AppInfoService: NewAppInfoService(info),
	}
}

type authService struct {
	signKey string
	issuer  string
}

func NewAuthService(signKey, issuer string) AuthService {
	return &authService{signKey: signKey, issuer: issuer}
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.signKey, a.issuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	if !validators.IsValidPubkey(token.Pubkey) {
		return models.Token{}, fmt.Errorf("%w: subject is not a public key", ErrTokenIsInvalid)
	}

	return token, nil
}

type mailboxService struct {
	mailbox store.MailboxStorage
	ids     IDGenerator
	now     func() time.Time
}

func NewMailboxService(mailbox store.MailboxStorage) MailboxService {
	return &mailboxService{mailbox: mailbox, ids: utils.NewUUIDGenerator(), now: time.Now}
}

// PostEnvelope validates and stores an envelope. A repeated ID returns
// [store.ErrEnvelopeAlreadyExists] so senders retrying after a lost
// response can tell the envelope already landed.
func (m *mailboxService) PostEnvelope(ctx context.Context, from string, req models.SendEnvelopeRequest) (string, error) {
	if !validators.IsValidPubkey(req.To) {
		return "", fmt.Errorf("%w: recipient: %w", ErrInvalidEnvelope, validators.ErrInvalidPubkey)
	}
	if len(req.Payload) == 0 || !json.Valid(req.Payload) {
		return "", fmt.Errorf("%w: payload is not JSON", ErrInvalidEnvelope)
	}
	if len(req.Payload) > MaxPayloadBytes {
		return "", fmt.Errorf("%w: payload exceeds %d bytes", ErrInvalidEnvelope, MaxPayloadBytes)
	}

	id := req.ID
	if id == "" {
		id = m.ids.Generate()
	}

	err := m.mailbox.PutEnvelope(ctx, models.MailboxEnvelope{
		ID:         id,
		FromPubkey: from,
		ToPubkey:   req.To,
		Payload:    req.Payload,
		CreatedAt:  m.now().UTC(),
	})
	if err != nil {
		return id, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "mailboxService.PostEnvelope").
		Str("envelope_id", id).
		Str("from", from).
		Str("to", req.To).
		Msg("envelope queued")

	return id, nil
}

func (m *mailboxService) FetchEnvelopes(ctx context.Context, pubkey string, limit int) ([]models.MailboxEnvelope, error) {
	switch {
	case limit <= 0:
		limit = DefaultFetchLimit
	case limit > MaxFetchLimit:
		limit = MaxFetchLimit
	}

	envelopes, err := m.mailbox.FetchEnvelopes(ctx, pubkey, limit)
	if err != nil {
		return nil, err
	}
	if envelopes == nil {
		envelopes = []models.MailboxEnvelope{}
	}
	return envelopes, nil
}

func (m *mailboxService) AckEnvelopes(ctx context.Context, pubkey string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyAckList
	}
	return m.mailbox.AckEnvelopes(ctx, pubkey, ids)
}

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

// GetAppVersion returns "version (commit, date)" with "N/A" for unknown parts.
func (a *appInfoService) GetAppVersion(_ context.Context) string {
	return a.info.String()
}
