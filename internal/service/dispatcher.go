package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/models"
)

type dispatcher struct {
	self        string
	backup      BackupService
	invitations InvitationService
	recovery    RecoveryService
	custody     CustodyService
}

func NewDispatcher(self string, backup BackupService, invitations InvitationService, recovery RecoveryService, custody CustodyService) Dispatcher {
	return &dispatcher{
		self:        self,
		backup:      backup,
		invitations: invitations,
		recovery:    recovery,
		custody:     custody,
	}
}

// Dispatch routes env to the service owning its payload type. Envelopes of
// unknown type, or about entities this device does not know, are logged
// and dropped. Malformed payloads and storage failures are returned.
func (d *dispatcher) Dispatch(ctx context.Context, env models.Envelope) error {
	log := logger.FromContext(ctx).WithPeer(env.FromPubkey)
	ctx = log.WithContext(ctx)

	if env.ToPubkey != "" && env.ToPubkey != d.self {
		log.Warn().
			Str("func", "dispatcher.Dispatch").
			Str("envelope_id", env.ID).
			Msg("envelope addressed to another key, dropped")
		return nil
	}

	var header models.MessageHeader
	if err := json.Unmarshal(env.Payload, &header); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	err := d.route(ctx, header.Type, env)
	if isUnmatched(err) {
		log.Info().Err(err).
			Str("func", "dispatcher.Dispatch").
			Str("type", string(header.Type)).
			Str("envelope_id", env.ID).
			Msg("envelope does not match local state, dropped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", header.Type, err)
	}

	return nil
}

func (d *dispatcher) route(ctx context.Context, typ models.MessageType, env models.Envelope) error {
	log := logger.FromContext(ctx)

	switch typ {
	case models.MessageShardData:
		msg, err := decode[models.ShardMessage](env.Payload)
		if err != nil {
			return err
		}
		return d.custody.ReceiveShard(ctx, env, msg.Shard)

	case models.MessageShardConfirmation:
		msg, err := decode[models.ShardConfirmation](env.Payload)
		if err != nil {
			return err
		}
		return d.backup.ApplyStewardConfirmation(ctx, msg.VaultID, env.FromPubkey, msg.DistributionVersion, env.ID)

	case models.MessageShardError:
		msg, err := decode[models.ShardErrorMessage](env.Payload)
		if err != nil {
			return err
		}
		return d.backup.ApplyStewardError(ctx, msg.VaultID, env.FromPubkey, msg.Reason)

	case models.MessageInvitationRSVP:
		msg, err := decode[models.InvitationRSVP](env.Payload)
		if err != nil {
			return err
		}
		if msg.ResponderPubkey != env.FromPubkey {
			return ErrSenderMismatch
		}
		outcome, err := d.invitations.HandleRsvp(ctx, msg.Code, msg.ResponderPubkey, msg.ResponderName)
		if err != nil {
			return err
		}
		log.Debug().Str("func", "dispatcher.route").Str("outcome", string(outcome)).Msg("rsvp handled")
		return nil

	case models.MessageInvitationDenial:
		msg, err := decode[models.InvitationDenial](env.Payload)
		if err != nil {
			return err
		}
		return d.invitations.HandleDenial(ctx, msg.Code)

	case models.MessageInvitationInvalid:
		msg, err := decode[models.InvitationInvalid](env.Payload)
		if err != nil {
			return err
		}
		log.Warn().
			Str("func", "dispatcher.route").
			Str("reason", msg.Reason).
			Msg("owner rejected our invitation response")
		return nil

	case models.MessageStewardRemoved:
		msg, err := decode[models.StewardRemovedMessage](env.Payload)
		if err != nil {
			return err
		}
		return d.custody.HandleRemoval(ctx, env.FromPubkey, msg.VaultID)

	case models.MessageRecoveryRequest:
		msg, err := decode[models.RecoveryRequestMessage](env.Payload)
		if err != nil {
			return err
		}
		return d.recovery.HandleRecoveryRequest(ctx, env.FromPubkey, msg)

	case models.MessageRecoveryResponse:
		msg, err := decode[models.RecoveryResponseMessage](env.Payload)
		if err != nil {
			return err
		}
		if msg.ResponderPubkey != env.FromPubkey {
			return ErrSenderMismatch
		}
		_, err = d.recovery.RespondToRecoveryRequest(ctx, msg.RecoveryRequestID, msg.ResponderPubkey, msg.Approved, msg.ShardData)
		return err

	default:
		log.Warn().
			Str("func", "dispatcher.route").
			Str("type", string(typ)).
			Msg("unknown message type")
		return nil
	}
}

func decode[T any](payload json.RawMessage) (T, error) {
	var msg T
	if err := json.Unmarshal(payload, &msg); err != nil {
		return msg, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return msg, nil
}

// isUnmatched reports errors meaning the envelope refers to something this
// device has no record of.
func isUnmatched(err error) bool {
	return errors.Is(err, ErrVaultNotFound) ||
		errors.Is(err, ErrStewardNotFound) ||
		errors.Is(err, ErrRecoveryNotFound) ||
		errors.Is(err, ErrInvitationNotFound) ||
		errors.Is(err, ErrNoBackupConfig) ||
		errors.Is(err, ErrUnknownResponder)
}
