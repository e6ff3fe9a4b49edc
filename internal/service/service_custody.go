package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/validators"
	"github.com/MKhiriev/go-steward-keeper/models"
)

var errStaleShard = errors.New("stale shard")

type custodyService struct {
	*core
}

func NewCustodyService(c *core) CustodyService {
	return &custodyService{core: c}
}

// ReceiveShard stores a shard sent by a vault owner and confirms it. A shard
// older than the one already held is dropped without a reply.
func (s *custodyService) ReceiveShard(ctx context.Context, env models.Envelope, shard models.Shard) error {
	log := logger.FromContext(ctx).WithVault(shard.Vault()).WithPeer(env.FromPubkey)

	if err := s.checkShard(env, shard); err != nil {
		s.replyShardError(ctx, env.FromPubkey, shard, err)
		return err
	}

	now := s.nowUTC()
	received := true
	receivedAt := now.Unix()
	envelopeID := env.ID
	shard.IsReceived = &received
	shard.ReceivedAt = &receivedAt
	shard.SourceEnvelopeID = &envelopeID
	shard.Normalize()

	err := s.storeShard(ctx, shard)
	if errors.Is(err, errStaleShard) {
		log.Info().
			Str("func", "custodyService.ReceiveShard").
			Int("distribution_version", shard.Version()).
			Msg("ignoring shard older than the one held")
		return nil
	}
	if errors.Is(err, ErrShardMismatch) {
		s.replyShardError(ctx, env.FromPubkey, shard, err)
		return err
	}
	if err != nil {
		return err
	}

	result := s.sender.send(ctx, models.Outbound{
		To:     env.FromPubkey,
		Relays: s.relaysOr(shard.Relays),
		Message: models.ShardConfirmation{
			Type:                models.MessageShardConfirmation,
			VaultID:             shard.Vault(),
			DistributionVersion: shard.Version(),
			ShardIndex:          shard.ShardIndex,
		},
	})
	if result.Err != nil {
		return fmt.Errorf("send shard confirmation: %w", result.Err)
	}

	log.Info().
		Str("func", "custodyService.ReceiveShard").
		Int("distribution_version", shard.Version()).
		Int("shard_index", shard.ShardIndex).
		Msg("shard stored")

	return nil
}

func (s *custodyService) checkShard(env models.Envelope, shard models.Shard) error {
	if err := validators.ValidateShard(shard); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShard, err)
	}
	if shard.Vault() == "" {
		return fmt.Errorf("%w: %w", ErrInvalidShard, validators.ErrEmptyVaultID)
	}
	if env.FromPubkey != shard.CreatorPubkey {
		return ErrSenderMismatch
	}
	if shard.RecipientPubkey != nil && *shard.RecipientPubkey != s.self {
		return fmt.Errorf("%w: addressed to %s", ErrShardMismatch, *shard.RecipientPubkey)
	}
	return nil
}

// storeShard creates the local vault record on first contact and replaces
// the held shard afterwards.
func (s *custodyService) storeShard(ctx context.Context, shard models.Shard) error {
	vaultID := shard.Vault()
	now := s.nowUTC()

	_, err := s.vaults.GetVault(ctx, vaultID)
	if errors.Is(err, store.ErrVaultNotFound) {
		record := models.Vault{
			ID:           vaultID,
			OwnerPubkey:  shard.CreatorPubkey,
			Instructions: shard.Instructions,
			CreatedAt:    now,
			UpdatedAt:    now,
			Shards:       []models.Shard{shard},
		}
		if shard.VaultName != nil {
			record.Name = *shard.VaultName
		}

		err = s.vaults.CreateVault(ctx, record)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrVaultAlreadyExists) {
			return fmt.Errorf("save vault record: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("get vault: %w", err)
	}

	_, err = s.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		if v.OwnerPubkey != shard.CreatorPubkey {
			return ErrShardMismatch
		}
		if held, ok := v.HeldShard(); ok && shard.Version() < held.Version() {
			return errStaleShard
		}

		v.Shards = []models.Shard{shard}
		if shard.VaultName != nil && v.Name == "" {
			v.Name = *shard.VaultName
		}
		if shard.Instructions != nil {
			v.Instructions = shard.Instructions
		}
		v.UpdatedAt = now
		return nil
	})
	return err
}

func (s *custodyService) replyShardError(ctx context.Context, to string, shard models.Shard, cause error) {
	result := s.sender.send(ctx, models.Outbound{
		To:     to,
		Relays: s.relaysOr(shard.Relays),
		Message: models.ShardErrorMessage{
			Type:    models.MessageShardError,
			VaultID: shard.Vault(),
			Reason:  cause.Error(),
		},
	})
	if result.Err != nil {
		logger.FromContext(ctx).Warn().Err(result.Err).
			Str("func", "custodyService.replyShardError").
			Msg("failed to report rejected shard")
	}
}

// HandleRemoval forgets the shard of a vault whose owner dropped this device
// from the backup.
func (s *custodyService) HandleRemoval(ctx context.Context, from, vaultID string) error {
	_, err := s.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		if v.OwnerPubkey != from {
			return ErrSenderMismatch
		}
		v.Shards = nil
		v.UpdatedAt = s.nowUTC()
		return nil
	})
	if err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "custodyService.HandleRemoval").
		Str("vault_id", vaultID).
		Msg("removed from backup, shard discarded")

	return nil
}

func (s *custodyService) ListHeldShards(ctx context.Context) ([]models.Shard, error) {
	vaults, err := s.vaults.ListVaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", err)
	}

	var shards []models.Shard
	for i := range vaults {
		if held, ok := vaults[i].HeldShard(); ok {
			shards = append(shards, held)
		}
	}
	return shards, nil
}
