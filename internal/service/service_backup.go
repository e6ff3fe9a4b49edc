package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/sharing"
	"github.com/MKhiriev/go-steward-keeper/models"
)

// errStaleAck aborts a confirmation update without writing.
var errStaleAck = errors.New("stale acknowledgment")

// removalNotifier tells a dropped steward it no longer holds a share.
type removalNotifier interface {
	HandleConfigChangeRemoval(ctx context.Context, vaultID, removedPubkey string, relays []string) error
}

type backupService struct {
	*core
	notifier removalNotifier
}

func NewBackupService(c *core, notifier removalNotifier) BackupService {
	return &backupService{core: c, notifier: notifier}
}

// withDefaultStatus fills in missing steward statuses: a known pubkey is
// awaiting its key, a bare placeholder is still invited.
func withDefaultStatus(stewards []models.Steward) []models.Steward {
	out := make([]models.Steward, len(stewards))
	for i, s := range stewards {
		if s.Status == "" {
			s.Status = models.StewardInvited
			if s.Pubkey != "" {
				s.Status = models.StewardAwaitingKey
			}
		}
		out[i] = s
	}
	return out
}

func (b *backupService) CreateConfig(ctx context.Context, vaultID string, threshold, totalShares int, stewards []models.Steward, relays []string, contentHash string) (models.BackupConfig, error) {
	log := logger.FromContext(ctx)

	if threshold < 1 || threshold > totalShares || totalShares != len(stewards) {
		return models.BackupConfig{}, fmt.Errorf("%w: threshold %d, total shares %d, stewards %d",
			ErrInvalidConfiguration, threshold, totalShares, len(stewards))
	}

	prepared := withDefaultStatus(stewards)
	for i := range prepared {
		if prepared[i].ID == "" {
			prepared[i].ID = b.ids.Generate()
		}
	}

	var (
		cfg     models.BackupConfig
		dropped []string
		retired []string
	)
	_, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		if v.OwnerPubkey != b.self {
			return ErrNotVaultOwner
		}

		hash := contentHash
		if hash == "" && len(v.Content) > 0 {
			plain, err := b.open(*v)
			if err != nil {
				return err
			}
			hash = ContentHash(plain)
		}

		now := b.nowUTC()
		next := models.BackupConfig{
			VaultID:     vaultID,
			Threshold:   threshold,
			TotalShards: totalShares,
			Stewards:    prepared,
			Relays:      b.relaysOr(relays),
			ContentHash: hash,
			LastUpdated: now,
		}
		if prev := v.BackupConfig; prev != nil {
			next.DistributionVersion = prev.DistributionVersion
			next.ContentChanged = prev.ContentChanged
			if contentHash == "" && prev.DistributionVersion > 0 {
				// the hash tracks the distributed plaintext, not later edits
				next.ContentHash = prev.ContentHash
			}
			carryInvitations(prev.Stewards, next.Stewards)
			dropped = droppedStewards(prev.Stewards, next.Stewards)
			retired = droppedInvitations(prev.Stewards, next.Stewards)
		}

		v.BackupConfig = &next
		v.UpdatedAt = now
		cfg = next
		return nil
	})
	if err != nil {
		return models.BackupConfig{}, mapStoreError(err)
	}

	log.Info().
		Str("func", "backupService.CreateConfig").
		Str("vault_id", vaultID).
		Int("threshold", threshold).
		Int("total_shards", totalShares).
		Msg("backup configuration saved")

	b.retireInvitations(ctx, retired)

	for _, pubkey := range dropped {
		if err := b.notifier.HandleConfigChangeRemoval(ctx, vaultID, pubkey, cfg.Relays); err != nil {
			log.Warn().Err(err).
				Str("func", "backupService.CreateConfig").
				Str("pubkey", pubkey).
				Msg("failed to notify dropped steward")
		}
	}

	return cfg, nil
}

// carryInvitations hands the pending invitation of a previous placeholder to
// the placeholder of the same name in next, so editing a config does not
// invalidate links already sent out.
func carryInvitations(prev, next []models.Steward) {
	claimed := make(map[string]struct{})
	for i := range next {
		if next[i].Pubkey != "" || next[i].InviteCode != nil || next[i].Name == nil {
			continue
		}
		for _, p := range prev {
			if p.Status != models.StewardInvited || p.InviteCode == nil || p.Name == nil || *p.Name != *next[i].Name {
				continue
			}
			if _, ok := claimed[*p.InviteCode]; ok {
				continue
			}
			claimed[*p.InviteCode] = struct{}{}
			code := *p.InviteCode
			next[i].InviteCode = &code
			next[i].ID = p.ID
			break
		}
	}
}

// droppedInvitations returns the codes of invited placeholders in prev that
// have no slot in next.
func droppedInvitations(prev, next []models.Steward) []string {
	var codes []string
	for _, p := range prev {
		if p.Status != models.StewardInvited || p.InviteCode == nil {
			continue
		}
		kept := slices.ContainsFunc(next, func(s models.Steward) bool {
			return s.InviteCode != nil && *s.InviteCode == *p.InviteCode
		})
		if !kept {
			codes = append(codes, *p.InviteCode)
		}
	}
	return codes
}

// retireInvitations denies pending invitations whose placeholder is gone, so
// a late RSVP is answered as invalid instead of re-adding the slot.
func (b *backupService) retireInvitations(ctx context.Context, codes []string) {
	for _, code := range codes {
		_, err := b.invitations.UpdateInvitation(ctx, code, func(i *models.Invitation) error {
			return i.Deny(b.nowUTC())
		})
		if err != nil && !errors.Is(err, models.ErrInvitationNotPending) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "backupService.retireInvitations").
				Msg("failed to retire invitation")
		}
	}
}

// droppedStewards returns the pubkeys of live stewards in prev missing from next.
func droppedStewards(prev, next []models.Steward) []string {
	kept := make(map[string]struct{}, len(next))
	for _, s := range next {
		if s.Pubkey != "" {
			kept[s.Pubkey] = struct{}{}
		}
	}

	var dropped []string
	for _, s := range prev {
		if s.Pubkey == "" || s.Status.IsTerminal() {
			continue
		}
		if _, ok := kept[s.Pubkey]; !ok {
			dropped = append(dropped, s.Pubkey)
		}
	}
	return dropped
}

func (b *backupService) GetConfig(ctx context.Context, vaultID string) (models.BackupConfig, error) {
	vault, err := b.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return models.BackupConfig{}, mapStoreError(err)
	}
	if vault.BackupConfig == nil {
		return models.BackupConfig{}, ErrNoBackupConfig
	}
	return *vault.BackupConfig, nil
}

func (b *backupService) IsReadyToDistribute(cfg models.BackupConfig) bool {
	return cfg.IsReadyToDistribute()
}

func (b *backupService) DistributeVaultContent(ctx context.Context, vaultID string) (models.BackupConfig, error) {
	vault, err := b.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return models.BackupConfig{}, mapStoreError(err)
	}
	plain, err := b.open(vault)
	if err != nil {
		return models.BackupConfig{}, err
	}

	return b.GenerateAndDistribute(ctx, vaultID, plain)
}

func (b *backupService) GenerateAndDistribute(ctx context.Context, vaultID string, secret []byte) (models.BackupConfig, error) {
	log := logger.FromContext(ctx).WithVault(vaultID)

	vault, err := b.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return models.BackupConfig{}, mapStoreError(err)
	}
	if vault.OwnerPubkey != b.self {
		return models.BackupConfig{}, ErrNotVaultOwner
	}
	cfg := vault.BackupConfig
	if cfg == nil {
		return models.BackupConfig{}, ErrNoBackupConfig
	}
	if !cfg.IsReadyToDistribute() {
		return *cfg, ErrNotReadyToDistribute
	}
	if cfg.Threshold < 1 || cfg.Threshold > len(cfg.Stewards) {
		return *cfg, fmt.Errorf("%w: threshold %d over %d stewards", ErrInvalidConfiguration, cfg.Threshold, len(cfg.Stewards))
	}

	shares, err := sharing.Split(secret, cfg.Threshold, len(cfg.Stewards), b.modulus)
	if err != nil {
		return *cfg, fmt.Errorf("split secret: %w", err)
	}

	version := cfg.DistributionVersion + 1
	now := b.nowUTC()
	outs := b.buildShardMessages(vault, shares, version, now.Unix())

	results := b.sender.fanOut(ctx, outs)
	failed := failedCount(results)
	if failed == len(results) {
		return *cfg, fmt.Errorf("%w: %w", ErrDistributionFailed, results[0].Err)
	}

	hash := ContentHash(secret)
	updated, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		c := v.BackupConfig
		if c == nil || c.DistributionVersion != version-1 {
			return ErrStaleDistribution
		}

		c.DistributionVersion = version
		c.ContentHash = hash
		c.ContentChanged = false
		c.LastUpdated = now
		for _, r := range results {
			idx := c.StewardByPubkey(r.To)
			if idx < 0 {
				continue
			}
			markDelivery(&c.Stewards[idx], r, version)
		}
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return *cfg, mapStoreError(err)
	}

	log.Info().
		Str("func", "backupService.GenerateAndDistribute").
		Int("distribution_version", version).
		Int("delivered", len(results)-failed).
		Int("failed", failed).
		Msg("shards distributed")

	if failed > 0 {
		return *updated.BackupConfig, fmt.Errorf("%w: %d of %d stewards", ErrPartialDistribution, failed, len(results))
	}

	return *updated.BackupConfig, nil
}

// markDelivery records the outcome of sending a shard to one steward. A
// confirmation that raced ahead of this write is applied right away.
func markDelivery(st *models.Steward, r models.DeliveryResult, version int) {
	if r.Err != nil {
		if st.Apply(models.EventDeliveryFailed) == nil {
			reason := r.Err.Error()
			st.ErrorReason = &reason
		}
		return
	}

	if st.Apply(models.EventShardDistributed) != nil {
		return
	}
	st.ErrorReason = nil
	id := r.EnvelopeID
	st.SourceEnvelopeID = &id

	if st.AckDistributionVersion != nil && *st.AckDistributionVersion == version {
		_ = st.Apply(models.EventConfirmReceived)
	}
}

func (b *backupService) buildShardMessages(vault models.Vault, shares []sharing.Share, version int, createdAt int64) []models.Outbound {
	cfg := vault.BackupConfig

	peers := make([]models.Peer, 0, len(cfg.Stewards))
	for _, s := range cfg.Stewards {
		p := models.Peer{Pubkey: s.Pubkey}
		if s.Name != nil {
			p.Name = *s.Name
		}
		peers = append(peers, p)
	}

	var ownerName *string
	if b.displayName != "" {
		name := b.displayName
		ownerName = &name
	}

	outs := make([]models.Outbound, len(cfg.Stewards))
	for i, s := range cfg.Stewards {
		shard := sharing.ToShard(shares[i], b.self, createdAt)
		vaultID, vaultName, recipient, v := vault.ID, vault.Name, s.Pubkey, version
		shard.VaultID = &vaultID
		shard.VaultName = &vaultName
		shard.Peers = peers
		shard.OwnerName = ownerName
		shard.Instructions = vault.Instructions
		shard.RecipientPubkey = &recipient
		shard.Relays = cfg.Relays
		shard.DistributionVersion = &v
		shard.Normalize()

		outs[i] = models.Outbound{
			To:      s.Pubkey,
			Relays:  cfg.Relays,
			Message: models.ShardMessage{Type: models.MessageShardData, Shard: shard},
		}
	}

	return outs
}

func (b *backupService) ApplyStewardConfirmation(ctx context.Context, vaultID, pubkey string, ackVersion int, envelopeID string) error {
	log := logger.FromContext(ctx).WithVault(vaultID).WithPeer(pubkey)

	var current int
	_, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		st, c, err := b.ownedSteward(v, pubkey)
		if err != nil {
			return err
		}
		current = c.DistributionVersion

		if ackVersion < c.DistributionVersion {
			return errStaleAck
		}

		now := b.nowUTC()
		st.LastSeen = &now
		st.AckAt = &now
		st.AckEnvelopeID = &envelopeID
		st.AckDistributionVersion = &ackVersion

		// acknowledged before the distribution itself was recorded
		if ackVersion > c.DistributionVersion {
			return nil
		}

		return st.Apply(models.EventConfirmReceived)
	})
	if errors.Is(err, errStaleAck) {
		log.Info().
			Str("func", "backupService.ApplyStewardConfirmation").
			Int("ack_version", ackVersion).
			Int("distribution_version", current).
			Msg("ignoring stale shard confirmation")
		return nil
	}
	if err != nil {
		return mapStoreError(err)
	}

	return nil
}

func (b *backupService) ApplyStewardError(ctx context.Context, vaultID, pubkey, reason string) error {
	_, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		st, _, err := b.ownedSteward(v, pubkey)
		if err != nil {
			return err
		}
		if err := st.Apply(models.EventDeliveryFailed); err != nil {
			return err
		}
		now := b.nowUTC()
		st.ErrorReason = &reason
		st.LastSeen = &now
		return nil
	})
	return mapStoreError(err)
}

func (b *backupService) ApplyRsvp(ctx context.Context, vaultID, code, pubkey string, name *string) error {
	_, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		c, err := b.ownedConfig(v)
		if err != nil {
			return err
		}
		if c.StewardByPubkey(pubkey) >= 0 {
			return ErrAlreadySteward
		}

		idx := c.StewardByInviteCode(code)
		if idx < 0 {
			inviteCode := code
			c.Stewards = append(c.Stewards, models.Steward{
				ID:         b.ids.Generate(),
				InviteCode: &inviteCode,
				Status:     models.StewardInvited,
			})
			idx = len(c.Stewards) - 1
		}

		st := &c.Stewards[idx]
		if err := st.Apply(models.EventRsvpReceived); err != nil {
			return err
		}
		now := b.nowUTC()
		st.Pubkey = pubkey
		if name != nil && *name != "" && st.Name == nil {
			st.Name = name
		}
		st.LastSeen = &now

		c.TotalShards = len(c.Stewards)
		c.LastUpdated = now
		v.UpdatedAt = now
		return nil
	})
	return mapStoreError(err)
}

func (b *backupService) ApplyDenial(ctx context.Context, vaultID, code string) error {
	_, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		c, err := b.ownedConfig(v)
		if err != nil {
			return err
		}

		idx := c.StewardByInviteCode(code)
		if idx < 0 {
			return nil
		}
		if err := c.Stewards[idx].Apply(models.EventDenyReceived); err != nil {
			return err
		}
		c.PruneTerminal()
		c.LastUpdated = b.nowUTC()
		return nil
	})
	return mapStoreError(err)
}

func (b *backupService) AttachInvitation(ctx context.Context, vaultID, code, inviteeName string) error {
	_, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		c, err := b.ownedConfig(v)
		if err != nil {
			return err
		}

		inviteCode := code
		for i := range c.Stewards {
			s := &c.Stewards[i]
			if s.Pubkey == "" && s.InviteCode == nil && s.Status == models.StewardInvited &&
				s.Name != nil && *s.Name == inviteeName {
				s.InviteCode = &inviteCode
				c.LastUpdated = b.nowUTC()
				return nil
			}
		}

		name := inviteeName
		c.Stewards = append(c.Stewards, models.Steward{
			ID:         b.ids.Generate(),
			Name:       &name,
			InviteCode: &inviteCode,
			Status:     models.StewardInvited,
		})
		c.TotalShards = len(c.Stewards)
		c.LastUpdated = b.nowUTC()
		return nil
	})
	return mapStoreError(err)
}

func (b *backupService) RemoveSteward(ctx context.Context, vaultID, pubkey string) error {
	var relays []string
	_, err := b.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		st, c, err := b.ownedSteward(v, pubkey)
		if err != nil {
			return err
		}
		if err := st.Apply(models.EventRemoved); err != nil {
			return err
		}
		c.PruneTerminal()
		c.LastUpdated = b.nowUTC()
		relays = c.Relays
		return nil
	})
	if err != nil {
		return mapStoreError(err)
	}

	return b.notifier.HandleConfigChangeRemoval(ctx, vaultID, pubkey, relays)
}

func (b *backupService) ownedConfig(v *models.Vault) (*models.BackupConfig, error) {
	if v.OwnerPubkey != b.self {
		return nil, ErrNotVaultOwner
	}
	if v.BackupConfig == nil {
		return nil, ErrNoBackupConfig
	}
	return v.BackupConfig, nil
}

func (b *backupService) ownedSteward(v *models.Vault, pubkey string) (*models.Steward, *models.BackupConfig, error) {
	c, err := b.ownedConfig(v)
	if err != nil {
		return nil, nil, err
	}
	idx := c.StewardByPubkey(pubkey)
	if idx < 0 {
		return nil, nil, ErrStewardNotFound
	}
	return &c.Stewards[idx], c, nil
}
