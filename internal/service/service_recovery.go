package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/sharing"
	"github.com/MKhiriev/go-steward-keeper/internal/validators"
	"github.com/MKhiriev/go-steward-keeper/models"
)

type recoveryService struct {
	*core
}

func NewRecoveryService(c *core) RecoveryService {
	return &recoveryService{core: c}
}

// InitiateRecovery opens a request on the local vault record and asks every
// steward for its shard. Without explicit stewards or threshold they are
// taken from the backup config on the owner's device, or from the roster
// of the held shard on a steward's device.
func (r *recoveryService) InitiateRecovery(ctx context.Context, vaultID string, stewardPubkeys []string, threshold int, expiration time.Duration) (models.RecoveryRequest, error) {
	log := logger.FromContext(ctx).WithVault(vaultID)

	if expiration <= 0 {
		expiration = r.recoveryTTL
	}

	vault, err := r.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return models.RecoveryRequest{}, mapStoreError(err)
	}

	defaults := recoveryDefaultsFor(vault)
	if len(stewardPubkeys) == 0 {
		stewardPubkeys = defaults.stewards
	}
	if threshold == 0 {
		threshold = defaults.threshold
	}
	stewards := uniquePubkeys(stewardPubkeys)
	if threshold < 1 || threshold > len(stewards) {
		return models.RecoveryRequest{}, fmt.Errorf("%w: threshold %d over %d stewards",
			ErrInvalidConfiguration, threshold, len(stewards))
	}
	for _, pk := range stewards {
		if !validators.IsValidPubkey(pk) {
			return models.RecoveryRequest{}, fmt.Errorf("%w: steward %q: %w", ErrInvalidConfiguration, pk, validators.ErrInvalidPubkey)
		}
	}

	req := models.NewRecoveryRequest(r.ids.Generate(), vaultID, r.self, stewards, threshold, r.nowUTC(), expiration)
	if _, err = r.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		v.RecoveryRequests = append(v.RecoveryRequests, req)
		return nil
	}); err != nil {
		return models.RecoveryRequest{}, mapStoreError(err)
	}

	msg := models.RecoveryRequestMessage{
		Type:              models.MessageRecoveryRequest,
		RecoveryRequestID: req.ID,
		VaultID:           vaultID,
		InitiatorPubkey:   r.self,
		RequestedAt:       req.RequestedAt.Unix(),
		ExpiresAt:         req.ExpiresAt.Unix(),
		Threshold:         threshold,
	}
	relays := r.relaysOr(defaults.relays)

	outs := make([]models.Outbound, 0, len(stewards))
	for _, pk := range stewards {
		if pk == r.self {
			continue
		}
		outs = append(outs, models.Outbound{To: pk, Relays: relays, Message: msg})
	}
	results := r.sender.fanOut(ctx, outs)

	log.Info().
		Str("func", "recoveryService.InitiateRecovery").
		Str("request_id", req.ID).
		Int("threshold", threshold).
		Int("stewards", len(stewards)).
		Int("undelivered", failedCount(results)).
		Msg("recovery requested")

	if held, ok := vault.HeldShard(); ok && slices.Contains(stewards, r.self) {
		updated, err := r.RespondToRecoveryRequest(ctx, req.ID, r.self, true, &held)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "recoveryService.InitiateRecovery").
				Msg("self approval failed")
		} else {
			req = updated
		}
	}

	return req, nil
}

type recoveryDefaults struct {
	stewards  []string
	threshold int
	relays    []string
}

func recoveryDefaultsFor(vault models.Vault) recoveryDefaults {
	var d recoveryDefaults

	if cfg := vault.BackupConfig; cfg != nil {
		for _, s := range cfg.Stewards {
			if s.Pubkey != "" && !s.Status.IsTerminal() {
				d.stewards = append(d.stewards, s.Pubkey)
			}
		}
		d.threshold = cfg.Threshold
		d.relays = cfg.Relays
		return d
	}

	if held, ok := vault.HeldShard(); ok {
		for _, p := range held.Peers {
			if p.Pubkey != "" {
				d.stewards = append(d.stewards, p.Pubkey)
			}
		}
		d.threshold = held.Threshold
		d.relays = held.Relays
	}

	return d
}

func (r *recoveryService) RespondToRecoveryRequest(ctx context.Context, requestID, responderPubkey string, approved bool, shard *models.Shard) (models.RecoveryRequest, error) {
	if !approved {
		shard = nil
	}
	if approved {
		if shard == nil {
			return models.RecoveryRequest{}, fmt.Errorf("%w: %w", ErrInvalidShard, models.ErrApprovalWithoutShard)
		}
		if err := validators.ValidateShard(*shard); err != nil {
			return models.RecoveryRequest{}, fmt.Errorf("%w: %w", ErrInvalidShard, err)
		}
	}

	vaultID, err := r.findRequestVault(ctx, requestID)
	if err != nil {
		return models.RecoveryRequest{}, err
	}

	var result models.RecoveryRequest
	_, err = r.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		req := v.FindRecoveryRequest(requestID)
		if req == nil {
			return ErrRecoveryNotFound
		}
		if req.Incoming {
			return ErrIncomingRecoveryReq
		}
		if _, ok := req.Responses[responderPubkey]; !ok {
			return ErrUnknownResponder
		}
		if shard != nil && shard.Vault() != "" && shard.Vault() != req.VaultID {
			return ErrShardMismatch
		}

		if err := req.Upsert(responderPubkey, approved, shard, r.nowUTC()); err != nil {
			if errors.Is(err, models.ErrRecoveryCancelled) {
				return fmt.Errorf("%w: %w", ErrRecoveryNotPending, err)
			}
			return err
		}
		result = *req
		return nil
	})
	if err != nil {
		return models.RecoveryRequest{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "recoveryService.RespondToRecoveryRequest").
		Str("request_id", requestID).
		Str("responder", responderPubkey).
		Bool("approved", approved).
		Int("approved_count", result.ApprovedCount()).
		Msg("recovery response recorded")

	return result, nil
}

func (r *recoveryService) CancelRecovery(ctx context.Context, requestID string) (models.RecoveryRequest, error) {
	vaultID, err := r.findRequestVault(ctx, requestID)
	if err != nil {
		return models.RecoveryRequest{}, err
	}

	var result models.RecoveryRequest
	_, err = r.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		req := v.FindRecoveryRequest(requestID)
		if req == nil {
			return ErrRecoveryNotFound
		}
		if req.Incoming {
			return ErrIncomingRecoveryReq
		}
		if status := req.StatusAt(r.nowUTC()); status != models.RecoveryPending {
			return fmt.Errorf("%w: %s", ErrRecoveryNotPending, status)
		}
		req.Status = models.RecoveryCancelled
		result = *req
		return nil
	})
	if err != nil {
		return models.RecoveryRequest{}, mapStoreError(err)
	}

	return result, nil
}

func (r *recoveryService) PerformRecovery(ctx context.Context, requestID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	vaultID, err := r.findRequestVault(ctx, requestID)
	if err != nil {
		return nil, err
	}
	vault, err := r.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	req := vault.FindRecoveryRequest(requestID)
	if req == nil {
		return nil, ErrRecoveryNotFound
	}
	if req.Incoming {
		return nil, ErrIncomingRecoveryReq
	}
	if req.Status == models.RecoveryCancelled {
		return nil, fmt.Errorf("%w: %s", ErrRecoveryNotPending, req.Status)
	}
	if n := req.ApprovedCount(); n < req.Threshold {
		return nil, fmt.Errorf("%w: %d of %d approvals", sharing.ErrInsufficientShares, n, req.Threshold)
	}

	secret, err := reconstructApproved(vault.BackupConfig, req)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "recoveryService.PerformRecovery").
			Str("request_id", requestID).
			Msg("reconstruction failed")
		return nil, err
	}

	sealed, err := r.seal(vaultID, string(secret))
	if err != nil {
		return nil, err
	}
	if _, err = r.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		req := v.FindRecoveryRequest(requestID)
		if req == nil {
			return ErrRecoveryNotFound
		}
		now := r.nowUTC()
		req.RecoveredAt = &now
		v.Content = sealed
		v.UpdatedAt = now
		return nil
	}); err != nil {
		return nil, mapStoreError(err)
	}

	log.Info().
		Str("func", "recoveryService.PerformRecovery").
		Str("vault_id", vaultID).
		Str("request_id", requestID).
		Msg("vault content recovered")

	return secret, nil
}

// reconstructApproved rebuilds the secret from the approved shards of one
// distribution version. A partial redistribution leaves some stewards with
// shards of an older version, which cannot be mixed with newer ones. The
// config's current version is tried first, then older ones newest first.
// Only the current version is checked against the content hash.
func reconstructApproved(cfg *models.BackupConfig, req *models.RecoveryRequest) ([]byte, error) {
	current, hash := -1, ""
	if cfg != nil {
		current, hash = cfg.DistributionVersion, cfg.ContentHash
	}

	var firstErr error
	for _, group := range shardsByVersion(req.ApprovedShards(), current) {
		threshold := group[0].Threshold
		if threshold < 1 {
			threshold = req.Threshold
		}
		if len(group) < threshold {
			continue
		}

		var opts []sharing.ReconstructOption
		if hash != "" && group[0].Version() == current {
			opts = append(opts, sharing.WithContentHash(hash))
		}

		secret, err := sharing.ReconstructShards(group, threshold, opts...)
		if err == nil {
			return secret, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return nil, fmt.Errorf("%w: no distribution version has enough approved shards", sharing.ErrInsufficientShares)
}

// shardsByVersion groups shards by distribution version, preferred first
// and the rest newest first.
func shardsByVersion(shards []models.Shard, preferred int) [][]models.Shard {
	byVersion := make(map[int][]models.Shard)
	for _, sh := range shards {
		byVersion[sh.Version()] = append(byVersion[sh.Version()], sh)
	}

	versions := slices.SortedFunc(maps.Keys(byVersion), func(a, b int) int {
		switch {
		case a == preferred:
			return -1
		case b == preferred:
			return 1
		default:
			return cmp.Compare(b, a)
		}
	})

	groups := make([][]models.Shard, 0, len(versions))
	for _, v := range versions {
		groups = append(groups, byVersion[v])
	}
	return groups
}

func (r *recoveryService) HandleRecoveryRequest(ctx context.Context, from string, msg models.RecoveryRequestMessage) error {
	if msg.InitiatorPubkey != from {
		return ErrSenderMismatch
	}
	if msg.RecoveryRequestID == "" || msg.VaultID == "" || msg.Threshold < 1 {
		return fmt.Errorf("%w: incomplete recovery request", ErrInvalidPayload)
	}

	_, err := r.vaults.UpdateVault(ctx, msg.VaultID, func(v *models.Vault) error {
		if _, ok := v.HeldShard(); !ok {
			return ErrNoShardHeld
		}
		// redelivered envelope
		if v.FindRecoveryRequest(msg.RecoveryRequestID) != nil {
			return nil
		}

		v.RecoveryRequests = append(v.RecoveryRequests, models.RecoveryRequest{
			ID:              msg.RecoveryRequestID,
			VaultID:         msg.VaultID,
			InitiatorPubkey: msg.InitiatorPubkey,
			RequestedAt:     time.Unix(msg.RequestedAt, 0).UTC(),
			ExpiresAt:       time.Unix(msg.ExpiresAt, 0).UTC(),
			Threshold:       msg.Threshold,
			Responses: map[string]models.RecoveryResponse{
				r.self: {Status: models.ResponsePending},
			},
			Status:   models.RecoveryPending,
			Incoming: true,
		})
		return nil
	})
	if err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "recoveryService.HandleRecoveryRequest").
		Str("vault_id", msg.VaultID).
		Str("request_id", msg.RecoveryRequestID).
		Msg("recovery request received")

	return nil
}

func (r *recoveryService) SubmitResponse(ctx context.Context, requestID string, approved bool) (models.RecoveryRequest, error) {
	vaultID, err := r.findRequestVault(ctx, requestID)
	if err != nil {
		return models.RecoveryRequest{}, err
	}

	var (
		result models.RecoveryRequest
		out    models.Outbound
	)
	_, err = r.vaults.UpdateVault(ctx, vaultID, func(v *models.Vault) error {
		req := v.FindRecoveryRequest(requestID)
		if req == nil {
			return ErrRecoveryNotFound
		}
		if !req.Incoming {
			return ErrOwnRecoveryRequest
		}
		now := r.nowUTC()
		switch req.StatusAt(now) {
		case models.RecoveryCancelled:
			return fmt.Errorf("%w: %s", ErrRecoveryNotPending, models.RecoveryCancelled)
		case models.RecoveryExpired:
			// expiry is advisory; the initiator may still complete the request
			logger.FromContext(ctx).Info().
				Str("func", "recoveryService.SubmitResponse").
				Str("request_id", requestID).
				Time("expired_at", req.ExpiresAt).
				Msg("answering an expired recovery request")
		}

		held, ok := v.HeldShard()
		if approved && !ok {
			return ErrNoShardHeld
		}
		var shard *models.Shard
		if approved {
			shard = &held
		}
		if err := req.Upsert(r.self, approved, shard, now); err != nil {
			return err
		}

		out = models.Outbound{
			To:     req.InitiatorPubkey,
			Relays: r.relaysOr(held.Relays),
			Message: models.RecoveryResponseMessage{
				Type:              models.MessageRecoveryResponse,
				RecoveryRequestID: req.ID,
				VaultID:           req.VaultID,
				ResponderPubkey:   r.self,
				Approved:          approved,
				RespondedAt:       now.Unix(),
				ShardData:         shard,
			},
		}
		result = *req
		return nil
	})
	if err != nil {
		return models.RecoveryRequest{}, mapStoreError(err)
	}

	if res := r.sender.send(ctx, out); res.Err != nil {
		return result, fmt.Errorf("send recovery response: %w", res.Err)
	}

	return result, nil
}

func (r *recoveryService) GetRecoveryRequest(ctx context.Context, requestID string) (models.RecoveryRequest, error) {
	vaults, err := r.vaults.ListVaults(ctx)
	if err != nil {
		return models.RecoveryRequest{}, fmt.Errorf("list vaults: %w", err)
	}
	for i := range vaults {
		if req := vaults[i].FindRecoveryRequest(requestID); req != nil {
			return *req, nil
		}
	}
	return models.RecoveryRequest{}, ErrRecoveryNotFound
}

// ListRecoveryRequests returns the requests of one vault, or of every vault
// when vaultID is empty.
func (r *recoveryService) ListRecoveryRequests(ctx context.Context, vaultID string) ([]models.RecoveryRequest, error) {
	if vaultID != "" {
		vault, err := r.vaults.GetVault(ctx, vaultID)
		if err != nil {
			return nil, mapStoreError(err)
		}
		return vault.RecoveryRequests, nil
	}

	vaults, err := r.vaults.ListVaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", err)
	}
	var requests []models.RecoveryRequest
	for _, v := range vaults {
		requests = append(requests, v.RecoveryRequests...)
	}
	return requests, nil
}

func (r *recoveryService) findRequestVault(ctx context.Context, requestID string) (string, error) {
	req, err := r.GetRecoveryRequest(ctx, requestID)
	if err != nil {
		return "", err
	}
	return req.VaultID, nil
}

func uniquePubkeys(pubkeys []string) []string {
	seen := make(map[string]struct{}, len(pubkeys))
	out := make([]string, 0, len(pubkeys))
	for _, pk := range pubkeys {
		if _, ok := seen[pk]; ok || pk == "" {
			continue
		}
		seen[pk] = struct{}{}
		out = append(out, pk)
	}
	return out
}
