package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/internal/validators"
	"github.com/MKhiriev/go-steward-keeper/models"
)

const (
	linkScheme = "stewardkeeper"
	linkHost   = "invite"

	codeBytes        = 32
	maxCodeAttempts  = 5
	reasonUnknown    = "unknown invitation code"
	reasonNotPending = "invitation already "
)

type invitationService struct {
	*core
	backup BackupService
}

// NewInvitationService returns the concrete service; its backup field is
// set by the caller once the backup service exists.
func NewInvitationService(c *core) *invitationService {
	return &invitationService{core: c}
}

// BuildInvitationLink renders the link handed to an invitee.
func BuildInvitationLink(code, ownerPubkey string, relays []string) string {
	q := url.Values{}
	q.Set("owner", ownerPubkey)
	for _, r := range relays {
		q.Add("relay", r)
	}

	u := url.URL{
		Scheme:   linkScheme,
		Host:     linkHost,
		Path:     "/" + code,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// ParseInvitationLink is the inverse of [BuildInvitationLink].
func ParseInvitationLink(link string) (InvitationLink, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return InvitationLink{}, fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}
	if u.Scheme != linkScheme || u.Host != linkHost {
		return InvitationLink{}, fmt.Errorf("%w: unexpected prefix %s://%s", ErrInvalidLink, u.Scheme, u.Host)
	}

	code := strings.TrimPrefix(u.Path, "/")
	if !validators.IsValidInvitationCode(code) {
		return InvitationLink{}, fmt.Errorf("%w: %w", ErrInvalidLink, validators.ErrInvalidInvitationCode)
	}

	q := u.Query()
	owner := q.Get("owner")
	if !validators.IsValidPubkey(owner) {
		return InvitationLink{}, fmt.Errorf("%w: owner: %w", ErrInvalidLink, validators.ErrInvalidPubkey)
	}

	return InvitationLink{
		Code:        code,
		OwnerPubkey: owner,
		Relays:      q["relay"],
	}, nil
}

func (s *invitationService) GenerateInvitation(ctx context.Context, vaultID, inviteeName, ownerPubkey string, relays []string) (models.Invitation, string, error) {
	log := logger.FromContext(ctx).WithVault(vaultID)

	inviteeName = strings.TrimSpace(inviteeName)
	if ownerPubkey == "" {
		ownerPubkey = s.self
	}

	vault, err := s.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return models.Invitation{}, "", mapStoreError(err)
	}
	if vault.OwnerPubkey != ownerPubkey {
		return models.Invitation{}, "", ErrNotVaultOwner
	}
	if vault.BackupConfig == nil {
		return models.Invitation{}, "", ErrNoBackupConfig
	}

	if len(relays) == 0 {
		relays = s.relaysOr(vault.BackupConfig.Relays)
	}

	inv, err := s.mintInvitation(ctx, models.Invitation{
		VaultID:       vaultID,
		InviterPubkey: ownerPubkey,
		InviteeName:   inviteeName,
		Relays:        relays,
		CreatedAt:     s.nowUTC(),
		Status:        models.InvitationPending,
	})
	if err != nil {
		return models.Invitation{}, "", err
	}

	if err = s.backup.AttachInvitation(ctx, vaultID, inv.Code, inviteeName); err != nil {
		// retire the code so it cannot be redeemed later
		if _, derr := s.invitations.UpdateInvitation(ctx, inv.Code, func(i *models.Invitation) error {
			return i.Deny(s.nowUTC())
		}); derr != nil {
			log.Error().Err(derr).
				Str("func", "invitationService.GenerateInvitation").
				Msg("failed to retire orphaned invitation")
		}
		return models.Invitation{}, "", fmt.Errorf("attach invitation to backup config: %w", err)
	}

	log.Info().
		Str("func", "invitationService.GenerateInvitation").
		Str("invitee", inviteeName).
		Msg("invitation created")

	return inv, BuildInvitationLink(inv.Code, ownerPubkey, relays), nil
}

// mintInvitation stores inv under a fresh random code, retrying on the
// unlikely event of a collision.
func (s *invitationService) mintInvitation(ctx context.Context, inv models.Invitation) (models.Invitation, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := utils.RandomToken(codeBytes)
		if err != nil {
			return models.Invitation{}, fmt.Errorf("%w: %w", ErrCodeGenerationFailed, err)
		}
		inv.Code = code

		if err = s.validator.Validate(ctx, inv); err != nil {
			return models.Invitation{}, fmt.Errorf("%w: %w", ErrInvalidInvitation, err)
		}

		err = s.invitations.CreateInvitation(ctx, inv)
		if errors.Is(err, store.ErrInvitationAlreadyExists) {
			continue
		}
		if err != nil {
			return models.Invitation{}, fmt.Errorf("save invitation: %w", err)
		}
		return inv, nil
	}

	return models.Invitation{}, ErrCodeGenerationFailed
}

func (s *invitationService) ListInvitations(ctx context.Context, vaultID string) ([]models.Invitation, error) {
	invitations, err := s.invitations.ListInvitations(ctx, vaultID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return invitations, nil
}

func (s *invitationService) HandleRsvp(ctx context.Context, code, responderPubkey string, responderName *string) (RsvpOutcome, error) {
	log := logger.FromContext(ctx).WithPeer(responderPubkey)

	if !validators.IsValidPubkey(responderPubkey) {
		return "", fmt.Errorf("%w: responder: %w", ErrInvalidPayload, validators.ErrInvalidPubkey)
	}

	inv, err := s.invitations.GetInvitation(ctx, code)
	if errors.Is(err, store.ErrInvitationNotFound) {
		return s.rejectRsvp(ctx, code, responderPubkey, nil, reasonUnknown)
	}
	if err != nil {
		return "", fmt.Errorf("get invitation: %w", err)
	}
	if inv.Status != models.InvitationPending {
		return s.rejectRsvp(ctx, code, responderPubkey, inv.Relays, reasonNotPending+string(inv.Status))
	}

	vault, err := s.vaults.GetVault(ctx, inv.VaultID)
	if err != nil {
		return "", mapStoreError(err)
	}
	if cfg := vault.BackupConfig; cfg != nil && cfg.StewardByPubkey(responderPubkey) >= 0 {
		log.Info().
			Str("func", "invitationService.HandleRsvp").
			Str("vault_id", inv.VaultID).
			Msg("rsvp from existing steward ignored")
		return RsvpAlreadyMember, nil
	}

	_, err = s.invitations.UpdateInvitation(ctx, code, func(i *models.Invitation) error {
		return i.Redeem(responderPubkey, s.nowUTC())
	})
	if errors.Is(err, models.ErrInvitationNotPending) {
		// a duplicate envelope got here first
		return s.rejectRsvp(ctx, code, responderPubkey, inv.Relays, reasonNotPending+string(models.InvitationRedeemed))
	}
	if err != nil {
		return "", mapStoreError(err)
	}

	if err = s.backup.ApplyRsvp(ctx, inv.VaultID, code, responderPubkey, responderName); err != nil {
		s.reopen(ctx, code)
		if errors.Is(err, ErrAlreadySteward) {
			return RsvpAlreadyMember, nil
		}
		return "", fmt.Errorf("apply rsvp: %w", err)
	}

	log.Info().
		Str("func", "invitationService.HandleRsvp").
		Str("vault_id", inv.VaultID).
		Msg("invitation redeemed")

	return RsvpRedeemed, nil
}

// reopen undoes a redemption whose steward update failed.
func (s *invitationService) reopen(ctx context.Context, code string) {
	_, err := s.invitations.UpdateInvitation(ctx, code, func(i *models.Invitation) error {
		i.Status = models.InvitationPending
		i.RedeemedBy = nil
		i.ResolvedAt = nil
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("func", "invitationService.reopen").
			Msg("failed to reopen invitation")
	}
}

func (s *invitationService) rejectRsvp(ctx context.Context, code, responderPubkey string, relays []string, reason string) (RsvpOutcome, error) {
	result := s.sender.send(ctx, models.Outbound{
		To:     responderPubkey,
		Relays: s.relaysOr(relays),
		Message: models.InvitationInvalid{
			Type:   models.MessageInvitationInvalid,
			Code:   code,
			Reason: reason,
		},
	})
	if result.Err != nil {
		return RsvpInvalid, fmt.Errorf("notify invalid invitation: %w", result.Err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "invitationService.rejectRsvp").
		Str("reason", reason).
		Msg("rsvp rejected")

	return RsvpInvalid, nil
}

func (s *invitationService) HandleDenial(ctx context.Context, code string) error {
	inv, err := s.invitations.UpdateInvitation(ctx, code, func(i *models.Invitation) error {
		return i.Deny(s.nowUTC())
	})
	if errors.Is(err, models.ErrInvitationNotPending) {
		return fmt.Errorf("%w: %w", ErrInvitationNotPending, err)
	}
	if err != nil {
		return mapStoreError(err)
	}

	if err = s.backup.ApplyDenial(ctx, inv.VaultID, code); err != nil {
		return fmt.Errorf("apply denial: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "invitationService.HandleDenial").
		Str("vault_id", inv.VaultID).
		Msg("invitation denied")

	return nil
}

func (s *invitationService) HandleConfigChangeRemoval(ctx context.Context, vaultID, removedPubkey string, relays []string) error {
	result := s.sender.send(ctx, models.Outbound{
		To:     removedPubkey,
		Relays: s.relaysOr(relays),
		Message: models.StewardRemovedMessage{
			Type:    models.MessageStewardRemoved,
			VaultID: vaultID,
		},
	})
	if result.Err != nil {
		return fmt.Errorf("notify removed steward: %w", result.Err)
	}
	return nil
}

func (s *invitationService) AcceptInvitation(ctx context.Context, link string) (InvitationLink, error) {
	parsed, err := ParseInvitationLink(link)
	if err != nil {
		return InvitationLink{}, err
	}

	rsvp := models.InvitationRSVP{
		Type:            models.MessageInvitationRSVP,
		Code:            parsed.Code,
		ResponderPubkey: s.self,
	}
	if s.displayName != "" {
		name := s.displayName
		rsvp.ResponderName = &name
	}

	result := s.sender.send(ctx, models.Outbound{
		To:      parsed.OwnerPubkey,
		Relays:  s.relaysOr(parsed.Relays),
		Message: rsvp,
	})
	if result.Err != nil {
		return parsed, fmt.Errorf("send rsvp: %w", result.Err)
	}

	return parsed, nil
}

func (s *invitationService) DeclineInvitation(ctx context.Context, link string) (InvitationLink, error) {
	parsed, err := ParseInvitationLink(link)
	if err != nil {
		return InvitationLink{}, err
	}

	result := s.sender.send(ctx, models.Outbound{
		To:     parsed.OwnerPubkey,
		Relays: s.relaysOr(parsed.Relays),
		Message: models.InvitationDenial{
			Type: models.MessageInvitationDenial,
			Code: parsed.Code,
		},
	})
	if result.Err != nil {
		return parsed, fmt.Errorf("send denial: %w", result.Err)
	}

	return parsed, nil
}
