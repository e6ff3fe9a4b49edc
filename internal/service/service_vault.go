package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/sharing"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

type vaultService struct {
	*core
}

func NewVaultService(c *core) VaultService {
	return &vaultService{core: c}
}

// ContentHash is the integrity hash stored in a backup configuration.
func ContentHash(content []byte) string {
	return utils.SHA256Hex(content)
}

func (v *vaultService) CreateVault(ctx context.Context, name, content string, instructions *string) (models.Vault, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Vault{}, ErrEmptyVaultName
	}
	if err := v.checkContent(content); err != nil {
		return models.Vault{}, err
	}

	now := v.nowUTC()
	vault := models.Vault{
		ID:           v.ids.Generate(),
		Name:         name,
		OwnerPubkey:  v.self,
		Instructions: instructions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	sealed, err := v.seal(vault.ID, content)
	if err != nil {
		return models.Vault{}, err
	}
	vault.Content = sealed

	if err := v.vaults.CreateVault(ctx, vault); err != nil {
		return models.Vault{}, fmt.Errorf("save vault: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "vaultService.CreateVault").
		Str("vault_id", vault.ID).
		Msg("vault created")

	return vault, nil
}

// UpdateContent reseals the vault content. An existing backup configuration
// keeps the hash of the distributed content and is flagged as changed until
// the next distribution.
func (v *vaultService) UpdateContent(ctx context.Context, vaultID, content string) (models.Vault, error) {
	if err := v.checkContent(content); err != nil {
		return models.Vault{}, err
	}

	sealed, err := v.seal(vaultID, content)
	if err != nil {
		return models.Vault{}, err
	}

	vault, err := v.vaults.UpdateVault(ctx, vaultID, func(vault *models.Vault) error {
		if vault.OwnerPubkey != v.self {
			return ErrNotVaultOwner
		}
		vault.Content = sealed
		vault.UpdatedAt = v.nowUTC()
		if vault.BackupConfig != nil {
			vault.BackupConfig.ContentChanged = true
			vault.BackupConfig.LastUpdated = vault.UpdatedAt
		}
		return nil
	})
	if err != nil {
		return models.Vault{}, mapStoreError(err)
	}

	return vault, nil
}

func (v *vaultService) OpenContent(ctx context.Context, vaultID string) (string, error) {
	vault, err := v.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return "", mapStoreError(err)
	}

	plain, err := v.open(vault)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}

func (v *vaultService) GetVault(ctx context.Context, vaultID string) (models.Vault, error) {
	vault, err := v.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return models.Vault{}, mapStoreError(err)
	}
	return vault, nil
}

func (v *vaultService) ListVaults(ctx context.Context) ([]models.Vault, error) {
	vaults, err := v.vaults.ListVaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", err)
	}
	return vaults, nil
}

func (v *vaultService) DeleteVault(ctx context.Context, vaultID string) error {
	if err := v.vaults.DeleteVault(ctx, vaultID); err != nil {
		return mapStoreError(err)
	}
	if err := v.invitations.DeleteVaultInvitations(ctx, vaultID); err != nil {
		return fmt.Errorf("delete vault invitations: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "vaultService.DeleteVault").
		Str("vault_id", vaultID).
		Msg("vault deleted")

	return nil
}

func (v *vaultService) checkContent(content string) error {
	if utf8.RuneCountInString(content) > models.MaxVaultContentLength {
		return fmt.Errorf("%w: more than %d characters", ErrContentTooLong, models.MaxVaultContentLength)
	}
	if limit := sharing.MaxSecretBytes(v.modulus); len(content) > limit {
		return fmt.Errorf("%w: more than %d bytes", ErrContentTooLong, limit)
	}
	return nil
}

// seal encrypts content bound to the vault id.
func (c *core) seal(vaultID, content string) ([]byte, error) {
	sealed, err := c.sealer.Seal([]byte(content), []byte(vaultID))
	if err != nil {
		return nil, fmt.Errorf("seal vault content: %w", err)
	}
	return sealed, nil
}

// open decrypts the vault content.
func (c *core) open(vault models.Vault) ([]byte, error) {
	if len(vault.Content) == 0 {
		return nil, ErrNoVaultContent
	}
	plain, err := c.sealer.Open(vault.Content, []byte(vault.ID))
	if err != nil {
		return nil, fmt.Errorf("open vault content: %w", err)
	}
	return plain, nil
}

// mapStoreError translates storage sentinels into service errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrVaultNotFound):
		return fmt.Errorf("%w: %w", ErrVaultNotFound, err)
	case errors.Is(err, store.ErrInvitationNotFound):
		return fmt.Errorf("%w: %w", ErrInvitationNotFound, err)
	default:
		return err
	}
}
