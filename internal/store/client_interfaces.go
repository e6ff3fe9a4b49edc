package store

import (
	"context"

	"github.com/MKhiriev/go-steward-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultMutator changes a vault inside [VaultStorage.UpdateVault]. Returning
// an error aborts the update and nothing is written.
type VaultMutator func(v *models.Vault) error

// VaultStorage persists vault aggregates: the vault itself with its backup
// configuration, held shards and recovery requests. Every read-modify-write
// goes through UpdateVault so writers of one vault are serialized.
type VaultStorage interface {
	CreateVault(ctx context.Context, vault models.Vault) error
	GetVault(ctx context.Context, id string) (models.Vault, error)
	ListVaults(ctx context.Context) ([]models.Vault, error)
	UpdateVault(ctx context.Context, id string, fn VaultMutator) (models.Vault, error)
	DeleteVault(ctx context.Context, id string) error
}

// InvitationMutator changes an invitation inside
// [InvitationStorage.UpdateInvitation].
type InvitationMutator func(inv *models.Invitation) error

// InvitationStorage persists the owner's invitation registry.
type InvitationStorage interface {
	// CreateInvitation stores inv. A code collision returns
	// [ErrInvitationAlreadyExists].
	CreateInvitation(ctx context.Context, inv models.Invitation) error
	GetInvitation(ctx context.Context, code string) (models.Invitation, error)
	ListInvitations(ctx context.Context, vaultID string) ([]models.Invitation, error)
	UpdateInvitation(ctx context.Context, code string, fn InvitationMutator) (models.Invitation, error)
	DeleteVaultInvitations(ctx context.Context, vaultID string) error
}
