package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-steward-keeper/internal/utils"
	"github.com/MKhiriev/go-steward-keeper/models"
)

func TestVaultService_CreateAndOpen(t *testing.T) {
	n := newNetwork(t)
	owner := n.join(ownerKey, "owner")

	instructions := "call my sister first"
	v, err := owner.VaultService.CreateVault(testCtx(), "  Seed phrase ", "correct horse battery staple", &instructions)
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "Seed phrase", v.Name)
	assert.Equal(t, ownerKey, v.OwnerPubkey)
	assert.NotContains(t, string(v.Content), "correct horse")
	assert.Equal(t, n.clock.Now(), v.CreatedAt)

	plain, err := owner.VaultService.OpenContent(testCtx(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "correct horse battery staple", plain)
}

func TestVaultService_CreateVault_Rejects(t *testing.T) {
	n := newNetwork(t)
	owner := n.join(ownerKey, "owner")

	tests := []struct {
		name    string
		vault   string
		content string
		wantErr error
	}{
		{name: "blank name", vault: "   ", content: "x", wantErr: ErrEmptyVaultName},
		{name: "too many characters", vault: "v", content: strings.Repeat("é", models.MaxVaultContentLength+1), wantErr: ErrContentTooLong},
		// the test modulus holds far fewer bytes than the character limit
		{name: "too many bytes", vault: "v", content: strings.Repeat("x", 1000), wantErr: ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := owner.VaultService.CreateVault(testCtx(), tt.vault, tt.content, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVaultService_UpdateContent_FlagsConfig(t *testing.T) {
	n := newNetwork(t)
	owner := n.join(ownerKey, "owner")
	n.join(aliceKey, "alice")
	v := owner.createVault(t, "first")
	owner.configure(t, v.ID, 1, aliceKey)
	_, err := owner.BackupService.DistributeVaultContent(testCtx(), v.ID)
	require.NoError(t, err)
	require.Empty(t, n.settle())

	_, err = owner.VaultService.UpdateContent(testCtx(), v.ID, "second")
	require.NoError(t, err)

	plain, err := owner.VaultService.OpenContent(testCtx(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", plain)

	// the hash still describes what stewards hold
	cfg := owner.config(t, v.ID)
	assert.Equal(t, utils.SHA256Hex([]byte("first")), cfg.ContentHash)
	assert.True(t, cfg.ContentChanged)

	// reconfiguring keeps the distributed hash
	cfg = owner.configure(t, v.ID, 1, aliceKey)
	assert.Equal(t, utils.SHA256Hex([]byte("first")), cfg.ContentHash)
	assert.True(t, cfg.ContentChanged)

	_, err = owner.BackupService.DistributeVaultContent(testCtx(), v.ID)
	require.NoError(t, err)
	cfg = owner.config(t, v.ID)
	assert.Equal(t, utils.SHA256Hex([]byte("second")), cfg.ContentHash)
	assert.False(t, cfg.ContentChanged)
}

func TestVaultService_UpdateContent_NotOwner(t *testing.T) {
	n := newNetwork(t)
	steward := n.join(aliceKey, "alice")

	require.NoError(t, steward.storages.Vaults.CreateVault(testCtx(), models.Vault{ID: "foreign", OwnerPubkey: ownerKey}))

	_, err := steward.VaultService.UpdateContent(testCtx(), "foreign", "mine now")
	assert.ErrorIs(t, err, ErrNotVaultOwner)
}

func TestVaultService_OpenContent_Errors(t *testing.T) {
	n := newNetwork(t)
	owner := n.join(ownerKey, "owner")

	_, err := owner.VaultService.OpenContent(testCtx(), "missing")
	assert.ErrorIs(t, err, ErrVaultNotFound)

	require.NoError(t, owner.storages.Vaults.CreateVault(testCtx(), models.Vault{ID: "empty", OwnerPubkey: aliceKey}))
	_, err = owner.VaultService.OpenContent(testCtx(), "empty")
	assert.ErrorIs(t, err, ErrNoVaultContent)
}

func TestVaultService_DeleteVault_RemovesInvitations(t *testing.T) {
	n := newNetwork(t)
	owner := n.join(ownerKey, "owner")
	v := owner.createVault(t, "secret")
	owner.configure(t, v.ID, 1, aliceKey)

	_, _, err := owner.InvitationService.GenerateInvitation(testCtx(), v.ID, "bob", "", nil)
	require.NoError(t, err)

	require.NoError(t, owner.VaultService.DeleteVault(testCtx(), v.ID))

	_, err = owner.VaultService.GetVault(testCtx(), v.ID)
	assert.ErrorIs(t, err, ErrVaultNotFound)

	invs, err := owner.InvitationService.ListInvitations(testCtx(), v.ID)
	require.NoError(t, err)
	assert.Empty(t, invs)

	assert.ErrorIs(t, owner.VaultService.DeleteVault(testCtx(), v.ID), ErrVaultNotFound)
}

func TestVaultService_ListVaults(t *testing.T) {
	n := newNetwork(t)
	owner := n.join(ownerKey, "owner")
	owner.createVault(t, "one")
	owner.createVault(t, "two")

	vaults, err := owner.VaultService.ListVaults(testCtx())
	require.NoError(t, err)
	assert.Len(t, vaults, 2)
}
