package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/MKhiriev/go-steward-keeper/models"
)

// clone deep-copies v through its JSON form so callers never share maps or
// slices with the stored value.
func clone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return out, nil
}

type memoryVaultStorage struct {
	mu     sync.RWMutex
	vaults map[string]models.Vault
}

// NewMemoryVaultStorage returns a process-local [VaultStorage].
func NewMemoryVaultStorage() VaultStorage {
	return &memoryVaultStorage{vaults: make(map[string]models.Vault)}
}

func (m *memoryVaultStorage) CreateVault(_ context.Context, vault models.Vault) error {
	stored, err := clone(vault)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vaults[vault.ID]; ok {
		return ErrVaultAlreadyExists
	}
	m.vaults[vault.ID] = stored

	return nil
}

func (m *memoryVaultStorage) GetVault(_ context.Context, id string) (models.Vault, error) {
	m.mu.RLock()
	vault, ok := m.vaults[id]
	m.mu.RUnlock()

	if !ok {
		return models.Vault{}, ErrVaultNotFound
	}

	return clone(vault)
}

func (m *memoryVaultStorage) ListVaults(_ context.Context) ([]models.Vault, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vaults := make([]models.Vault, 0, len(m.vaults))
	for _, v := range m.vaults {
		c, err := clone(v)
		if err != nil {
			return nil, err
		}
		vaults = append(vaults, c)
	}

	sort.Slice(vaults, func(i, j int) bool {
		if vaults[i].CreatedAt.Equal(vaults[j].CreatedAt) {
			return vaults[i].ID < vaults[j].ID
		}
		return vaults[i].CreatedAt.Before(vaults[j].CreatedAt)
	})

	return vaults, nil
}

func (m *memoryVaultStorage) UpdateVault(_ context.Context, id string, fn VaultMutator) (models.Vault, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.vaults[id]
	if !ok {
		return models.Vault{}, ErrVaultNotFound
	}

	vault, err := clone(stored)
	if err != nil {
		return models.Vault{}, err
	}
	if err := fn(&vault); err != nil {
		return models.Vault{}, err
	}
	vault.ID = id

	if stored, err = clone(vault); err != nil {
		return models.Vault{}, err
	}
	m.vaults[id] = stored

	return vault, nil
}

func (m *memoryVaultStorage) DeleteVault(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vaults[id]; !ok {
		return ErrVaultNotFound
	}
	delete(m.vaults, id)

	return nil
}

type memoryInvitationStorage struct {
	mu          sync.RWMutex
	invitations map[string]models.Invitation
}

// NewMemoryInvitationStorage returns a process-local [InvitationStorage].
func NewMemoryInvitationStorage() InvitationStorage {
	return &memoryInvitationStorage{invitations: make(map[string]models.Invitation)}
}

func (m *memoryInvitationStorage) CreateInvitation(_ context.Context, inv models.Invitation) error {
	stored, err := clone(inv)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.invitations[inv.Code]; ok {
		return ErrInvitationAlreadyExists
	}
	m.invitations[inv.Code] = stored

	return nil
}

func (m *memoryInvitationStorage) GetInvitation(_ context.Context, code string) (models.Invitation, error) {
	m.mu.RLock()
	inv, ok := m.invitations[code]
	m.mu.RUnlock()

	if !ok {
		return models.Invitation{}, ErrInvitationNotFound
	}

	return clone(inv)
}

func (m *memoryInvitationStorage) ListInvitations(_ context.Context, vaultID string) ([]models.Invitation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var invitations []models.Invitation
	for _, inv := range m.invitations {
		if inv.VaultID != vaultID {
			continue
		}
		c, err := clone(inv)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, c)
	}

	sort.Slice(invitations, func(i, j int) bool {
		if invitations[i].CreatedAt.Equal(invitations[j].CreatedAt) {
			return invitations[i].Code < invitations[j].Code
		}
		return invitations[i].CreatedAt.Before(invitations[j].CreatedAt)
	})

	return invitations, nil
}

func (m *memoryInvitationStorage) UpdateInvitation(_ context.Context, code string, fn InvitationMutator) (models.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.invitations[code]
	if !ok {
		return models.Invitation{}, ErrInvitationNotFound
	}

	inv, err := clone(stored)
	if err != nil {
		return models.Invitation{}, err
	}
	if err := fn(&inv); err != nil {
		return models.Invitation{}, err
	}
	inv.Code = code

	if stored, err = clone(inv); err != nil {
		return models.Invitation{}, err
	}
	m.invitations[code] = stored

	return inv, nil
}

func (m *memoryInvitationStorage) DeleteVaultInvitations(_ context.Context, vaultID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for code, inv := range m.invitations {
		if inv.VaultID == vaultID {
			delete(m.invitations, code)
		}
	}

	return nil
}

type memoryMailboxStorage struct {
	mu        sync.Mutex
	mailboxes map[string][]models.MailboxEnvelope
	seen      map[string]struct{}
}

// NewMemoryMailboxStorage returns a process-local [MailboxStorage].
func NewMemoryMailboxStorage() MailboxStorage {
	return &memoryMailboxStorage{
		mailboxes: make(map[string][]models.MailboxEnvelope),
		seen:      make(map[string]struct{}),
	}
}

func (m *memoryMailboxStorage) PutEnvelope(_ context.Context, env models.MailboxEnvelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.seen[env.ID]; ok {
		return ErrEnvelopeAlreadyExists
	}
	m.seen[env.ID] = struct{}{}

	env.Payload = slices.Clone(env.Payload)
	m.mailboxes[env.ToPubkey] = append(m.mailboxes[env.ToPubkey], env)

	return nil
}

func (m *memoryMailboxStorage) FetchEnvelopes(_ context.Context, pubkey string, limit int) ([]models.MailboxEnvelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	box := m.mailboxes[pubkey]
	if limit > 0 && len(box) > limit {
		box = box[:limit]
	}

	out := make([]models.MailboxEnvelope, len(box))
	for i, env := range box {
		env.Payload = slices.Clone(env.Payload)
		out[i] = env
	}

	return out, nil
}

func (m *memoryMailboxStorage) AckEnvelopes(_ context.Context, pubkey string, ids []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	box := m.mailboxes[pubkey]
	kept := box[:0]
	for _, env := range box {
		if slices.Contains(ids, env.ID) {
			removed++
			continue
		}
		kept = append(kept, env)
	}

	if len(kept) == 0 {
		delete(m.mailboxes, pubkey)
	} else {
		m.mailboxes[pubkey] = kept
	}

	return removed, nil
}
