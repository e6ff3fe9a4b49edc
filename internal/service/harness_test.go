package service

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/crypto"
	"github.com/MKhiriev/go-steward-keeper/internal/gateway"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/sharing"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/models"
)

var (
	ownerKey = strings.Repeat("a1", 32)
	aliceKey = strings.Repeat("b2", 32)
	bobKey   = strings.Repeat("c3", 32)
	carolKey = strings.Repeat("d4", 32)
)

const testRelay = "wss://relay.test"

var fastArgon2 = crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1}

func testCtx() context.Context {
	return logger.Nop().WithContext(context.Background())
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// device is one participant of a test network.
type device struct {
	pubkey   string
	name     string
	storages *store.ClientStorages
	*Services
}

// network wires devices through an in-memory hub. Envelopes stay queued
// until settle delivers them, so tests control interleaving.
type network struct {
	t       *testing.T
	hub     *gateway.MemoryHub
	clock   *testClock
	devices map[string]*device
}

func newNetwork(t *testing.T) *network {
	t.Helper()
	return &network{
		t:       t,
		hub:     gateway.NewMemoryHub(),
		clock:   newTestClock(),
		devices: make(map[string]*device),
	}
}

func (n *network) join(pubkey, name string) *device {
	n.t.Helper()

	sealer, err := crypto.NewContentSealer("passphrase of "+name, crypto.WithArgon2Params(fastArgon2))
	require.NoError(n.t, err)

	storages := &store.ClientStorages{
		Vaults:      store.NewMemoryVaultStorage(),
		Invitations: store.NewMemoryInvitationStorage(),
	}
	app := config.ClientApp{
		Pubkey:      pubkey,
		DisplayName: name,
		Relays:      []string{testRelay},
		FanOutLimit: 4,
	}

	d := &device{
		pubkey:   pubkey,
		name:     name,
		storages: storages,
		Services: NewServices(app, storages, n.hub.Endpoint(pubkey), sealer,
			WithClock(n.clock.Now),
			WithModulus(sharing.Mersenne(1279)),
		),
	}
	n.devices[pubkey] = d
	return d
}

// settle dispatches queued envelopes until every mailbox is empty and
// returns the dispatch errors.
func (n *network) settle() []error {
	n.t.Helper()

	var errs []error
	keys := make([]string, 0, len(n.devices))
	for pk := range n.devices {
		keys = append(keys, pk)
	}
	slices.Sort(keys)

	for range 50 {
		delivered := 0
		for _, pk := range keys {
			for _, env := range n.hub.Drain(pk) {
				delivered++
				if err := n.devices[pk].Dispatcher.Dispatch(testCtx(), env); err != nil {
					errs = append(errs, err)
				}
			}
		}
		if delivered == 0 {
			return errs
		}
	}

	n.t.Fatal("network did not settle")
	return nil
}

// sentOfType returns the payloads of the given type sent to pubkey.
func (n *network) sentOfType(to string, typ models.MessageType) []models.Envelope {
	var out []models.Envelope
	for _, env := range n.hub.Sent() {
		if env.ToPubkey != to {
			continue
		}
		var h models.MessageHeader
		if json.Unmarshal(env.Payload, &h) == nil && h.Type == typ {
			out = append(out, env)
		}
	}
	return out
}

func (d *device) createVault(t *testing.T, content string) models.Vault {
	t.Helper()
	v, err := d.VaultService.CreateVault(testCtx(), "Family recovery", content, nil)
	require.NoError(t, err)
	return v
}

func (d *device) configure(t *testing.T, vaultID string, threshold int, pubkeys ...string) models.BackupConfig {
	t.Helper()
	stewards := make([]models.Steward, len(pubkeys))
	for i, pk := range pubkeys {
		stewards[i] = models.Steward{Pubkey: pk}
	}
	cfg, err := d.BackupService.CreateConfig(testCtx(), vaultID, threshold, len(stewards), stewards, nil, "")
	require.NoError(t, err)
	return cfg
}

func (d *device) config(t *testing.T, vaultID string) models.BackupConfig {
	t.Helper()
	cfg, err := d.BackupService.GetConfig(testCtx(), vaultID)
	require.NoError(t, err)
	return cfg
}

func (d *device) steward(t *testing.T, vaultID, pubkey string) models.Steward {
	t.Helper()
	cfg := d.config(t, vaultID)
	idx := cfg.StewardByPubkey(pubkey)
	require.GreaterOrEqual(t, idx, 0, "steward %s not in config", pubkey)
	return cfg.Stewards[idx]
}

func (d *device) heldShard(t *testing.T, vaultID string) (models.Shard, bool) {
	t.Helper()
	v, err := d.storages.Vaults.GetVault(testCtx(), vaultID)
	if err != nil {
		return models.Shard{}, false
	}
	return v.HeldShard()
}

func payload(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
