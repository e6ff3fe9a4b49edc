package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/crypto"
	"github.com/MKhiriev/go-steward-keeper/internal/gateway"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/internal/store"
	"github.com/MKhiriev/go-steward-keeper/models"
)

var (
	ownerKey = strings.Repeat("1a", 32)
	aliceKey = strings.Repeat("2b", 32)
)

const testRelay = "wss://relay.test"

func init() {
	color.NoColor = true
}

func newTestApp(t *testing.T, hub *gateway.MemoryHub, pubkey, name string) *App {
	t.Helper()
	ctx := logger.Nop().WithContext(context.Background())

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: store.MemoryDSN}}, logger.Nop())
	require.NoError(t, err)

	sealer, err := crypto.NewContentSealer("passphrase-"+name, crypto.WithArgon2Params(crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1}))
	require.NoError(t, err)

	appCfg := config.ClientApp{
		Pubkey:             pubkey,
		DisplayName:        name,
		VaultPassphrase:    "passphrase-" + name,
		Relays:             []string{testRelay},
		RecoveryExpiration: config.DefaultRecoveryExpiration,
		FanOutLimit:        config.DefaultFanOutLimit,
	}
	return newApp(appCfg, storages, hub.Endpoint(pubkey), sealer, logger.Nop())
}

// run executes one CLI invocation against client and returns its output.
func run(t *testing.T, client Client, args ...string) (string, error) {
	t.Helper()
	open := func(context.Context, string) (Client, *logger.Logger, error) {
		return client, logger.Nop(), nil
	}

	var out bytes.Buffer
	root := newRootCommand(open, models.NewAppBuildInfo("1.2.3", "2026-03-01", "abc123"))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, client Client, args ...string) string {
	t.Helper()
	out, err := run(t, client, args...)
	require.NoError(t, err, out)
	return out
}

// lastLine returns the last non-empty output line.
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// fieldOf returns the second word of the first output line, the id in
// "vault <id> created" style messages.
func fieldOf(out string) string {
	words := strings.Fields(out)
	if len(words) < 2 {
		return ""
	}
	return words[1]
}
