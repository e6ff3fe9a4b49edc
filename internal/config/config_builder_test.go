package config

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

var testPubkey = strings.Repeat("ab", 32)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{DisplayName: "alice"}},
		&StructuredConfig{Gateway: Gateway{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.App.DisplayName)
	assert.Equal(t, "issuer", cfg.Gateway.TokenIssuer)
}

// TestBuild_LaterLayerOverrides verifies that later non-zero fields win and
// zero fields leave earlier values in place.
func TestBuild_LaterLayerOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{DisplayName: "first", FanOutLimit: 4}},
		&StructuredConfig{App: App{DisplayName: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.DisplayName)
	assert.Equal(t, 4, cfg.App.FanOutLimit)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_PopulatesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultRecoveryExpiration, cfg.App.RecoveryExpiration)
	assert.Equal(t, DefaultFanOutLimit, cfg.App.FanOutLimit)
	assert.Equal(t, DefaultRequestTimeout, cfg.Gateway.RequestTimeout)
	assert.Equal(t, DefaultRetryCount, cfg.Gateway.RetryCount)
	assert.Equal(t, DefaultRelayAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.InboundPollInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("APP_FAN_OUT_LIMIT", "2")
	t.Setenv("GATEWAY_RETRY_COUNT", "7")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.App.FanOutLimit)
	assert.Equal(t, 7, cfg.Gateway.RetryCount)
	assert.Equal(t, DefaultRecoveryExpiration, cfg.App.RecoveryExpiration)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_FAN_OUT_LIMIT", "many")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsFlagLayer(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-a", "127.0.0.1:9999", "-d", "postgres://x"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
}

func TestWithFlags_BadFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromConfigPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"display_name":        "from-json",
			"recovery_expiration": "2h",
		},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withConfigPath(path).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.DisplayName)
	assert.Equal(t, 2*time.Hour, cfg.App.RecoveryExpiration)
}

func TestWithJSON_LastPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"display_name": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"display_name": "second"}})
	t.Setenv("CONFIG", first)

	cfg, err := newConfigBuilder().
		withEnv().
		withConfigPath(second).
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.DisplayName)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().withConfigPath("/does/not/exist.json").withJSON()
	assert.Error(t, b.err)
}

// ── GetClientConfig / GetRelayConfig ──────────────────────────────────────────

func TestGetClientConfig_Valid(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"pubkey":           testPubkey,
			"vault_passphrase": "correct horse",
			"relays":           []string{"wss://relay.example"},
		},
		"storage": map[string]any{"db": map[string]any{"dsn": ":memory:"}},
	})

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, testPubkey, cfg.App.Pubkey)
	assert.Equal(t, []string{"wss://relay.example"}, cfg.App.Relays)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultFanOutLimit, cfg.App.FanOutLimit)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		wantErr error
	}{
		{
			name:    "bad pubkey",
			body:    map[string]any{"app": map[string]any{"pubkey": "short", "vault_passphrase": "p"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing passphrase",
			body:    map[string]any{"app": map[string]any{"pubkey": testPubkey}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			body:    map[string]any{"app": map[string]any{"pubkey": testPubkey, "vault_passphrase": "p"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "relay url without sign key",
			body: map[string]any{
				"app":     map[string]any{"pubkey": testPubkey, "vault_passphrase": "p"},
				"storage": map[string]any{"db": map[string]any{"dsn": ":memory:"}},
				"gateway": map[string]any{"relay_url": "http://localhost:8080"},
			},
			wantErr: ErrInvalidGatewayConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempJSONConfig(t, tt.body)
			_, err := GetClientConfig(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetRelayConfig_FromFlags(t *testing.T) {
	cfg, err := GetRelayConfig([]string{"-a", ":8081", "-token-sign-key", "secret"})
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.Server.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.Server.TokenIssuer)
}

func TestGetRelayConfig_MissingSignKey(t *testing.T) {
	_, err := GetRelayConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}
