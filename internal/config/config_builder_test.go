package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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

// minimalConfig returns a config that passes validation once defaults are
// applied.
func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "sign"},
		Server:  Server{HTTPAddress: "localhost:8080"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because the sign key is required.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies the documented defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 7200*time.Second, cfg.Session.Expiry)
	assert.Equal(t, time.Hour, cfg.Workers.SweepInterval)
	assert.Equal(t, "raw", cfg.Session.UndecryptablePolicy)
	assert.Equal(t, "aes", cfg.Session.DefaultScheme)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 2, cfg.Adapter.Attempts)
	assert.Equal(t, time.Second, cfg.Adapter.RetryWait)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

// TestBuild_LaterSourceOverrides verifies that a later config overrides
// non-zero fields and keeps the rest.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	first := minimalConfig()
	first.App.Version = "1.0.0"
	first.App.TokenIssuer = "env-issuer"

	b := newConfigBuilder()
	b.configs = append(b.configs, first, &StructuredConfig{App: App{TokenIssuer: "json-issuer"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"no address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"no dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"bad driver", func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, ErrInvalidStorageConfigs},
		{"bad policy", func(c *StructuredConfig) { c.Session.UndecryptablePolicy = "ignore" }, ErrInvalidSessionConfigs},
		{"bad scheme", func(c *StructuredConfig) { c.Session.DefaultScheme = "des" }, ErrInvalidSessionConfigs},
		{"negative ttl", func(c *StructuredConfig) { c.Session.KeyCacheTTL = -time.Second }, ErrInvalidSessionConfigs},
		{"negative attempts", func(c *StructuredConfig) { c.Adapter.Attempts = -1 }, ErrInvalidAdapterConfigs},
		{"negative sweep", func(c *StructuredConfig) { c.Workers.SweepInterval = -time.Minute }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_LoadsIntoEnvironment verifies that variables from the file
// are picked up by withEnv and do not override variables already set.
func TestWithDotEnv_LoadsIntoEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-file\nAPP_TOKEN_ISSUER=from-file\n"), 0o600))

	// register both for cleanup; APP_VERSION is removed so the file can set it
	t.Setenv("APP_VERSION", "")
	require.NoError(t, os.Unsetenv("APP_VERSION"))
	t.Setenv("APP_TOKEN_ISSUER", "from-env")

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-file", b.configs[0].App.Version)
	assert.Equal(t, "from-env", b.configs[0].App.TokenIssuer)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SESSION_UNDECRYPTABLE_POLICY", "quarantine")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "quarantine", b.configs[0].Session.UndecryptablePolicy)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "localhost:9000", "-db-driver", "sqlite"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "sqlite", b.configs[0].Storage.DB.Driver)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Session.UndecryptablePolicy = "drop"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "drop", b.configs[1].Session.UndecryptablePolicy)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that the last non-empty JSONFilePath wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}
