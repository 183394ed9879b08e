// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_VERSION":        "1.2.3",
		"APP_LOG_LEVEL":      "info",

		"SESSION_EXPIRY":               "3600s",
		"SESSION_KEY_CACHE_TTL":        "15m",
		"SESSION_UNDECRYPTABLE_POLICY": "drop",
		"SESSION_DEFAULT_SCHEME":       "xor",

		"STORAGE_DB_DRIVER":        "sqlite",
		"STORAGE_DB_DATABASE_URI":  "file:bridge.db",
		"STORAGE_REDIS_ADDRESS":    "localhost:6379",
		"STORAGE_REDIS_PASSWORD":   "pw",
		"STORAGE_REDIS_DB":         "2",
		"STORAGE_REDIS_KEY_PREFIX": "k:",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_ALLOWED_ORIGINS": "chrome-extension://abc,https://app.example.com",

		"ADAPTER_VOICE_ADDRESS":   "http://voice:5000",
		"ADAPTER_REQUEST_TIMEOUT": "10s",
		"ADAPTER_ATTEMPTS":        "3",
		"ADAPTER_RETRY_WAIT":      "500ms",

		"WORKERS_SWEEP_INTERVAL": "1h",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, time.Hour, cfg.Session.Expiry)
	assert.Equal(t, 15*time.Minute, cfg.Session.KeyCacheTTL)
	assert.Equal(t, "drop", cfg.Session.UndecryptablePolicy)
	assert.Equal(t, "xor", cfg.Session.DefaultScheme)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:bridge.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "pw", cfg.Storage.Redis.Password)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, "k:", cfg.Storage.Redis.KeyPrefix)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"chrome-extension://abc", "https://app.example.com"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "http://voice:5000", cfg.Adapter.VoiceAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.Attempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Adapter.RetryWait)

	assert.Equal(t, time.Hour, cfg.Workers.SweepInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SESSION_EXPIRY", "two hours")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("ADAPTER_ATTEMPTS", "twice")

	assert.Error(t, parseEnv(&StructuredConfig{}))
}
