package config

import "time"

const (
	DefaultSessionExpiry       = 7200 * time.Second
	DefaultSweepInterval       = time.Hour
	DefaultUndecryptablePolicy = "raw"
	DefaultScheme              = "aes"
	DefaultTokenIssuer         = "go-pass-bridge"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultDBDriver            = DriverPostgres
	DefaultRedisKeyPrefix      = "bridge:session-key:"

	DefaultAdapterTimeout   = 10 * time.Second
	DefaultAdapterAttempts  = 2
	DefaultAdapterRetryWait = time.Second

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// applyDefaults fills zero-valued settings with their defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}

	if cfg.Session.Expiry == 0 {
		cfg.Session.Expiry = DefaultSessionExpiry
	}
	if cfg.Session.UndecryptablePolicy == "" {
		cfg.Session.UndecryptablePolicy = DefaultUndecryptablePolicy
	}
	if cfg.Session.DefaultScheme == "" {
		cfg.Session.DefaultScheme = DefaultScheme
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Storage.Redis.KeyPrefix == "" {
		cfg.Storage.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Adapter.Attempts == 0 {
		cfg.Adapter.Attempts = DefaultAdapterAttempts
	}
	if cfg.Adapter.RetryWait == 0 {
		cfg.Adapter.RetryWait = DefaultAdapterRetryWait
	}

	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = DefaultSweepInterval
	}
}
