// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs)
	}

	if _, err := models.ParseUndecryptablePolicy(cfg.Session.UndecryptablePolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSessionConfigs, err)
	}
	if !models.Scheme(cfg.Session.DefaultScheme).IsValid() {
		return fmt.Errorf("%w: unknown scheme %q", ErrInvalidSessionConfigs, cfg.Session.DefaultScheme)
	}
	if cfg.Session.Expiry < 0 || cfg.Session.KeyCacheTTL < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidSessionConfigs)
	}

	if cfg.Adapter.Attempts < 1 {
		return fmt.Errorf("%w: at least one attempt is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SweepInterval < 0 {
		return fmt.Errorf("%w: sweep interval must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}
