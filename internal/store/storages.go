package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

// Storages groups every repository the services depend on.
type Storages struct {
	SessionRepository           SessionRepository
	PendingCredentialRepository PendingCredentialRepository
	UserRepository              UserRepository
	VaultRepository             VaultRepository
	PrivateKeyCache             PrivateKeyCache

	db    *DB
	redis *redis.Client
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. The private-key cache lives in Redis when an
// address is configured and in process memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, sessionCfg config.Session, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		SessionRepository:           NewSessionRepository(db, log),
		PendingCredentialRepository: NewPendingCredentialRepository(db, log),
		UserRepository:              NewUserRepository(db, log),
		VaultRepository:             NewVaultRepository(db, log),
		db:                          db,
	}

	if cfg.Redis.Address == "" {
		log.Info().Str("func", "NewStorages").Msg("using in-memory private key cache")
		storages.PrivateKeyCache = NewMemoryKeyCache(sessionCfg.KeyCacheTTL)
		return storages, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		client.Close()
		db.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", pingErr)
	}

	log.Info().Str("func", "NewStorages").Str("address", cfg.Redis.Address).Msg("using redis private key cache")
	storages.redis = client
	storages.PrivateKeyCache = NewRedisKeyCache(client, cfg.Redis.KeyPrefix, sessionCfg.KeyCacheTTL)

	return storages, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = s.redis.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil && err == nil {
			err = dbErr
		}
	}
	return err
}
