package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

const (
	pingAttempts = 5
	pingBackoff  = 2 * time.Second
)

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database, retrying while the failure looks transient
	err = pingWithRetry(ctx, conn, classifier, log)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, config.DriverPostgres, classifier, log), nil
}

func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	backoff := retry.WithMaxRetries(pingAttempts-1, retry.NewConstant(pingBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := conn.PingContext(ctx)
		if err == nil {
			return nil
		}
		if classifier.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "pingWithRetry").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
