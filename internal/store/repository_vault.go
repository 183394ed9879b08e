package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// vaultRepository stores vault entries with their structured parts encoded
// as JSON text columns, so the same schema works on both dialects.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultRepository) ListEntries(ctx context.Context, userID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectVaultQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.ListEntries").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		var (
			entry                         models.VaultEntry
			category                      string
			fields, secrets, customFields string
		)

		scanErr := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Title,
			&category,
			&fields,
			&secrets,
			&customFields,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*vaultRepository.ListEntries").
				Int64("user_id", userID).
				Msg("failed to scan vault row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entry.Category = models.Category(category)
		if err = decodeColumns(
			column{fields, &entry.Fields},
			column{secrets, &entry.Secrets},
			column{customFields, &entry.CustomFields},
		); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// SaveEntries upserts all entries in one transaction. Either every entry is
// written or none is.
func (r *vaultRepository) SaveEntries(ctx context.Context, entries []models.VaultEntry) error {
	if len(entries) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.SaveEntries").
			Int("entries_count", len(entries)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, entry := range entries {
		fields, secrets, customFields, encErr := encodeEntryColumns(entry)
		if encErr != nil {
			return encErr
		}

		query, args, buildErr := r.builder.
			Insert(vaultEntryTable).
			Columns(vaultColumns...).
			Values(
				entry.ID,
				entry.UserID,
				entry.Title,
				string(entry.Category),
				fields,
				secrets,
				customFields,
				entry.CreatedAt,
				entry.UpdatedAt,
			).
			Suffix(vaultUpsertClash).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "*vaultRepository.SaveEntries").
				Int("iteration", idx+1).
				Int("total", len(entries)).
				Str("title", entry.Title).
				Msg("failed to upsert vault entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*vaultRepository.SaveEntries").
			Int("entries_count", len(entries)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

type column struct {
	raw  string
	dest any
}

func decodeColumns(columns ...column) error {
	for _, c := range columns {
		if c.raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(c.raw), c.dest); err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
	}
	return nil
}

func encodeEntryColumns(entry models.VaultEntry) (fields, secrets, customFields string, err error) {
	encode := func(v any) (string, error) {
		b, marshalErr := json.Marshal(v)
		if marshalErr != nil {
			return "", fmt.Errorf("%w: %w", ErrEncodingColumn, marshalErr)
		}
		return string(b), nil
	}

	if fields, err = encode(nonNilMap(entry.Fields)); err != nil {
		return
	}
	if secrets, err = encode(nonNilMap(entry.Secrets)); err != nil {
		return
	}
	if entry.CustomFields == nil {
		entry.CustomFields = []models.CustomField{}
	}
	customFields, err = encode(entry.CustomFields)
	return
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
