package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// pendingCredentialRepository is the SQL-backed pending-credential queue.
//
// Items are rows, so an append never races with a reconciliation snapshot:
// removal deletes exactly the ids that were processed.
type pendingCredentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewPendingCredentialRepository constructs a [PendingCredentialRepository]
// backed by db.
func NewPendingCredentialRepository(db *DB, logger *logger.Logger) PendingCredentialRepository {
	logger.Debug().Msg("creating pending credential repository")
	return &pendingCredentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *pendingCredentialRepository) AppendPending(ctx context.Context, item models.PendingCredential) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(pendingTable).
		Columns(pendingColumns...).
		Values(
			item.ID,
			item.SessionID,
			item.Title,
			string(item.Category),
			string(item.Secret.Scheme),
			string(item.Secret.KeySource),
			item.Secret.Payload,
			string(item.Status),
			item.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*pendingCredentialRepository.AppendPending").
			Str("session_id", item.SessionID).
			Msg("failed to append pending item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *pendingCredentialRepository) ListPending(ctx context.Context, sessionID string) ([]models.PendingCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectPendingQuery(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*pendingCredentialRepository.ListPending").
			Str("session_id", sessionID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.PendingCredential, 0)
	for rows.Next() {
		var (
			item                                models.PendingCredential
			category, scheme, keySource, status string
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.SessionID,
			&item.Title,
			&category,
			&scheme,
			&keySource,
			&item.Secret.Payload,
			&status,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*pendingCredentialRepository.ListPending").
				Str("session_id", sessionID).
				Msg("failed to scan pending row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.Category = models.Category(category)
		item.Secret.Scheme = models.Scheme(scheme)
		item.Secret.KeySource = models.KeySource(keySource)
		item.Status = models.PendingStatus(status)
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// MarkPendingSaved flips pending items to saved and returns how many changed.
// Quarantined items are left alone.
func (r *pendingCredentialRepository) MarkPendingSaved(ctx context.Context, sessionID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := r.buildUpdatePendingStatusQuery(sessionID, ids, string(models.PendingStatusSaved), string(models.PendingStatusPending))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*pendingCredentialRepository.MarkPendingSaved", sessionID, query, args)
}

func (r *pendingCredentialRepository) MarkPendingQuarantined(ctx context.Context, sessionID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := r.buildUpdatePendingStatusQuery(sessionID, ids, string(models.PendingStatusQuarantined))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*pendingCredentialRepository.MarkPendingQuarantined", sessionID, query, args)
}

// RemovePending deletes exactly ids from the session's queue.
func (r *pendingCredentialRepository) RemovePending(ctx context.Context, sessionID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := r.buildDeletePendingQuery(sessionID, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*pendingCredentialRepository.RemovePending", sessionID, query, args)
}

// HasUnsavedPending reports whether any item is still in the pending status.
func (r *pendingCredentialRepository) HasUnsavedPending(ctx context.Context, sessionID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("COUNT(*)").
		From(pendingTable).
		Where(sq.Eq{
			"session_id": sessionID,
			"status":     string(models.PendingStatusPending),
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*pendingCredentialRepository.HasUnsavedPending").
			Str("session_id", sessionID).
			Msg("failed to count pending items")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *pendingCredentialRepository) exec(ctx context.Context, funcName, sessionID, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("session_id", sessionID).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
