// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (models.Session, error) {
	var (
		s      models.Session
		state  string
		userID sql.NullInt64
	)

	err := row.Scan(
		&s.SessionID,
		&state,
		&userID,
		&s.Username,
		&s.DeviceName,
		&s.Token,
		&s.AccessPIN,
		&s.UseBiometrics,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		return models.Session{}, err
	}

	s.State = models.SessionState(state)
	s.UserID = userID.Int64
	return s, nil
}

func nullableUserID(userID int64) sql.NullInt64 {
	return sql.NullInt64{Int64: userID, Valid: userID != 0}
}

// CreateSession inserts a new session row. A duplicate id is
// [ErrSessionAlreadyExists].
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			session.SessionID,
			string(session.State),
			nullableUserID(session.UserID),
			session.Username,
			session.DeviceName,
			session.Token,
			session.AccessPIN,
			session.UseBiometrics,
			session.CreatedAt,
			session.ExpiresAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isUniqueViolation(err) {
			return ErrSessionAlreadyExists
		}
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Str("session_id", session.SessionID).
			Msg("failed to insert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession loads one session. A missing row is [ErrSessionNotFound].
func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectSessionQuery(sessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := scanSession(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.GetSession").
			Str("session_id", sessionID).
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// UpdateSession overwrites the mutable columns of an existing session.
func (r *sessionRepository) UpdateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(sessionsTable).
		SetMap(map[string]any{
			"state":          string(session.State),
			"user_id":        nullableUserID(session.UserID),
			"username":       session.Username,
			"device_name":    session.DeviceName,
			"token":          session.Token,
			"access_pin":     session.AccessPIN,
			"use_biometrics": session.UseBiometrics,
			"expires_at":     session.ExpiresAt,
		}).
		Where(sq.Eq{"session_id": session.SessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.UpdateSession").
			Str("session_id", session.SessionID).
			Msg("failed to update session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteSession removes the session and its pending items in one
// transaction. A missing session is [ErrSessionNotFound].
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.DeleteSession").
			Str("session_id", sessionID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	affected, err := r.deleteSessionsTx(ctx, tx, sq.Eq{"session_id": sessionID})
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.DeleteSession").
			Str("session_id", sessionID).
			Msg("failed to delete session")
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*sessionRepository.DeleteSession").
			Str("session_id", sessionID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// DeleteSessionsCreatedBefore removes every session created before cutoff
// regardless of its state and returns their ids. Timestamps are stored in
// UTC and SQLite compares them as text, so cutoff is normalized first.
func (r *sessionRepository) DeleteSessionsCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionsCreatedBefore").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.builder.
		Select("session_id").
		From(sessionsTable).
		Where(sq.Lt{"created_at": cutoff.UTC()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionsCreatedBefore").Msg("failed to select expired sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(ids) == 0 {
		return ids, nil
	}

	if _, err = r.deleteSessionsTx(ctx, tx, sq.Eq{"session_id": ids}); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.DeleteSessionsCreatedBefore").
			Int("count", len(ids)).
			Msg("failed to delete expired sessions")
		return nil, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*sessionRepository.DeleteSessionsCreatedBefore").
		Int("count", len(ids)).
		Msg("expired sessions deleted")

	return ids, nil
}

// deleteSessionsTx removes pending items first, then the sessions matched by
// where, and returns the number of deleted sessions.
func (r *sessionRepository) deleteSessionsTx(ctx context.Context, tx *sql.Tx, where sq.Eq) (int64, error) {
	pendingQuery, pendingArgs, err := r.builder.Delete(pendingTable).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, pendingQuery, pendingArgs...); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	sessionQuery, sessionArgs, err := r.builder.Delete(sessionsTable).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, sessionQuery, sessionArgs...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

// ListUserSessions returns every session bound to userID, newest first.
func (r *sessionRepository) ListUserSessions(ctx context.Context, userID int64) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectUserSessionsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.ListUserSessions").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sessions = append(sessions, session)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sessions, nil
}
