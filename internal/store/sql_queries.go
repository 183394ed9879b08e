package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable       = "users"
	sessionsTable    = "sessions"
	pendingTable     = "pending_credentials"
	vaultEntryTable  = "vault_entries"
	vaultUpsertClash = "ON CONFLICT (user_id, title, category) DO UPDATE SET " +
		"fields = excluded.fields, " +
		"secrets = excluded.secrets, " +
		"custom_fields = excluded.custom_fields, " +
		"updated_at = excluded.updated_at"
)

var (
	userColumns = []string{"user_id", "username", "created_at"}

	sessionColumns = []string{
		"session_id",
		"state",
		"user_id",
		"username",
		"device_name",
		"token",
		"access_pin",
		"use_biometrics",
		"created_at",
		"expires_at",
	}

	pendingColumns = []string{
		"id",
		"session_id",
		"title",
		"category",
		"scheme",
		"key_source",
		"payload",
		"status",
		"created_at",
	}

	vaultColumns = []string{
		"id",
		"user_id",
		"title",
		"category",
		"fields",
		"secrets",
		"custom_fields",
		"created_at",
		"updated_at",
	}
)

func (db *DB) buildSelectSessionQuery(sessionID string) (string, []any, error) {
	return db.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func (db *DB) buildSelectUserSessionsQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func (db *DB) buildSelectPendingQuery(sessionID string) (string, []any, error) {
	return db.builder.
		Select(pendingColumns...).
		From(pendingTable).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("created_at", "id").
		ToSql()
}

func (db *DB) buildUpdatePendingStatusQuery(sessionID string, ids []string, status string, from ...string) (string, []any, error) {
	where := sq.And{
		sq.Eq{"session_id": sessionID},
		sq.Eq{"id": ids},
	}
	if len(from) > 0 {
		where = append(where, sq.Eq{"status": from})
	}

	return db.builder.
		Update(pendingTable).
		Set("status", status).
		Where(where).
		ToSql()
}

func (db *DB) buildDeletePendingQuery(sessionID string, ids []string) (string, []any, error) {
	return db.builder.
		Delete(pendingTable).
		Where(sq.And{
			sq.Eq{"session_id": sessionID},
			sq.Eq{"id": ids},
		}).
		ToSql()
}

func (db *DB) buildSelectVaultQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(vaultColumns...).
		From(vaultEntryTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}
