package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists bridge sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	UpdateSession(ctx context.Context, session models.Session) error

	// DeleteSession removes the session and its pending items atomically.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteSessionsCreatedBefore removes every session created before
	// cutoff, with its pending items, and returns the removed ids.
	DeleteSessionsCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error)

	ListUserSessions(ctx context.Context, userID int64) ([]models.Session, error)
}

// PendingCredentialRepository is the durable pending-credential queue.
// Every enqueue is a single append; nothing rewrites the queue as a whole.
type PendingCredentialRepository interface {
	AppendPending(ctx context.Context, item models.PendingCredential) error

	// ListPending returns a snapshot of the session's queue in enqueue order.
	ListPending(ctx context.Context, sessionID string) ([]models.PendingCredential, error)

	MarkPendingSaved(ctx context.Context, sessionID string, ids []string) (int64, error)
	MarkPendingQuarantined(ctx context.Context, sessionID string, ids []string) (int64, error)
	RemovePending(ctx context.Context, sessionID string, ids []string) (int64, error)
	HasUnsavedPending(ctx context.Context, sessionID string) (bool, error)
}

// UserRepository stores vault owners.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// VaultRepository is the minimal vault collaborator reconciliation merges
// into.
type VaultRepository interface {
	ListEntries(ctx context.Context, userID int64) ([]models.VaultEntry, error)

	// SaveEntries upserts entries by (user_id, title, category) in one
	// transaction. CreatedAt of existing rows is kept.
	SaveEntries(ctx context.Context, entries []models.VaultEntry) error
}

// PrivateKeyCache keeps the private key handed over at authentication for
// later checks by the edge device. It is never written to SQL.
type PrivateKeyCache interface {
	Put(ctx context.Context, sessionID, privateKey string) error

	// Get returns the cached key and whether it was present.
	Get(ctx context.Context, sessionID string) (string, bool, error)

	Delete(ctx context.Context, sessionIDs ...string) error
}

// ErrorClassificator maps driver errors to retry decisions and detects
// unique-key conflicts.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
