package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService manages the lifecycle of bridge sessions: creation by the
// edge device, authentication by the primary device, polling, deletion and
// the periodic expiry sweep.
type SessionService interface {
	// Create opens a session. created is false when the id already exists.
	Create(ctx context.Context, req models.CreateSessionRequest) (session models.Session, created bool, err error)

	// Authenticate binds the session to a user, reconciles its pending queue
	// into the user's vault and caches the private key.
	Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthResult, error)

	Check(ctx context.Context, sessionID string) (models.CheckSessionResponse, error)

	// Delete and Logout remove an owned session together with its queue.
	Delete(ctx context.Context, sessionID string, callerID int64) error
	Logout(ctx context.Context, sessionID string, callerID int64) error

	// SweepExpired removes every session created before now minus the
	// expiry window and returns how many were removed.
	SweepExpired(ctx context.Context, now time.Time) (int, error)

	List(ctx context.Context, username string, callerID int64) ([]models.SessionSummary, error)
	Verify(ctx context.Context, username string, callerID int64) error

	// Process re-runs reconciliation for an authenticated session.
	Process(ctx context.Context, req models.ProcessRequest, callerID int64) (models.ProcessResponse, error)
}

// PendingService is the pending-credential queue of a session.
type PendingService interface {
	Enqueue(ctx context.Context, req models.EnqueueRequest) (string, error)
	MarkSaved(ctx context.Context, req models.MarkSavedRequest, callerID int64) (int64, error)
	HasPending(ctx context.Context, sessionID string) (bool, error)
	List(ctx context.Context, sessionID, username string, callerID int64) ([]models.PendingPasswordView, error)
}

// ReconciliationEngine migrates a session's pending queue into the vault of
// the session's user.
type ReconciliationEngine interface {
	// Reconcile decodes the pending items with keys, re-encrypts their
	// secrets under privateKey, merges them into the vault of user and
	// removes exactly the migrated items from the queue.
	Reconcile(ctx context.Context, sessionID string, user models.User, privateKey string, keys models.SessionKeys) (models.BatchReport, error)
}

// AccessService manages the local unlock methods of an authenticated
// session.
type AccessService interface {
	SetAccessMethod(ctx context.Context, req models.AccessMethodRequest) error
	VerifyAccess(ctx context.Context, req models.VerifyAccessRequest) (models.VerifyAccessResponse, error)
	VerifyVoice(ctx context.Context, sessionID string, sample []byte) (models.VoiceVerdict, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, username string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SessionServiceWrapper defines middleware composition for SessionService.
// Implementations wrap an existing SessionService to add behavior such as
// logging or validating.
type SessionServiceWrapper interface {
	Wrap(SessionService) SessionService // returns a decorated SessionService applying additional behavior
}

// PendingServiceWrapper defines middleware composition for PendingService.
type PendingServiceWrapper interface {
	Wrap(PendingService) PendingService
}
