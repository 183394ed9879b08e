package models

// CreateSessionResponse echoes the created (or already existing) session.
type CreateSessionResponse struct {
	SessionID     string `json:"sessionId"`
	ExpirySeconds int64  `json:"expirySeconds"`
}

// AuthResult is returned to the primary device after authentication.
type AuthResult struct {
	Token      string       `json:"token"`
	UserID     int64        `json:"userId"`
	Username   string       `json:"username"`
	PrivateKey string       `json:"privateKey"`
	SessionID  string       `json:"sessionId"`
	Report     *BatchReport `json:"report,omitempty"`
}

// SessionIdentity is the identity part of a check response.
type SessionIdentity struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	UserID     int64  `json:"userId"`
	PrivateKey string `json:"privateKey,omitempty"`
	SessionID  string `json:"sessionId"`
}

// CheckSessionResponse is polled by the edge device until the session is
// authenticated.
type CheckSessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Session       *SessionIdentity `json:"session,omitempty"`
}

// EnqueueResponse returns the id assigned to a pending item.
type EnqueueResponse struct {
	ID string `json:"id"`
}

// MarkSavedResponse reports how many items changed status.
type MarkSavedResponse struct {
	Updated int64 `json:"updated"`
}

// HasPendingResponse reports whether unsaved items remain.
type HasPendingResponse struct {
	HasPendingPasswords bool `json:"hasPendingPasswords"`
}

// PendingPasswordsResponse lists a session's pending items.
type PendingPasswordsResponse struct {
	PendingPasswords []PendingPasswordView `json:"pendingPasswords"`
}

// ProcessResponse is returned by an explicit reconciliation run.
type ProcessResponse struct {
	ProcessedCount int         `json:"processedCount"`
	Report         BatchReport `json:"report"`
}

// ListSessionsResponse lists a user's live sessions.
type ListSessionsResponse struct {
	Sessions []SessionSummary `json:"sessions"`
}

// VerifySessionResponse reports whether a user has a live session.
type VerifySessionResponse struct {
	Valid bool `json:"valid"`
}

// VerifyAccessResponse is returned after a successful PIN check.
type VerifyAccessResponse struct {
	Success       bool `json:"success"`
	UseBiometrics bool `json:"useBiometrics"`
}

// RegisterUserResponse echoes the created user.
type RegisterUserResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}
