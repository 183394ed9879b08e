package models

import "time"

// CreateSessionRequest is sent by the edge device to open a session.
type CreateSessionRequest struct {
	SessionID string `json:"sessionId"`

	// ExpirySeconds overrides the configured session lifetime when positive.
	ExpirySeconds int64 `json:"expirySeconds,omitempty"`
}

// AuthenticateRequest is sent by the primary device to bind a session to a
// user and hand over the private key.
type AuthenticateRequest struct {
	SessionID  string `json:"sessionId"`
	Username   string `json:"username"`
	PrivateKey string `json:"privateKey"`
	DeviceName string `json:"deviceName,omitempty"`
}

// SessionIDRequest carries only a session id (check, delete, logout).
type SessionIDRequest struct {
	SessionID string `json:"sessionId"`
}

// EnqueueRequest adds one credential to a session's pending queue.
//
// With an empty Scheme, Password is plaintext and the server encrypts it.
// Otherwise Password is a payload the caller already produced with Scheme
// under the session's queue key.
type EnqueueRequest struct {
	SessionID string `json:"sessionId"`
	Title     string `json:"title"`
	Password  string `json:"password"`
	Category  string `json:"category,omitempty"`
	Scheme    Scheme `json:"scheme,omitempty"`
}

// MarkSavedRequest acknowledges pending items on the edge device.
type MarkSavedRequest struct {
	SessionID   string   `json:"sessionId"`
	PasswordIDs []string `json:"passwordIds"`
}

// ProcessRequest re-runs reconciliation for an authenticated session.
type ProcessRequest struct {
	SessionID  string `json:"sessionId"`
	Username   string `json:"username"`
	PrivateKey string `json:"privateKey"`
}

// AccessMethodRequest configures the local unlock method of a session.
// Nil fields are left unchanged.
type AccessMethodRequest struct {
	SessionID     string  `json:"sessionId"`
	PIN           *string `json:"pin,omitempty"`
	UseBiometrics *bool   `json:"useBiometrics,omitempty"`
}

// VerifyAccessRequest checks a PIN against the session's stored hash.
type VerifyAccessRequest struct {
	SessionID string `json:"sessionId"`
	PIN       string `json:"pin"`
}

// RegisterUserRequest creates a vault owner.
type RegisterUserRequest struct {
	Username string `json:"username"`
}

// PendingPasswordView is a pending item prepared for display on the
// primary device.
type PendingPasswordView struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Category  Category      `json:"category"`
	Password  string        `json:"password"`
	Saved     bool          `json:"saved"`
	Status    PendingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// SessionSummary describes one session in a user's session list.
type SessionSummary struct {
	SessionID  string    `json:"sessionId"`
	DeviceName string    `json:"deviceName"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// VoiceVerdict is the answer of the voice verification service.
type VoiceVerdict struct {
	Verified   bool    `json:"verified"`
	Similarity float64 `json:"similarity"`
}
