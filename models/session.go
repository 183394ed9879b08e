// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SessionState is the persisted lifecycle state of a [Session].
//
// Expired is never stored: it is derived from ExpiresAt by [Session.StateAt].
// A deleted session has no row at all.
type SessionState string

const (
	SessionCreated       SessionState = "created"
	SessionAuthenticated SessionState = "authenticated"
	SessionExpired       SessionState = "expired"
)

// DefaultDeviceName is bound to a session when the primary device does not
// report its own name.
const DefaultDeviceName = "Mobile Device"

// Session bridges the unauthenticated edge device and the primary device.
//
// A created session has no token and no user. An authenticated session has
// token, user id and username set. The private key is never a field here:
// it lives only in the injected key cache.
type Session struct {
	SessionID string       `json:"sessionId"`
	State     SessionState `json:"state"`

	Token      string `json:"token,omitempty"`
	UserID     int64  `json:"userId,omitempty"`
	Username   string `json:"username,omitempty"`
	DeviceName string `json:"deviceName,omitempty"`

	AccessPIN     string `json:"-"`
	UseBiometrics bool   `json:"useBiometrics"`

	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewSession returns a session in the created state expiring after ttl.
func NewSession(sessionID string, now time.Time, ttl time.Duration) Session {
	return Session{
		SessionID: sessionID,
		State:     SessionCreated,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// StateAt returns the effective state of the session at now.
func (s Session) StateAt(now time.Time) SessionState {
	if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return SessionExpired
	}
	return s.State
}

// IsAuthenticated reports whether the session has been bound to a user.
func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated
}

// Authenticate binds the session to a user and a freshly issued token.
//
// Both created and authenticated sessions accept the transition; the second
// case is a repeated authentication from the primary device.
func (s *Session) Authenticate(token string, userID int64, username, deviceName string, now time.Time) error {
	switch s.StateAt(now) {
	case SessionCreated, SessionAuthenticated:
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidSessionTransition, s.StateAt(now), SessionAuthenticated)
	}
	if token == "" || userID == 0 || username == "" {
		return fmt.Errorf("%w: token, user id and username are required", ErrInvalidSessionTransition)
	}
	if deviceName == "" {
		deviceName = DefaultDeviceName
	}

	s.State = SessionAuthenticated
	s.Token = token
	s.UserID = userID
	s.Username = username
	s.DeviceName = deviceName
	return nil
}

// Validate checks the state invariant of the session.
func (s Session) Validate() error {
	switch s.State {
	case SessionCreated:
		if s.Token != "" || s.UserID != 0 {
			return fmt.Errorf("%w: created session carries identity", ErrInvalidSession)
		}
	case SessionAuthenticated:
		if s.Token == "" || s.UserID == 0 || s.Username == "" {
			return fmt.Errorf("%w: authenticated session misses identity", ErrInvalidSession)
		}
	default:
		return fmt.Errorf("%w: unknown state %q", ErrInvalidSession, s.State)
	}
	return nil
}

// QueueKey returns the secret new pending items are encrypted with and
// where it came from.
func (s Session) QueueKey() (string, KeySource) {
	if s.IsAuthenticated() && s.Token != "" {
		return s.Token, KeySourceToken
	}
	return s.SessionID, KeySourceSession
}

// Keys returns the secrets that may have encrypted the session's pending
// items, as held by the session at this moment.
func (s Session) Keys() SessionKeys {
	return SessionKeys{SessionID: s.SessionID, Token: s.Token}
}

// SessionKeys are the decode secrets of a session's pending queue.
// PreviousToken is set only while a rebound session drains items sealed
// under the token it replaced.
type SessionKeys struct {
	SessionID     string
	Token         string
	PreviousToken string
}

// For returns the secret matching source.
func (k SessionKeys) For(source KeySource) string {
	if source == KeySourceToken {
		return k.Token
	}
	return k.SessionID
}

// TokenCandidates lists the bearer tokens to try for a token-sealed payload,
// current token first.
func (k SessionKeys) TokenCandidates() []string {
	candidates := make([]string, 0, 2)
	for _, token := range []string{k.Token, k.PreviousToken} {
		if token != "" {
			candidates = append(candidates, token)
		}
	}
	return candidates
}

// Candidates lists the secrets to try for an untagged payload, tokens first.
func (k SessionKeys) Candidates() []string {
	candidates := k.TokenCandidates()
	if k.SessionID != "" {
		candidates = append(candidates, k.SessionID)
	}
	return candidates
}
