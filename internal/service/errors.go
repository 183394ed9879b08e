package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrSessionExpired          = errors.New("session expired")
	ErrSessionNotAuthenticated = errors.New("session is not authenticated")
	ErrSessionAccessDenied     = errors.New("session belongs to another user")

	// ErrReconciliationFailed is returned when the vault write or the queue
	// cleanup of a reconciliation run fails. The queue is left intact when
	// the vault write fails.
	ErrReconciliationFailed = errors.New("reconciliation failed")

	ErrInvalidPIN          = errors.New("invalid pin")
	ErrVoiceNotMatched     = errors.New("voice did not match")
	ErrVoiceNotConfigured  = errors.New("voice verification is not configured")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUnauthorized            = errors.New("unauthorized")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoSessionID = errors.New("no session id provided")
	ErrValidationNoUsername  = errors.New("no username provided")
	ErrValidationNoTitle     = errors.New("no title provided")
	ErrValidationNoPassword  = errors.New("no password provided")
	ErrValidationNoIDs       = errors.New("no pending item ids provided")
	ErrValidationNoKey       = errors.New("no private key provided")
)
