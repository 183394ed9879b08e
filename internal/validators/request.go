package validators

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-bridge/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldSessionID targets the client-generated session identifier.
	FieldSessionID = "session_id"

	// FieldExpirySeconds targets the optional lifetime of a new session.
	FieldExpirySeconds = "expiry_seconds"

	// FieldUsername targets the vault owner's username.
	FieldUsername = "username"

	// FieldPrivateKey targets the private key handed over by the primary device.
	FieldPrivateKey = "private_key"

	// FieldTitle targets the title of a queued credential.
	FieldTitle = "title"

	// FieldPassword targets the plaintext or sealed secret of a queued credential.
	FieldPassword = "password"

	// FieldScheme targets the optional scheme of a pre-sealed secret.
	FieldScheme = "scheme"

	// FieldPasswordIDs targets the list of pending item ids of a bulk request.
	FieldPasswordIDs = "password_ids"

	// FieldPIN targets the PIN of an access check.
	FieldPIN = "pin"

	// FieldAccessMethod requires at least one of PIN and biometrics to be set.
	FieldAccessMethod = "access_method"
)

// MaxSessionIDLength bounds client-generated session identifiers.
const MaxSessionIDLength = 256

// MaxExpirySeconds is the largest session lifetime that still fits in a
// time.Duration.
const MaxExpirySeconds = math.MaxInt64 / int64(time.Second)

// RequestValidator validates the request models accepted by the bridge API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the request type. Without fields every field
// relevant to the type is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSessionRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID, FieldExpirySeconds)
	case *models.CreateSessionRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID, FieldExpirySeconds)

	case models.AuthenticateRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID, FieldUsername, FieldPrivateKey)
	case *models.AuthenticateRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID, FieldUsername, FieldPrivateKey)

	case models.SessionIDRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID)
	case *models.SessionIDRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID)

	case models.EnqueueRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID, FieldTitle, FieldPassword, FieldScheme)
	case *models.EnqueueRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID, FieldTitle, FieldPassword, FieldScheme)

	case models.MarkSavedRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID, FieldPasswordIDs)
	case *models.MarkSavedRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID, FieldPasswordIDs)

	case models.ProcessRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID)
	case *models.ProcessRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID)

	case models.AccessMethodRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID, FieldAccessMethod)
	case *models.AccessMethodRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID, FieldAccessMethod)

	case models.VerifyAccessRequest:
		return v.validate(value.SessionID, value, fields, FieldSessionID, FieldPIN)
	case *models.VerifyAccessRequest:
		return v.validate(value.SessionID, *value, fields, FieldSessionID, FieldPIN)

	case models.RegisterUserRequest:
		return v.validate("", value, fields, FieldUsername)
	case *models.RegisterUserRequest:
		return v.validate("", *value, fields, FieldUsername)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validate(sessionID string, obj any, fields []string, defaults ...string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldSessionID:
			err = validateSessionID(sessionID)
		default:
			err = validateField(obj, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrEmptySessionID
	}
	if len(sessionID) > MaxSessionIDLength {
		return ErrSessionIDTooLong
	}
	return nil
}

func validateField(obj any, field string) error {
	switch field {
	case FieldExpirySeconds:
		req, ok := obj.(models.CreateSessionRequest)
		switch {
		case !ok:
		case req.ExpirySeconds < 0:
			return ErrNegativeExpiry
		case req.ExpirySeconds > MaxExpirySeconds:
			return ErrExpiryTooLarge
		}
	case FieldUsername:
		if strings.TrimSpace(usernameOf(obj)) == "" {
			return ErrEmptyUsername
		}
	case FieldPrivateKey:
		if req, ok := obj.(models.AuthenticateRequest); ok && req.PrivateKey == "" {
			return ErrEmptyPrivateKey
		}
	case FieldTitle:
		if req, ok := obj.(models.EnqueueRequest); ok && strings.TrimSpace(req.Title) == "" {
			return ErrEmptyTitle
		}
	case FieldPassword:
		if req, ok := obj.(models.EnqueueRequest); ok && req.Password == "" {
			return ErrEmptyPassword
		}
	case FieldScheme:
		if req, ok := obj.(models.EnqueueRequest); ok && req.Scheme != "" && !req.Scheme.IsValid() {
			return ErrUnknownScheme
		}
	case FieldPasswordIDs:
		if req, ok := obj.(models.MarkSavedRequest); ok && len(req.PasswordIDs) == 0 {
			return ErrEmptyIDs
		}
	case FieldPIN:
		if req, ok := obj.(models.VerifyAccessRequest); ok && req.PIN == "" {
			return ErrEmptyPIN
		}
	case FieldAccessMethod:
		if req, ok := obj.(models.AccessMethodRequest); ok && req.PIN == nil && req.UseBiometrics == nil {
			return ErrNoFieldsToUpdate
		}
	default:
		return ErrUnknownField
	}

	return nil
}

func usernameOf(obj any) string {
	switch req := obj.(type) {
	case models.AuthenticateRequest:
		return req.Username
	case models.RegisterUserRequest:
		return req.Username
	case models.ProcessRequest:
		return req.Username
	default:
		return ""
	}
}
