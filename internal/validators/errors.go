package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySessionID   = errors.New("session id is required")
	ErrSessionIDTooLong = errors.New("session id is too long")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPrivateKey  = errors.New("private key is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrUnknownScheme    = errors.New("unknown encryption scheme")
	ErrNegativeExpiry   = errors.New("expiry cannot be negative")
	ErrExpiryTooLarge   = errors.New("expiry is too large")
	ErrEmptyIDs         = errors.New("IDs list cannot be empty")
	ErrEmptyPIN         = errors.New("pin is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
