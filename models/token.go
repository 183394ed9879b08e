package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token issued for an authenticated session.
//
// SignedString holds the compact form sent to clients. UserID and Username
// are parsed copies of the "sub" and "username" claims.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Username is carried as a private claim so handlers can compare the
	// caller with query parameters without a user lookup.
	Username string `json:"username,omitempty"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
