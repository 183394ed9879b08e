// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers when reading a request before it
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not the expected JSON
	// document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when a request body cannot be read within
	// its size limit.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrMissingQueryParam is returned when a required query parameter is
	// absent.
	ErrMissingQueryParam = errors.New("missing query parameter")

	// ErrNoCaller is returned when an authenticated route runs without the
	// caller identity in its context.
	ErrNoCaller = errors.New("no caller identity in context")
)
