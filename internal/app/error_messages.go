// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// bridge's HTTP handlers.
//
// The Msg* constants are the fixed response bodies of endpoints that must
// not leak the underlying failure to the caller.
package app

const (
	// MsgNotFound is returned by session authentication when either the
	// user or the session does not exist. The two cases are not told apart.
	MsgNotFound = "not found"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
