// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the collaborator services the bridge
// calls out to.
//
// The only collaborator today is the voice verification service, reached
// through [VoiceVerifier]. Error values defined in errors.go are mapped from
// HTTP status codes and transport failures by mapHTTPError so callers can use
// [errors.Is] (e.g. [ErrUpstreamTimeout] when every attempt failed).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VoiceVerifier compares a voice sample with the enrolment of a user.
type VoiceVerifier interface {
	// Verify forwards sample for userID and returns the service's verdict.
	// A verdict is returned even when the voice did not match; deciding
	// what counts as a match is up to the caller.
	Verify(ctx context.Context, userID int64, sample []byte) (models.VoiceVerdict, error)
}
