// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound bridge requests before they reach the
// session and pending-queue services.
//
// A Validator is scoped with field names so one request type can be checked
// differently per operation, e.g. a session id alone for a status poll and
// the full identity for authentication.
package validators

import "context"

// Validator validates a request value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
