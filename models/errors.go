package models

import "errors"

var (
	// ErrInvalidSessionTransition is returned when a session state change is
	// not allowed from its current state.
	ErrInvalidSessionTransition = errors.New("invalid session state transition")

	// ErrInvalidSession is returned when a session violates its state invariant.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidItemTransition is returned when a pending item status change
	// is not allowed from its current status.
	ErrInvalidItemTransition = errors.New("invalid pending item status transition")
)
