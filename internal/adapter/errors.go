package adapter

import "errors"

var (
	// ErrUpstreamTimeout is returned when every attempt failed at the
	// transport level or timed out.
	ErrUpstreamTimeout = errors.New("upstream service did not answer")

	// ErrUpstreamRejected is returned for a 4xx answer.
	ErrUpstreamRejected = errors.New("upstream service rejected the request")

	// ErrUpstreamUnavailable is returned when the last attempt got a 5xx.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	ErrEmptySample = errors.New("empty voice sample")
)
