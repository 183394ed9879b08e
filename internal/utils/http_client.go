package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the bridge to outbound collaborators.
const UserAgent = "go-pass-bridge"

// HTTPClient is a resty client preset for JSON calls to collaborator
// services.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends and accepts JSON
// and identifies itself with [UserAgent].
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &HTTPClient{Client: client}
}
