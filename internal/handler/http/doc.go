// Package http implements the HTTP transport layer of the bridge.
//
// It exposes route wiring under /api, request handlers, and middleware.
// Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, response compression and CORS are handled in this package
// before requests are delegated to the service layer.
package http
