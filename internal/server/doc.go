// Package server wires and runs the bridge's HTTP server together with its
// background workers.
//
// It owns the process lifecycle: startup, signal handling, and graceful
// shutdown of the HTTP listener followed by the workers.
package server
