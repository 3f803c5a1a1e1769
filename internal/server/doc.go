// Package server owns the lifecycle of the inbound transport: construction
// from configuration, blocking run, and graceful shutdown on termination
// signals.
package server
