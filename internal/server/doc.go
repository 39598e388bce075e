// Package server runs the HTTP transport of the issuer: startup, signal
// handling and graceful shutdown bounded by the configured timeout.
package server
