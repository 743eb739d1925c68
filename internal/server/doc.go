// Package server runs the optional status endpoint.
//
// The listener is opened when the server is created so that a bad address
// fails startup; serving starts in Run and stops with graceful shutdown when
// its context is cancelled.
package server
