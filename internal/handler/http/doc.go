// Package http serves the read-only status endpoint of a running memfill.
//
// Every request gets a trace id (X-Trace-ID, reused when the caller sends
// one) and an access log line. Handlers read from a [StatusSource] and never
// change the allocation.
package http
