// Package trace captures bus transactions for debugging and offline
// analysis.
//
// Adapters emit one Event per bus transaction (register read/write, raw
// transfer, presence probe) to a Logger. Loggers are optional everywhere:
// pass nil or NoopLogger to disable capture.
//
// Events are encoded as a CBOR stream with integer keys, which keeps capture
// files compact when logging every transaction of a long-running session.
// FileLogger appends events to such a file and Reader iterates them back,
// optionally filtered by session, address, direction or time window.
// SlogAdapter bridges events into log/slog for console output during
// development.
package trace
