// Package logging provides a minimal logging interface and adapters for
// the field-mesh core.
//
// The Logger interface defines the standard structured logging methods
// (Debug, Info, Warn, Error) that builders and I/O code use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's log/slog
//   - NoOpLogger for silent operation (the library default)
//
// The design intentionally keeps the interface minimal so users can plug
// any structured logger without vendor lock-in. Library packages never
// log on their own initiative; a logger is always injected through
// functional options.
package logging
