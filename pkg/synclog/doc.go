// Package synclog provides structured event logging for sync engines.
//
// This package defines the Logger interface and Event types for
// recording sync lifecycle events (account changes, fetch/send cycles,
// per-record and per-zone outcomes) as human-readable diagnostics.
// Change-set events render as aligned, sorted tables nested under a
// header line; lifecycle markers render as single lines.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: render events to slog
//	logger := synclog.NewSlogBackend(slog.Default(), "com.example.notes", "sync")
//
//	// When logging is off: discard everything without rendering
//	logger = synclog.NoopLogger{}
//
//	// Console output plus Prometheus counters
//	logger = synclog.NewMultiLogger(
//	    synclog.NewSlogBackend(slog.Default(), "com.example.notes", "sync"),
//	    synclog.NewInstrumentedLogger(synclog.NoopLogger{}),
//	)
//
// The sync engine then raises one LogEvent call per lifecycle
// occurrence, tagged with the database partition it concerns:
//
//	logger.LogEvent(synclog.Event{Type: synclog.EventWillFetchChanges}, "private")
//
// # Forward Compatibility
//
// The engine's event and error vocabularies grow over time. Unknown
// error codes and deletion reasons resolve to placeholder labels, and
// unknown event variants are logged at warning severity with the
// engine's own description; nothing in this package fails on values it
// does not recognize.
package synclog
