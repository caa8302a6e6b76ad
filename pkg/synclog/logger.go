package synclog

import "log/slog"

// Logger is the interface sync engines log through. Implementations
// must be safe for concurrent use; every call is stateless, so no
// synchronization beyond the underlying sink's is required. Calls never
// fail or block from the caller's perspective.
type Logger interface {
	// LogEvent records one sync lifecycle event. scope names the
	// database partition the event concerns (conventionally "private",
	// "shared", or "global").
	LogEvent(event Event, scope string)

	// Free-text severity channels. Messages are forwarded to the sink
	// unformatted, one call per message.
	Debug(msg string)
	Info(msg string)
	Notice(msg string)
	Warning(msg string)
	Error(msg string)
	Fault(msg string)
}

// Severity identifies one of the six free-text channels.
type Severity uint8

const (
	// SeverityDebug is for verbose diagnostics, including rendered events.
	SeverityDebug Severity = iota
	// SeverityInfo is for routine operational messages.
	SeverityInfo
	// SeverityNotice is for normal but significant conditions.
	SeverityNotice
	// SeverityWarning is for abnormal conditions, including unknown events.
	SeverityWarning
	// SeverityError is for failures the caller may act on.
	SeverityError
	// SeverityFault is for faults in the caller's own logic.
	SeverityFault
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Level returns the slog level a severity maps to. Notice and fault
// have no slog built-in and use offsets from the adjacent levels.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityNotice:
		return slog.LevelInfo + 2
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	case SeverityFault:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}

// NoopLogger discards all events and messages. Use when logging is
// disabled: no table is built, no sorting or rendering happens, the
// sink is never touched. Safe for concurrent use and usable as a zero
// value.
type NoopLogger struct{}

// LogEvent discards the event.
func (NoopLogger) LogEvent(Event, string) {}

// Debug discards the message.
func (NoopLogger) Debug(string) {}

// Info discards the message.
func (NoopLogger) Info(string) {}

// Notice discards the message.
func (NoopLogger) Notice(string) {}

// Warning discards the message.
func (NoopLogger) Warning(string) {}

// Error discards the message.
func (NoopLogger) Error(string) {}

// Fault discards the message.
func (NoopLogger) Fault(string) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
