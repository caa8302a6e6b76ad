package synclog

import (
	"context"
	"log/slog"
)

// SlogBackend renders sync events to human-readable text and writes
// them to an slog.Logger. Events are emitted at debug level, except
// events this package does not recognize, which go out at warning
// level. Free-text calls forward at the matching level without any
// formatting.
type SlogBackend struct {
	logger    *slog.Logger
	subsystem string
	category  string
}

// NewSlogBackend creates a backend writing to the given slog.Logger,
// tagged with a subsystem/category label pair (for example
// "com.example.notes" and "sync"). The configuration is immutable
// after construction.
func NewSlogBackend(logger *slog.Logger, subsystem, category string) *SlogBackend {
	return &SlogBackend{logger: logger, subsystem: subsystem, category: category}
}

// LogEvent renders the event and emits it as a single record. The
// header line carries the category tag and the caller's scope label;
// any table lines nest under it, indented by two spaces.
func (b *SlogBackend) LogEvent(event Event, scope string) {
	body, sev := formatEvent(event)
	b.emit(sev, "["+b.category+"/"+scope+"] "+body)
}

func (b *SlogBackend) emit(sev Severity, text string) {
	b.logger.LogAttrs(context.Background(), sev.Level(), text,
		slog.String("subsystem", b.subsystem),
		slog.String("category", b.category),
	)
}

// Debug forwards msg at debug severity.
func (b *SlogBackend) Debug(msg string) { b.emit(SeverityDebug, msg) }

// Info forwards msg at info severity.
func (b *SlogBackend) Info(msg string) { b.emit(SeverityInfo, msg) }

// Notice forwards msg at notice severity.
func (b *SlogBackend) Notice(msg string) { b.emit(SeverityNotice, msg) }

// Warning forwards msg at warning severity.
func (b *SlogBackend) Warning(msg string) { b.emit(SeverityWarning, msg) }

// Error forwards msg at error severity.
func (b *SlogBackend) Error(msg string) { b.emit(SeverityError, msg) }

// Fault forwards msg at fault severity.
func (b *SlogBackend) Fault(msg string) { b.emit(SeverityFault, msg) }

// Compile-time interface satisfaction check.
var _ Logger = (*SlogBackend)(nil)
