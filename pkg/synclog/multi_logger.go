package synclog

// MultiLogger sends events and messages to multiple backends.
// Useful when you want both console output (via SlogBackend)
// and metrics (via InstrumentedLogger) simultaneously.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that forwards every call to all
// provided backends, in order.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// LogEvent sends the event to all configured backends.
func (m *MultiLogger) LogEvent(event Event, scope string) {
	for _, l := range m.loggers {
		l.LogEvent(event, scope)
	}
}

// Debug sends msg to all configured backends.
func (m *MultiLogger) Debug(msg string) {
	for _, l := range m.loggers {
		l.Debug(msg)
	}
}

// Info sends msg to all configured backends.
func (m *MultiLogger) Info(msg string) {
	for _, l := range m.loggers {
		l.Info(msg)
	}
}

// Notice sends msg to all configured backends.
func (m *MultiLogger) Notice(msg string) {
	for _, l := range m.loggers {
		l.Notice(msg)
	}
}

// Warning sends msg to all configured backends.
func (m *MultiLogger) Warning(msg string) {
	for _, l := range m.loggers {
		l.Warning(msg)
	}
}

// Error sends msg to all configured backends.
func (m *MultiLogger) Error(msg string) {
	for _, l := range m.loggers {
		l.Error(msg)
	}
}

// Fault sends msg to all configured backends.
func (m *MultiLogger) Fault(msg string) {
	for _, l := range m.loggers {
		l.Fault(msg)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
