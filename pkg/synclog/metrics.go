package synclog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synclog_events_total",
		Help: "Total number of sync events logged, labelled by event type and scope.",
	}, []string{"event_type", "scope"})

	messagesLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synclog_messages_total",
		Help: "Total number of free-text messages logged, labelled by severity.",
	}, []string{"severity"})
)

// InstrumentedLogger counts events and messages before forwarding them
// to a wrapped backend. Wrap NoopLogger to get counters without any
// text output.
type InstrumentedLogger struct {
	next Logger
}

// NewInstrumentedLogger wraps next with Prometheus counters.
func NewInstrumentedLogger(next Logger) *InstrumentedLogger {
	return &InstrumentedLogger{next: next}
}

// LogEvent counts the event by type and scope, then forwards it.
func (l *InstrumentedLogger) LogEvent(event Event, scope string) {
	eventsLogged.WithLabelValues(event.Type.String(), scope).Inc()
	l.next.LogEvent(event, scope)
}

func (l *InstrumentedLogger) count(sev Severity) {
	messagesLogged.WithLabelValues(sev.String()).Inc()
}

// Debug counts and forwards msg.
func (l *InstrumentedLogger) Debug(msg string) {
	l.count(SeverityDebug)
	l.next.Debug(msg)
}

// Info counts and forwards msg.
func (l *InstrumentedLogger) Info(msg string) {
	l.count(SeverityInfo)
	l.next.Info(msg)
}

// Notice counts and forwards msg.
func (l *InstrumentedLogger) Notice(msg string) {
	l.count(SeverityNotice)
	l.next.Notice(msg)
}

// Warning counts and forwards msg.
func (l *InstrumentedLogger) Warning(msg string) {
	l.count(SeverityWarning)
	l.next.Warning(msg)
}

// Error counts and forwards msg.
func (l *InstrumentedLogger) Error(msg string) {
	l.count(SeverityError)
	l.next.Error(msg)
}

// Fault counts and forwards msg.
func (l *InstrumentedLogger) Fault(msg string) {
	l.count(SeverityFault)
	l.next.Fault(msg)
}

// Compile-time interface satisfaction check.
var _ Logger = (*InstrumentedLogger)(nil)
