package synclog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures calls for assertions.
type recordingLogger struct {
	events   []string
	messages []string
}

func (r *recordingLogger) LogEvent(event Event, scope string) {
	r.events = append(r.events, event.Type.String()+"/"+scope)
}
func (r *recordingLogger) Debug(msg string)   { r.messages = append(r.messages, "debug:"+msg) }
func (r *recordingLogger) Info(msg string)    { r.messages = append(r.messages, "info:"+msg) }
func (r *recordingLogger) Notice(msg string)  { r.messages = append(r.messages, "notice:"+msg) }
func (r *recordingLogger) Warning(msg string) { r.messages = append(r.messages, "warning:"+msg) }
func (r *recordingLogger) Error(msg string)   { r.messages = append(r.messages, "error:"+msg) }
func (r *recordingLogger) Fault(msg string)   { r.messages = append(r.messages, "fault:"+msg) }

var _ Logger = (*recordingLogger)(nil)

func TestMultiLoggerFansOut(t *testing.T) {
	first := &recordingLogger{}
	second := &recordingLogger{}
	multi := NewMultiLogger(first, second)

	multi.LogEvent(Event{Type: EventWillFetchChanges}, "private")
	multi.Warning("careful")
	multi.Fault("broken")

	for _, rec := range []*recordingLogger{first, second} {
		require.Len(t, rec.events, 1)
		assert.Equal(t, "willFetchChanges/private", rec.events[0])
		assert.Equal(t, []string{"warning:careful", "fault:broken"}, rec.messages)
	}
}

func TestMultiLoggerWithNoChildren(t *testing.T) {
	multi := NewMultiLogger()

	multi.LogEvent(Event{Type: EventStateUpdate}, "private")
	multi.Info("nobody listening")
}

func TestMultiLoggerForwardsAllChannels(t *testing.T) {
	rec := &recordingLogger{}
	multi := NewMultiLogger(rec)

	multi.Debug("a")
	multi.Info("b")
	multi.Notice("c")
	multi.Warning("d")
	multi.Error("e")
	multi.Fault("f")

	assert.Equal(t, []string{
		"debug:a", "info:b", "notice:c", "warning:d", "error:e", "fault:f",
	}, rec.messages)
}
