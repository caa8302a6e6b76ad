package synclog

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedLoggerCountsEvents(t *testing.T) {
	rec := &recordingLogger{}
	logger := NewInstrumentedLogger(rec)

	counter := eventsLogged.WithLabelValues("stateUpdate", "private")
	before := testutil.ToFloat64(counter)

	logger.LogEvent(Event{Type: EventStateUpdate}, "private")
	logger.LogEvent(Event{Type: EventStateUpdate}, "private")

	assert.Equal(t, 2.0, testutil.ToFloat64(counter)-before)
	require.Len(t, rec.events, 2)
	assert.Equal(t, "stateUpdate/private", rec.events[0])
}

func TestInstrumentedLoggerCountsByScope(t *testing.T) {
	logger := NewInstrumentedLogger(NoopLogger{})

	private := eventsLogged.WithLabelValues("willSendChanges", "private")
	shared := eventsLogged.WithLabelValues("willSendChanges", "shared")
	beforePrivate := testutil.ToFloat64(private)
	beforeShared := testutil.ToFloat64(shared)

	logger.LogEvent(Event{Type: EventWillSendChanges}, "private")

	assert.Equal(t, 1.0, testutil.ToFloat64(private)-beforePrivate)
	assert.Equal(t, 0.0, testutil.ToFloat64(shared)-beforeShared)
}

func TestInstrumentedLoggerCountsMessages(t *testing.T) {
	rec := &recordingLogger{}
	logger := NewInstrumentedLogger(rec)

	counter := messagesLogged.WithLabelValues("fault")
	before := testutil.ToFloat64(counter)

	logger.Fault("broken")

	assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
	assert.Equal(t, []string{"fault:broken"}, rec.messages)
}

func TestInstrumentedLoggerForwardsAllChannels(t *testing.T) {
	rec := &recordingLogger{}
	logger := NewInstrumentedLogger(rec)

	logger.Debug("a")
	logger.Info("b")
	logger.Notice("c")
	logger.Warning("d")
	logger.Error("e")
	logger.Fault("f")

	assert.Equal(t, []string{
		"debug:a", "info:b", "notice:c", "warning:d", "error:e", "fault:f",
	}, rec.messages)
}
