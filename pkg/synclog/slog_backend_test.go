package synclog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*SlogBackend, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogBackend(slog.New(handler), "com.example.notes", "sync"), &buf
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogBackendLogsEventAtDebug(t *testing.T) {
	backend, buf := newTestBackend(t)

	backend.LogEvent(Event{
		Type: EventFetchedRecordZoneChanges,
		FetchedRecordZoneChanges: &FetchedRecordZoneChangesEvent{
			Modifications: []RecordModification{
				{RecordID: RecordID{RecordName: "N1"}, RecordType: "Note"},
			},
		},
	}, "private")

	entry := decodeRecord(t, buf)
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "com.example.notes", entry["subsystem"])
	assert.Equal(t, "sync", entry["category"])

	msg, ok := entry["msg"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(msg, "[sync/private] Fetched record zone changes"))
	assert.Contains(t, msg, "\n  ✅ Modified  Note  N1")
}

func TestSlogBackendLogsUnknownEventAtWarning(t *testing.T) {
	backend, buf := newTestBackend(t)

	backend.LogEvent(Event{Type: EventUnknown, Description: "futureEvent"}, "shared")

	entry := decodeRecord(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Contains(t, entry["msg"], "⚠️ Unknown event: futureEvent")
	assert.Contains(t, entry["msg"], "[sync/shared]")
}

func TestSlogBackendScopeInHeader(t *testing.T) {
	backend, buf := newTestBackend(t)

	backend.LogEvent(Event{Type: EventWillSendChanges}, "global")

	entry := decodeRecord(t, buf)
	assert.Equal(t, "[sync/global] Will send changes", entry["msg"])
}

func TestSlogBackendForwardsFreeText(t *testing.T) {
	tests := []struct {
		name      string
		log       func(Logger, string)
		wantLevel string
	}{
		{"debug", func(l Logger, m string) { l.Debug(m) }, "DEBUG"},
		{"info", func(l Logger, m string) { l.Info(m) }, "INFO"},
		{"notice", func(l Logger, m string) { l.Notice(m) }, "INFO+2"},
		{"warning", func(l Logger, m string) { l.Warning(m) }, "WARN"},
		{"error", func(l Logger, m string) { l.Error(m) }, "ERROR"},
		{"fault", func(l Logger, m string) { l.Fault(m) }, "ERROR+4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, buf := newTestBackend(t)

			tt.log(backend, "free text "+tt.name)

			entry := decodeRecord(t, buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			// No formatting, no scope prefix on free-text channels.
			assert.Equal(t, "free text "+tt.name, entry["msg"])
		})
	}
}

func TestBackendsAreSubstitutable(t *testing.T) {
	backend, buf := newTestBackend(t)

	for _, logger := range []Logger{backend, NoopLogger{}} {
		logger.LogEvent(Event{Type: EventStateUpdate}, "private")
		logger.Warning("watch out")
	}

	// Only the active backend touched the sink.
	lines := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1
	assert.Equal(t, 2, lines)
}
