// Command synclog-example demonstrates the sync event logging backends.
//
// It synthesizes one full sync lifecycle (account sign-in, a fetch
// cycle, a send cycle with failures, and an unrecognized event) and
// logs it through a configured backend.
//
// Usage:
//
//	synclog-example [flags]
//
// Flags:
//
//	-config string      YAML configuration file path
//	-disabled           Use the disabled (no-op) backend
//	-log-level string   Log level: debug, info, warn, error (default "debug")
//	-metrics            Wrap the backend with Prometheus counters
//
// Examples:
//
//	# Log the demo lifecycle to stdout
//	synclog-example
//
//	# Same, driven by a config file
//	synclog-example -config example.yaml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/zonesync-protocol/zonesync-go/pkg/synclog"
)

// Config holds the example configuration.
type Config struct {
	Disabled  bool   `yaml:"disabled"`
	Metrics   bool   `yaml:"metrics"`
	LogLevel  string `yaml:"log_level"`
	Subsystem string `yaml:"subsystem"`
	Category  string `yaml:"category"`
}

func main() {
	cfg := Config{
		LogLevel:  "debug",
		Subsystem: "com.zonesync.example",
		Category:  "sync",
	}

	configPath := flag.String("config", "", "YAML configuration file path")
	flag.BoolVar(&cfg.Disabled, "disabled", cfg.Disabled, "use the disabled (no-op) backend")
	flag.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "wrap the backend with Prometheus counters")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logging: %v\n", err)
		os.Exit(1)
	}

	runLifecycle(logger)
}

// loadConfig overlays settings from a YAML file onto cfg.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func buildLogger(cfg Config) (synclog.Logger, error) {
	var logger synclog.Logger
	if cfg.Disabled {
		logger = synclog.NoopLogger{}
	} else {
		level, err := parseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		logger = synclog.NewSlogBackend(slog.New(handler), cfg.Subsystem, cfg.Category)
	}
	if cfg.Metrics {
		logger = synclog.NewInstrumentedLogger(logger)
	}
	return logger, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}

// runLifecycle drives a synthetic sync session through the backend.
func runLifecycle(logger synclog.Logger) {
	owner := "_defaultOwner"
	notes := synclog.ZoneID{ZoneName: "Notes", OwnerName: owner}
	archive := synclog.ZoneID{ZoneName: "Archive", OwnerName: owner}
	user := &synclog.RecordID{
		RecordName: "_" + uuid.NewString(),
		ZoneID:     synclog.ZoneID{ZoneName: "_defaultZone", OwnerName: owner},
	}

	logger.Info("starting demo sync session")

	logger.LogEvent(synclog.Event{
		Type:          synclog.EventAccountChange,
		AccountChange: &synclog.AccountChangeEvent{ChangeType: synclog.AccountSignIn, CurrentUser: user},
	}, "private")

	logger.LogEvent(synclog.Event{Type: synclog.EventWillFetchChanges}, "private")
	logger.LogEvent(synclog.Event{
		Type: synclog.EventFetchedDatabaseChanges,
		FetchedDatabaseChanges: &synclog.FetchedDatabaseChangesEvent{
			Modifications: []synclog.ZoneModification{{ZoneID: notes}},
			Deletions:     []synclog.ZoneDeletion{{ZoneID: archive, Reason: synclog.ReasonPurged}},
		},
	}, "private")
	logger.LogEvent(synclog.Event{
		Type:      synclog.EventWillFetchRecordZoneChanges,
		ZoneFetch: &synclog.ZoneFetchEvent{ZoneID: notes},
	}, "private")
	logger.LogEvent(synclog.Event{
		Type: synclog.EventFetchedRecordZoneChanges,
		FetchedRecordZoneChanges: &synclog.FetchedRecordZoneChangesEvent{
			Modifications: []synclog.RecordModification{
				{RecordID: synclog.RecordID{RecordName: uuid.NewString(), ZoneID: notes}, RecordType: "Note"},
				{RecordID: synclog.RecordID{RecordName: uuid.NewString(), ZoneID: notes}, RecordType: "Attachment"},
			},
			Deletions: []synclog.RecordDeletion{
				{RecordID: synclog.RecordID{RecordName: uuid.NewString(), ZoneID: notes}, RecordType: "Note"},
			},
		},
	}, "private")
	logger.LogEvent(synclog.Event{
		Type:      synclog.EventDidFetchRecordZoneChanges,
		ZoneFetch: &synclog.ZoneFetchEvent{ZoneID: notes},
	}, "private")
	logger.LogEvent(synclog.Event{Type: synclog.EventDidFetchChanges}, "private")

	logger.LogEvent(synclog.Event{Type: synclog.EventWillSendChanges}, "private")
	subCode := 503
	logger.LogEvent(synclog.Event{
		Type: synclog.EventSentRecordZoneChanges,
		SentRecordZoneChanges: &synclog.SentRecordZoneChangesEvent{
			SavedRecords: []synclog.RecordModification{
				{RecordID: synclog.RecordID{RecordName: uuid.NewString(), ZoneID: notes}, RecordType: "Note"},
			},
			FailedRecordSaves: []synclog.FailedRecordSave{
				{
					Record: synclog.RecordModification{RecordID: synclog.RecordID{RecordName: uuid.NewString(), ZoneID: notes}, RecordType: "Note"},
					Err:    synclog.SyncError{Code: synclog.CodeZoneBusy, SubCode: &subCode},
				},
			},
			DeletedRecordIDs: []synclog.RecordID{
				{RecordName: uuid.NewString(), ZoneID: notes},
			},
		},
	}, "private")
	logger.LogEvent(synclog.Event{Type: synclog.EventDidSendChanges}, "private")

	logger.LogEvent(synclog.Event{Type: synclog.EventStateUpdate}, "private")
	logger.LogEvent(synclog.Event{
		Type:        synclog.EventUnknown,
		Description: "futureEvent(payload: 7)",
	}, "private")

	logger.Notice("demo sync session complete")
}
