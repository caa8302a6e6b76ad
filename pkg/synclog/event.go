package synclog

// ZoneID identifies a logical partition of synced records.
type ZoneID struct {
	ZoneName  string
	OwnerName string
}

// RecordID identifies a single synced record within a zone.
type RecordID struct {
	RecordName string
	ZoneID     ZoneID
}

// ZoneModification describes a zone the engine created or updated.
type ZoneModification struct {
	ZoneID ZoneID
}

// RecordModification describes a record the engine created or updated.
type RecordModification struct {
	RecordID   RecordID
	RecordType string
}

// EventType identifies the sync lifecycle event variant.
type EventType uint8

const (
	// EventStateUpdate indicates the engine persisted new sync state.
	EventStateUpdate EventType = iota
	// EventAccountChange indicates the signed-in user changed.
	EventAccountChange
	// EventFetchedDatabaseChanges indicates zone-level changes arrived.
	EventFetchedDatabaseChanges
	// EventFetchedRecordZoneChanges indicates record-level changes arrived.
	EventFetchedRecordZoneChanges
	// EventSentDatabaseChanges indicates zone-level changes were sent.
	EventSentDatabaseChanges
	// EventSentRecordZoneChanges indicates record-level changes were sent.
	EventSentRecordZoneChanges
	// EventWillFetchChanges indicates a fetch cycle is starting.
	EventWillFetchChanges
	// EventDidFetchChanges indicates a fetch cycle finished.
	EventDidFetchChanges
	// EventWillFetchRecordZoneChanges indicates a per-zone fetch is starting.
	EventWillFetchRecordZoneChanges
	// EventDidFetchRecordZoneChanges indicates a per-zone fetch finished.
	EventDidFetchRecordZoneChanges
	// EventWillSendChanges indicates a send cycle is starting.
	EventWillSendChanges
	// EventDidSendChanges indicates a send cycle finished.
	EventDidSendChanges
	// EventUnknown carries an event variant this package does not know.
	EventUnknown
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventStateUpdate:
		return "stateUpdate"
	case EventAccountChange:
		return "accountChange"
	case EventFetchedDatabaseChanges:
		return "fetchedDatabaseChanges"
	case EventFetchedRecordZoneChanges:
		return "fetchedRecordZoneChanges"
	case EventSentDatabaseChanges:
		return "sentDatabaseChanges"
	case EventSentRecordZoneChanges:
		return "sentRecordZoneChanges"
	case EventWillFetchChanges:
		return "willFetchChanges"
	case EventDidFetchChanges:
		return "didFetchChanges"
	case EventWillFetchRecordZoneChanges:
		return "willFetchRecordZoneChanges"
	case EventDidFetchRecordZoneChanges:
		return "didFetchRecordZoneChanges"
	case EventWillSendChanges:
		return "willSendChanges"
	case EventDidSendChanges:
		return "didSendChanges"
	default:
		return "unknown"
	}
}

// Event represents one sync lifecycle occurrence raised by the sync
// engine. Type selects the variant; at most the matching payload
// pointer is set. Events are consumed synchronously by LogEvent and
// never retained.
type Event struct {
	Type EventType

	// Type-specific payload (set for the matching Type only).
	AccountChange            *AccountChangeEvent
	FetchedDatabaseChanges   *FetchedDatabaseChangesEvent
	FetchedRecordZoneChanges *FetchedRecordZoneChangesEvent
	SentDatabaseChanges      *SentDatabaseChangesEvent
	SentRecordZoneChanges    *SentRecordZoneChangesEvent
	ZoneFetch                *ZoneFetchEvent

	// Description carries the engine's own rendering of an event this
	// package does not recognize (EventUnknown).
	Description string
}

// AccountChangeType distinguishes the kinds of account transitions.
type AccountChangeType uint8

const (
	// AccountSignIn indicates a user signed in.
	AccountSignIn AccountChangeType = iota
	// AccountSignOut indicates a user signed out.
	AccountSignOut
	// AccountSwitch indicates a switch from one user to another.
	AccountSwitch
	// AccountChangeUnknown indicates a transition this package does not know.
	AccountChangeUnknown
)

// AccountChangeEvent describes a change of the signed-in user.
// PreviousUser is set for sign-out and switch, CurrentUser for sign-in
// and switch.
type AccountChangeEvent struct {
	ChangeType   AccountChangeType
	PreviousUser *RecordID
	CurrentUser  *RecordID
}

// ZoneDeletion pairs a deleted zone with the reason the engine reported.
type ZoneDeletion struct {
	ZoneID ZoneID
	Reason DeletionReason
}

// RecordDeletion pairs a deleted record with its record type.
type RecordDeletion struct {
	RecordID   RecordID
	RecordType string
}

// FetchedDatabaseChangesEvent carries zone-level changes received from
// the server.
type FetchedDatabaseChangesEvent struct {
	Modifications []ZoneModification
	Deletions     []ZoneDeletion
}

// FetchedRecordZoneChangesEvent carries record-level changes received
// from the server for one or more zones.
type FetchedRecordZoneChangesEvent struct {
	Modifications []RecordModification
	Deletions     []RecordDeletion
}

// FailedZoneSave pairs a zone modification with the error that rejected it.
type FailedZoneSave struct {
	Zone ZoneModification
	Err  SyncError
}

// FailedZoneDelete pairs a zone deletion with the error that rejected it.
type FailedZoneDelete struct {
	ZoneID ZoneID
	Err    SyncError
}

// FailedRecordSave pairs a record modification with the error that
// rejected it.
type FailedRecordSave struct {
	Record RecordModification
	Err    SyncError
}

// FailedRecordDelete pairs a record deletion with the error that
// rejected it.
type FailedRecordDelete struct {
	RecordID RecordID
	Err      SyncError
}

// SentDatabaseChangesEvent reports the outcome of sending zone-level
// changes to the server.
type SentDatabaseChangesEvent struct {
	SavedZones        []ZoneModification
	FailedZoneSaves   []FailedZoneSave
	DeletedZoneIDs    []ZoneID
	FailedZoneDeletes []FailedZoneDelete
}

// SentRecordZoneChangesEvent reports the outcome of sending
// record-level changes to the server.
type SentRecordZoneChangesEvent struct {
	SavedRecords        []RecordModification
	FailedRecordSaves   []FailedRecordSave
	DeletedRecordIDs    []RecordID
	FailedRecordDeletes []FailedRecordDelete
}

// ZoneFetchEvent reports the start or end of a per-zone record fetch.
// Err is only set for EventDidFetchRecordZoneChanges, and only when the
// fetch failed.
type ZoneFetchEvent struct {
	ZoneID ZoneID
	Err    *SyncError
}
