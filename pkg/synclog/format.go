package synclog

import "fmt"

// Action tags shown in the first table column. The leading symbols keep
// the lexicographic sort grouping successes before deletions before
// failures.
const (
	actionModified     = "✅ Modified"
	actionSaved        = "✅ Saved"
	actionDeleted      = "🗑️ Deleted"
	actionFailedSave   = "🛑 Failed save"
	actionFailedDelete = "🛑 Failed delete"
	actionDeleteFailed = "🛑 Delete failed"
)

// formatEvent renders one event as a header line plus an optional
// indented table, and selects the severity it should be emitted at.
// Unrecognized events come back at warning severity so they stay
// visible; everything else is debug diagnostics.
func formatEvent(event Event) (string, Severity) {
	switch event.Type {
	case EventStateUpdate:
		return "State update", SeverityDebug
	case EventAccountChange:
		return formatAccountChange(event.AccountChange), SeverityDebug
	case EventFetchedDatabaseChanges:
		return withTable("Fetched database changes", fetchedDatabaseTable(event.FetchedDatabaseChanges)), SeverityDebug
	case EventFetchedRecordZoneChanges:
		return withTable("Fetched record zone changes", fetchedRecordZoneTable(event.FetchedRecordZoneChanges)), SeverityDebug
	case EventSentDatabaseChanges:
		return withTable("Sent database changes", sentDatabaseTable(event.SentDatabaseChanges)), SeverityDebug
	case EventSentRecordZoneChanges:
		return withTable("Sent record zone changes", sentRecordZoneTable(event.SentRecordZoneChanges)), SeverityDebug
	case EventWillFetchChanges:
		return "Will fetch changes", SeverityDebug
	case EventDidFetchChanges:
		return "Did fetch changes", SeverityDebug
	case EventWillFetchRecordZoneChanges:
		return "Will fetch record zone changes: " + zoneFetchLabel(event.ZoneFetch), SeverityDebug
	case EventDidFetchRecordZoneChanges:
		text := "Did fetch record zone changes: " + zoneFetchLabel(event.ZoneFetch)
		if event.ZoneFetch != nil && event.ZoneFetch.Err != nil {
			text += " ❌ " + event.ZoneFetch.Err.Label()
		}
		return text, SeverityDebug
	case EventWillSendChanges:
		return "Will send changes", SeverityDebug
	case EventDidSendChanges:
		return "Did send changes", SeverityDebug
	default:
		// Unknown events are diagnostically significant: surface them
		// instead of dropping them.
		return "⚠️ Unknown event: " + event.Description, SeverityWarning
	}
}

// withTable nests a rendered table under its header line. Events whose
// change sets are empty collapse to the bare header.
func withTable(header, table string) string {
	if table == "" {
		return header
	}
	return header + "\n" + table
}

// sortRows applies the display ordering: rows group by
// (action, recordType, recordName) when a recordType column exists,
// otherwise by action alone; tables without an action column keep
// insertion order.
func sortRows(t *eventTable) {
	if t.column("recordType") != nil {
		t.sortBy("action", "recordType", "recordName")
	} else if t.column("action") != nil {
		t.sortBy("action")
	}
}

func fetchedDatabaseTable(e *FetchedDatabaseChangesEvent) string {
	if e == nil {
		return ""
	}
	var action, zoneName, ownerName, reason []string
	for _, m := range e.Modifications {
		action = append(action, actionModified)
		zoneName = append(zoneName, m.ZoneID.ZoneName)
		ownerName = append(ownerName, m.ZoneID.OwnerName)
		// Keep column arity consistent when deletion rows carry reasons.
		if len(e.Deletions) > 0 {
			reason = append(reason, "")
		}
	}
	for _, d := range e.Deletions {
		action = append(action, actionDeleted)
		zoneName = append(zoneName, d.ZoneID.ZoneName)
		ownerName = append(ownerName, d.ZoneID.OwnerName)
		reason = append(reason, d.Reason.Label())
	}

	t := newEventTable()
	t.addColumn("action", action)
	t.addColumn("zoneName", zoneName)
	t.addColumn("ownerName", ownerName)
	t.addColumn("reason", reason)
	sortRows(t)
	return t.render()
}

func fetchedRecordZoneTable(e *FetchedRecordZoneChangesEvent) string {
	if e == nil {
		return ""
	}
	var action, recordType, recordName []string
	for _, m := range e.Modifications {
		action = append(action, actionModified)
		recordType = append(recordType, m.RecordType)
		recordName = append(recordName, m.RecordID.RecordName)
	}
	for _, d := range e.Deletions {
		action = append(action, actionDeleted)
		recordType = append(recordType, d.RecordType)
		recordName = append(recordName, d.RecordID.RecordName)
	}

	t := newEventTable()
	t.addColumn("action", action)
	t.addColumn("recordType", recordType)
	t.addColumn("recordName", recordName)
	sortRows(t)
	return t.render()
}

func sentDatabaseTable(e *SentDatabaseChangesEvent) string {
	if e == nil {
		return ""
	}
	hasFailures := len(e.FailedZoneSaves) > 0 || len(e.FailedZoneDeletes) > 0

	var action, zoneName, ownerName, errLabel []string
	for _, z := range e.SavedZones {
		action = append(action, actionSaved)
		zoneName = append(zoneName, z.ZoneID.ZoneName)
		ownerName = append(ownerName, z.ZoneID.OwnerName)
		if hasFailures {
			errLabel = append(errLabel, "")
		}
	}
	for _, f := range e.FailedZoneSaves {
		action = append(action, actionFailedSave)
		zoneName = append(zoneName, f.Zone.ZoneID.ZoneName)
		ownerName = append(ownerName, f.Zone.ZoneID.OwnerName)
		errLabel = append(errLabel, f.Err.Label())
	}
	for _, id := range e.DeletedZoneIDs {
		action = append(action, actionDeleted)
		zoneName = append(zoneName, id.ZoneName)
		ownerName = append(ownerName, id.OwnerName)
		if hasFailures {
			errLabel = append(errLabel, "")
		}
	}
	for _, f := range e.FailedZoneDeletes {
		action = append(action, actionFailedDelete)
		zoneName = append(zoneName, f.ZoneID.ZoneName)
		ownerName = append(ownerName, f.ZoneID.OwnerName)
		errLabel = append(errLabel, f.Err.Label())
	}

	t := newEventTable()
	t.addColumn("action", action)
	t.addColumn("zoneName", zoneName)
	t.addColumn("ownerName", ownerName)
	t.addColumn("error", errLabel)
	sortRows(t)
	return t.render()
}

func sentRecordZoneTable(e *SentRecordZoneChangesEvent) string {
	if e == nil {
		return ""
	}
	hasFailures := len(e.FailedRecordSaves) > 0 || len(e.FailedRecordDeletes) > 0
	// Deleted records carry no type; the column exists only when a save
	// group contributes real values.
	hasTypes := len(e.SavedRecords) > 0 || len(e.FailedRecordSaves) > 0

	var action, recordType, recordName, errLabel []string
	for _, r := range e.SavedRecords {
		action = append(action, actionSaved)
		recordType = append(recordType, r.RecordType)
		recordName = append(recordName, r.RecordID.RecordName)
		if hasFailures {
			errLabel = append(errLabel, "")
		}
	}
	for _, f := range e.FailedRecordSaves {
		action = append(action, actionFailedSave)
		recordType = append(recordType, f.Record.RecordType)
		recordName = append(recordName, f.Record.RecordID.RecordName)
		errLabel = append(errLabel, f.Err.Label())
	}
	for _, id := range e.DeletedRecordIDs {
		action = append(action, actionDeleted)
		if hasTypes {
			recordType = append(recordType, "")
		}
		recordName = append(recordName, id.RecordName)
		if hasFailures {
			errLabel = append(errLabel, "")
		}
	}
	for _, f := range e.FailedRecordDeletes {
		action = append(action, actionDeleteFailed)
		if hasTypes {
			recordType = append(recordType, "")
		}
		recordName = append(recordName, f.RecordID.RecordName)
		errLabel = append(errLabel, f.Err.Label())
	}

	t := newEventTable()
	t.addColumn("action", action)
	t.addColumn("recordType", recordType)
	t.addColumn("recordName", recordName)
	t.addColumn("error", errLabel)
	sortRows(t)
	return t.render()
}

func formatAccountChange(e *AccountChangeEvent) string {
	const header = "Account change"
	if e == nil {
		return header
	}
	switch e.ChangeType {
	case AccountSignIn:
		return header + "\n" + tableIndent + "Current user: " + userLabel(e.CurrentUser)
	case AccountSignOut:
		return header + "\n" + tableIndent + "Previous user: " + userLabel(e.PreviousUser)
	case AccountSwitch:
		return header +
			"\n" + tableIndent + "Previous user: " + userLabel(e.PreviousUser) +
			"\n" + tableIndent + "Current user: " + userLabel(e.CurrentUser)
	default:
		return header + "\n" + tableIndent + "(unrecognized account change)"
	}
}

// userLabel renders a user record identity as recordName.ownerName.zoneName.
func userLabel(id *RecordID) string {
	if id == nil {
		return "(unknown)"
	}
	return fmt.Sprintf("%s.%s.%s", id.RecordName, id.ZoneID.OwnerName, id.ZoneID.ZoneName)
}

// zoneFetchLabel renders the zone identity of a per-zone fetch event.
func zoneFetchLabel(e *ZoneFetchEvent) string {
	if e == nil {
		return "(unknown zone)"
	}
	return e.ZoneID.ZoneName + "." + e.ZoneID.OwnerName
}
