package synclog

import "fmt"

// ErrorCode is the stable failure code the sync engine reports for a
// rejected zone or record operation. The vocabulary grows across engine
// versions; codes outside the known set still resolve to a placeholder
// label.
type ErrorCode int

const (
	// CodeInternalError indicates a nonrecoverable server-side error.
	CodeInternalError ErrorCode = iota + 1
	// CodePartialFailure indicates some items in a batch failed.
	CodePartialFailure
	// CodeNetworkUnavailable indicates the network is not reachable.
	CodeNetworkUnavailable
	// CodeNetworkFailure indicates the network is available but the
	// operation failed.
	CodeNetworkFailure
	// CodeBadContainer indicates an unknown or unauthorized container.
	CodeBadContainer
	// CodeServiceUnavailable indicates the service is not available.
	CodeServiceUnavailable
	// CodeRequestRateLimited indicates the client was asked to retry later.
	CodeRequestRateLimited
	// CodeNotAuthenticated indicates no signed-in account.
	CodeNotAuthenticated
	// CodePermissionFailure indicates insufficient permission.
	CodePermissionFailure
	// CodeUnknownItem indicates the referenced item does not exist.
	CodeUnknownItem
	// CodeInvalidArguments indicates a malformed request.
	CodeInvalidArguments
	// CodeServerRecordChanged indicates a record conflict with the
	// server copy.
	CodeServerRecordChanged
	// CodeServerRejectedRequest indicates the server refused the request.
	CodeServerRejectedRequest
	// CodeIncompatibleVersion indicates the client version is too old.
	CodeIncompatibleVersion
	// CodeConstraintViolation indicates a uniqueness constraint failed.
	CodeConstraintViolation
	// CodeOperationCancelled indicates the operation was cancelled.
	CodeOperationCancelled
	// CodeChangeTokenExpired indicates a stale change token.
	CodeChangeTokenExpired
	// CodeBatchRequestFailed indicates an item failed because another
	// item in the same atomic batch failed.
	CodeBatchRequestFailed
	// CodeZoneBusy indicates the zone is too busy to handle the request.
	CodeZoneBusy
	// CodeQuotaExceeded indicates the user ran out of storage quota.
	CodeQuotaExceeded
	// CodeZoneNotFound indicates the target zone does not exist.
	CodeZoneNotFound
	// CodeLimitExceeded indicates the request was too large.
	CodeLimitExceeded
	// CodeUserDeletedZone indicates the user deleted the zone's data.
	CodeUserDeletedZone
	// CodeAccountTemporarilyUnavailable indicates the account needs
	// attention before syncing can resume.
	CodeAccountTemporarilyUnavailable
)

// Label returns a short descriptive name for the code. Codes outside
// the known set resolve to a stable placeholder so that new upstream
// codes never break rendering.
func (c ErrorCode) Label() string {
	switch c {
	case CodeInternalError:
		return "internalError"
	case CodePartialFailure:
		return "partialFailure"
	case CodeNetworkUnavailable:
		return "networkUnavailable"
	case CodeNetworkFailure:
		return "networkFailure"
	case CodeBadContainer:
		return "badContainer"
	case CodeServiceUnavailable:
		return "serviceUnavailable"
	case CodeRequestRateLimited:
		return "requestRateLimited"
	case CodeNotAuthenticated:
		return "notAuthenticated"
	case CodePermissionFailure:
		return "permissionFailure"
	case CodeUnknownItem:
		return "unknownItem"
	case CodeInvalidArguments:
		return "invalidArguments"
	case CodeServerRecordChanged:
		return "serverRecordChanged"
	case CodeServerRejectedRequest:
		return "serverRejectedRequest"
	case CodeIncompatibleVersion:
		return "incompatibleVersion"
	case CodeConstraintViolation:
		return "constraintViolation"
	case CodeOperationCancelled:
		return "operationCancelled"
	case CodeChangeTokenExpired:
		return "changeTokenExpired"
	case CodeBatchRequestFailed:
		return "batchRequestFailed"
	case CodeZoneBusy:
		return "zoneBusy"
	case CodeQuotaExceeded:
		return "quotaExceeded"
	case CodeZoneNotFound:
		return "zoneNotFound"
	case CodeLimitExceeded:
		return "limitExceeded"
	case CodeUserDeletedZone:
		return "userDeletedZone"
	case CodeAccountTemporarilyUnavailable:
		return "accountTemporarilyUnavailable"
	default:
		return "(unknown error)"
	}
}

// SyncError is the engine-reported failure for a single zone or record
// operation. Code is stable across engine versions; SubCode carries an
// optional service-specific detail number.
type SyncError struct {
	Code    ErrorCode
	SubCode *int
}

// Label renders the code label plus the sub-code when present,
// e.g. "networkFailure (42)".
func (e SyncError) Label() string {
	if e.SubCode != nil {
		return fmt.Sprintf("%s (%d)", e.Code.Label(), *e.SubCode)
	}
	return e.Code.Label()
}

// Error implements the error interface.
func (e SyncError) Error() string {
	return e.Label()
}

// DeletionReason explains why the server deleted a zone.
type DeletionReason int

const (
	// ReasonDeleted indicates an ordinary deletion.
	ReasonDeleted DeletionReason = iota
	// ReasonPurged indicates the zone was purged from the server.
	ReasonPurged
	// ReasonEncryptedDataReset indicates the user reset their
	// encrypted data.
	ReasonEncryptedDataReset
)

// Label returns a short descriptive name for the reason. Reasons
// outside the known set resolve to a placeholder carrying the raw
// value.
func (r DeletionReason) Label() string {
	switch r {
	case ReasonDeleted:
		return "deleted"
	case ReasonPurged:
		return "purged"
	case ReasonEncryptedDataReset:
		return "encryptedDataReset"
	default:
		return fmt.Sprintf("(unknown reason: %d)", int(r))
	}
}
