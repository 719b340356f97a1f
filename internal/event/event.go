// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

// Timeline event types.
const (
	TypeUnknown Type = iota

	TypeRecordApplied    // A record was applied (push or redo)
	TypeRecordReverted   // A record was reverted (undo)
	TypeRecordsDiscarded // Inactive records were dropped by a push
	TypeRecordsFolded    // Oldest records were folded into the initial value
	TypeTimelineRestored // A timeline was rebuilt from prior records
	TypeTimelineReset    // All records were cleared
)

// String returns a short name for logging.
func (t Type) String() string {
	switch t {
	case TypeRecordApplied:
		return "record-applied"
	case TypeRecordReverted:
		return "record-reverted"
	case TypeRecordsDiscarded:
		return "records-discarded"
	case TypeRecordsFolded:
		return "records-folded"
	case TypeTimelineRestored:
		return "timeline-restored"
	case TypeTimelineReset:
		return "timeline-reset"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// RecordData is sent with TypeRecordApplied and TypeRecordReverted.
// Record holds a copy of the record after the change; Value is the buffer
// content after the change.
type RecordData struct {
	Index  int
	Record interface{}
	Value  string
}

// DiscardedData is sent with TypeRecordsDiscarded.
type DiscardedData struct {
	Count int
}

// FoldedData is sent with TypeRecordsFolded.
type FoldedData struct {
	Count        int
	InitialValue string
}

// RestoredData is sent with TypeTimelineRestored.
type RestoredData struct {
	Records  int // Number of prior records loaded
	Replayed int // Number of those applied to rebuild the buffer
}

// ResetData is sent with TypeTimelineReset.
type ResetData struct {
	Content string
}
