package timeline

import "errors"

// Errors returned in strict mode. Without strict mode every operation is
// total: counts clamp, ranges clamp to the buffer and nothing errors.
var (
	// ErrInvalidCaretRange indicates a caret that does not fit the buffer when
	// the record is applied (start < 0, end < start or end past the buffer).
	ErrInvalidCaretRange = errors.New("invalid caret range")

	// ErrRecordOutOfBounds indicates a record whose applied text no longer fits
	// the buffer when it is reverted.
	ErrRecordOutOfBounds = errors.New("record out of bounds")
)
