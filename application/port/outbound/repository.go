package outbound

import "errors"

// Errors returned by every repository adapter. Driver errors are wrapped so
// callers can match them with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("record already exists")
	ErrReferenceViolation = errors.New("record references missing data or is still referenced")
)
