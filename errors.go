package palesignal

import (
	"fmt"

	"github.com/snarigra/palesignal/date"
)

// ValidationError reports the first field of a candidate entry that fails
// its constraint. An entry carrying a validation error is never persisted.
type ValidationError struct {
	Field  string // serialized field name, e.g. "sleep_hours"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid entry: %s: %s", e.Field, e.Reason)
}

// DuplicateDateError reports an insert for a date that already has an
// entry. The caller can replace the existing entry with ReplaceEntry.
type DuplicateDateError struct {
	Date date.Date
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("entry for %s already exists", e.Date)
}

// StorageError reports that the backing file could not be read, decoded,
// or written. The store never retries on its own.
type StorageError struct {
	Path string
	Op   string // "read", "decode", "write"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: cannot %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
