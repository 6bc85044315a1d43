package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Read when no value is stored in the slot
var ErrNotFound = errors.New("credential not found")

// Slot is a single keyed credential record with read/write/clear semantics.
// Each state machine owns exactly one slot; no other component writes to it.
type Slot interface {
	// Read returns the stored value, or ErrNotFound if the slot is empty
	Read() (string, error)
	// Write stores the value, replacing any previous one
	Write(value string) error
	// Clear removes the stored value. Clearing an empty slot is not an error.
	Clear() error
}

// DecodeError indicates a stored value exists but could not be decoded.
// Callers typically treat a decode error as "absent" and clear the slot.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode stored record %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
