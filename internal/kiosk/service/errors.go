package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID reports an id outside the sensor bank's range.
	ErrInvalidID = errors.New("service: id out of range")

	// ErrNameTooShort reports a display name under the minimum length.
	ErrNameTooShort = errors.New("service: name too short")

	// ErrDuplicateName reports a name collision under trimmed
	// case-insensitive comparison.
	ErrDuplicateName = errors.New("service: name already registered")

	// ErrNoSession reports a finalize with no confirmed enrollment
	// pending (never confirmed, already consumed, or expired).
	ErrNoSession = errors.New("service: no confirmed enrollment session")

	// ErrSessionMismatch reports a finalize whose id does not match
	// the session's candidate id (two enrollment windows racing).
	ErrSessionMismatch = errors.New("service: id does not match pending enrollment")

	// ErrNotRecognized reports an attendance sample with no match in
	// the bank, or a match below the confidence threshold.
	ErrNotRecognized = errors.New("service: fingerprint not recognized")

	// ErrBankFull reports an enrollment attempt with no free slot.
	ErrBankFull = errors.New("service: sensor bank full")
)

// DuplicateFingerError reports a biometric sample that already matches
// an enrolled template; it carries the conflicting identity for the
// client's rejection message.
type DuplicateFingerError struct {
	ID   int
	Name string
}

func (e *DuplicateFingerError) Error() string {
	return fmt.Sprintf("service: fingerprint already enrolled as id %d (%s)", e.ID, e.Name)
}
