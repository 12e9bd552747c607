package store

import (
	"context"
	"errors"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrUnavailable reports that the backing medium (the removable
	// card) could not be opened for writing. Read paths treat an
	// absent store as empty instead.
	ErrUnavailable = errors.New("store: medium unavailable")
)

// Store is the root data access interface. The flat-file driver is the
// deployed implementation; tests may substitute fakes. Sub-repositories
// keep the two record kinds tidy, mirroring the on-disk split into two
// files.
type Store interface {
	Users() Users
	Attendance() Attendance

	// Ping verifies the backing medium is present and writable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// Append adds a new user record. The caller is responsible for
	// uniqueness; Append does not re-check.
	Append(ctx context.Context, u domain.User) error

	// All returns every readable user record in append order.
	// An absent store reads as empty.
	All(ctx context.Context) ([]domain.User, error)

	// GetByID returns the record for id or ErrNotFound.
	GetByID(ctx context.Context, id int) (domain.User, error)

	// Update rewrites the store substituting the record matching u.ID.
	// Returns ErrNotFound if no record matches.
	Update(ctx context.Context, u domain.User) error

	// Delete rewrites the store omitting the record for id, returning
	// the removed record or ErrNotFound.
	Delete(ctx context.Context, id int) (domain.User, error)

	// NextID returns max(id)+1 over all records, 1 when the store is
	// empty or absent. Gap-insensitive: ids {1,3,4} yield 5.
	NextID(ctx context.Context) (int, error)

	// NameExists reports whether any record other than excludeID has
	// the given name under trimmed case-insensitive comparison.
	// Pass excludeID 0 to compare against every record.
	NameExists(ctx context.Context, name string, excludeID int) (bool, error)
}

type Attendance interface {
	// Append adds one attendance event. Events are never rewritten.
	Append(ctx context.Context, e domain.AttendanceEvent) error

	// Recent returns at most limit events, newest first.
	Recent(ctx context.Context, limit int) ([]domain.AttendanceEvent, error)

	// HasEventOn reports whether userID already has an event on the
	// given YYYY-MM-DD date.
	HasEventOn(ctx context.Context, userID int, date string) (bool, error)
}
