package service

import (
	"context"
	"errors"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

// Dedup answers "does this identity already exist" for both identity
// spaces: the human-readable name space in the record store and the
// biometric template bank inside the sensor.
type Dedup struct {
	Store  store.Store
	Sensor sensor.Sensor
}

// NameTaken reports whether name collides with any record other than
// excludeID. The scan is linear; the store is bounded by the sensor's
// bank capacity, so that is fine.
func (d *Dedup) NameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	return d.Store.Users().NameExists(ctx, name, excludeID)
}

// FingerEnrolled searches the sample sitting in the given buffer
// against the bank. Any positive match means "already enrolled",
// regardless of confidence; the owner's name is resolved for the
// rejection payload. Returns nil when the sample is new.
func (d *Dedup) FingerEnrolled(ctx context.Context, buffer int) (*DuplicateFingerError, error) {
	m, err := d.Sensor.Search(buffer)
	if err != nil {
		if errors.Is(err, sensor.ErrNoMatch) {
			return nil, nil
		}
		return nil, err
	}

	name := domain.UnknownName
	if u, err := d.Store.Users().GetByID(ctx, m.ID); err == nil {
		name = u.Name
	}
	return &DuplicateFingerError{ID: m.ID, Name: name}, nil
}
