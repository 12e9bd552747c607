// Package sensor abstracts the fingerprint module. The template bank
// lives inside the sensor itself; this package only drives the
// capture/convert/model/search protocol and never sees raw biometrics.
package sensor

import (
	"context"
	"errors"
)

var (
	// ErrNoFinger means no finger was on the window when Capture
	// polled. Capture never blocks waiting for one; callers retry on
	// their next invocation.
	ErrNoFinger = errors.New("sensor: no finger detected")

	// ErrConvert means the captured image could not be turned into a
	// feature template (smudged or partial sample).
	ErrConvert = errors.New("sensor: image conversion failed")

	// ErrModelMismatch means the two samples did not agree well enough
	// to merge into a model.
	ErrModelMismatch = errors.New("sensor: samples do not match")

	// ErrNoMatch means a search found no enrolled template.
	ErrNoMatch = errors.New("sensor: no matching template")

	// ErrBankFull means every template slot is occupied.
	ErrBankFull = errors.New("sensor: template bank full")

	// ErrNoTemplate means the addressed slot holds no template.
	ErrNoTemplate = errors.New("sensor: no template in slot")
)

// Buffer slots for converted samples. The enrollment flow converts the
// first sample into Buffer1 and the second into Buffer2 before merging.
const (
	Buffer1 = 1
	Buffer2 = 2
)

// Match is a positive search result: the owning slot id and the
// module's confidence score for the match.
type Match struct {
	ID         int
	Confidence int
}

// Sensor is the fingerprint module capability consumed by the services.
// All operations are bounded: the driver's own read timeout is the only
// wait anywhere in the protocol.
type Sensor interface {
	// Capture polls for a finger and reads one image into the working
	// buffer. Returns ErrNoFinger immediately when the window is empty.
	Capture(ctx context.Context) error

	// Convert extracts features from the captured image into the given
	// buffer slot.
	Convert(buffer int) error

	// CreateModel merges Buffer1 and Buffer2 into a model, failing
	// with ErrModelMismatch when the samples disagree.
	CreateModel() error

	// StoreModel persists the merged model into bank slot id.
	StoreModel(id int) error

	// DeleteModel removes the template in bank slot id.
	DeleteModel(id int) error

	// Search matches the given buffer against the bank.
	Search(buffer int) (Match, error)

	// TemplateCount reports how many bank slots are occupied.
	TemplateCount() (int, error)

	// Capacity is the total number of bank slots.
	Capacity() int

	// Ping verifies the module responds on the wire.
	Ping(ctx context.Context) error
}
