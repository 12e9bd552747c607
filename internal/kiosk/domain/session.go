package domain

import (
	"errors"
	"time"
)

// EnrollStep is the state of the two-sample enrollment state machine.
// The numeric values are part of the wire contract (the client renders
// them directly).
type EnrollStep int

const (
	StepIdle          EnrollStep = 0
	StepFirstCaptured EnrollStep = 1
	StepConfirmed     EnrollStep = 2
)

// ErrBadTransition reports an enrollment transition attempted from the
// wrong state.
var ErrBadTransition = errors.New("session: invalid transition")

// Session is the single-slot enrollment session. The whole device holds
// exactly one; a new enrollment attempt overwrites whatever a previous
// client abandoned. Sessions are not persisted; a restart starts idle.
//
// A session older than ttl is reported as idle again, so an abandoned
// confirmed session cannot block enrollments forever. ttl of zero
// disables expiry.
type Session struct {
	step        EnrollStep
	candidateID int
	touched     time.Time
	ttl         time.Duration
}

// NewSession returns an idle session with the given idle expiry.
func NewSession(ttl time.Duration) *Session {
	return &Session{ttl: ttl}
}

// Step reports the effective state at time now, folding expiry in.
func (s *Session) Step(now time.Time) EnrollStep {
	if s.expired(now) {
		return StepIdle
	}
	return s.step
}

// CandidateID returns the slot assigned at confirmation. ok is false
// unless the session is confirmed and unexpired.
func (s *Session) CandidateID(now time.Time) (int, bool) {
	if s.Step(now) != StepConfirmed {
		return 0, false
	}
	return s.candidateID, true
}

// FirstCaptured records a valid first sample. Only legal from idle.
func (s *Session) FirstCaptured(now time.Time) error {
	if s.Step(now) != StepIdle {
		return ErrBadTransition
	}
	s.step = StepFirstCaptured
	s.candidateID = 0
	s.touched = now
	return nil
}

// Confirm records a confirmed model and the slot it will occupy. Only
// legal from the first-captured state.
func (s *Session) Confirm(candidateID int, now time.Time) error {
	if s.Step(now) != StepFirstCaptured {
		return ErrBadTransition
	}
	s.step = StepConfirmed
	s.candidateID = candidateID
	s.touched = now
	return nil
}

// Touch refreshes the idle timer without changing state.
func (s *Session) Touch(now time.Time) {
	if s.step != StepIdle {
		s.touched = now
	}
}

// Reset returns the session to idle. Always legal.
func (s *Session) Reset() {
	s.step = StepIdle
	s.candidateID = 0
	s.touched = time.Time{}
}

func (s *Session) expired(now time.Time) bool {
	if s.ttl <= 0 || s.step == StepIdle {
		return false
	}
	return now.Sub(s.touched) > s.ttl
}
