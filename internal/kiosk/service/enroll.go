package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

// Client-facing prompts for the enrollment polling loop.
const (
	msgPlaceFinger = "Coloque el dedo en el sensor"
	msgPlaceAgain  = "Retire el dedo y coloquelo nuevamente"
	msgModelReady  = "Huella capturada"
)

// StepResult is the outcome of one enrollment poll: the effective step
// plus either a prompt for the client or, once confirmed, the slot id
// the registration form must submit back.
type StepResult struct {
	Step domain.EnrollStep
	ID   int
	Msg  string
}

// EnrollService owns the device's single enrollment session and drives
// the two-sample capture protocol against the sensor. Exactly one
// enrollment can be in flight system-wide; a new attempt simply
// overwrites an abandoned session.
type EnrollService struct {
	store  store.Store
	sensor sensor.Sensor
	dedup  *Dedup
	logger *slog.Logger

	session *domain.Session
	now     func() time.Time // test seam
}

func NewEnrollService(st store.Store, sn sensor.Sensor, sessionTTL time.Duration, logger *slog.Logger) *EnrollService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollService{
		store:   st,
		sensor:  sn,
		dedup:   &Dedup{Store: st, Sensor: sn},
		logger:  logger,
		session: domain.NewSession(sessionTTL),
		now:     time.Now,
	}
}

// Step advances the capture protocol by at most one sample. The client
// polls this until it sees step 2; absence of a finger is a normal
// outcome, not an error.
func (s *EnrollService) Step(ctx context.Context) (StepResult, error) {
	now := s.now()
	switch s.session.Step(now) {
	case domain.StepIdle:
		return s.firstSample(ctx, now)
	case domain.StepFirstCaptured:
		return s.secondSample(ctx, now)
	default: // StepConfirmed: re-polls report the pending slot again
		id, _ := s.session.CandidateID(now)
		return StepResult{Step: domain.StepConfirmed, ID: id, Msg: msgModelReady}, nil
	}
}

func (s *EnrollService) firstSample(ctx context.Context, now time.Time) (StepResult, error) {
	count, err := s.sensor.TemplateCount()
	if err != nil {
		return StepResult{}, fmt.Errorf("template count: %w", err)
	}
	if count >= s.sensor.Capacity() {
		return StepResult{}, ErrBankFull
	}

	if err := s.sensor.Capture(ctx); err != nil {
		if errors.Is(err, sensor.ErrNoFinger) {
			return StepResult{Step: domain.StepIdle, Msg: msgPlaceFinger}, nil
		}
		return StepResult{}, fmt.Errorf("capture: %w", err)
	}
	if err := s.sensor.Convert(sensor.Buffer1); err != nil {
		return StepResult{}, fmt.Errorf("convert first sample: %w", err)
	}

	// Fast rejection: the first sample alone may already match an
	// enrolled template.
	if dup, err := s.dedup.FingerEnrolled(ctx, sensor.Buffer1); err != nil {
		return StepResult{}, err
	} else if dup != nil {
		s.logger.Info("enrollment rejected: duplicate fingerprint", "id", dup.ID)
		return StepResult{}, dup
	}

	_ = s.session.FirstCaptured(now)
	return StepResult{Step: domain.StepFirstCaptured, Msg: msgPlaceAgain}, nil
}

func (s *EnrollService) secondSample(ctx context.Context, now time.Time) (StepResult, error) {
	if err := s.sensor.Capture(ctx); err != nil {
		if errors.Is(err, sensor.ErrNoFinger) {
			s.session.Touch(now)
			return StepResult{Step: domain.StepFirstCaptured, Msg: msgPlaceAgain}, nil
		}
		s.session.Reset()
		return StepResult{}, fmt.Errorf("capture: %w", err)
	}
	if err := s.sensor.Convert(sensor.Buffer2); err != nil {
		s.session.Reset()
		return StepResult{}, fmt.Errorf("convert second sample: %w", err)
	}
	if err := s.sensor.CreateModel(); err != nil {
		s.session.Reset()
		return StepResult{}, fmt.Errorf("create model: %w", err)
	}

	// The second sample could independently match a different enrolled
	// template than the first would have, so dedup runs again on the
	// confirmed model.
	if dup, err := s.dedup.FingerEnrolled(ctx, sensor.Buffer2); err != nil {
		s.session.Reset()
		return StepResult{}, err
	} else if dup != nil {
		s.session.Reset()
		s.logger.Info("enrollment rejected: duplicate fingerprint", "id", dup.ID)
		return StepResult{}, dup
	}

	id, err := s.store.Users().NextID(ctx)
	if err != nil {
		s.session.Reset()
		return StepResult{}, fmt.Errorf("next id: %w", err)
	}
	if !domain.ValidSlot(id) {
		s.session.Reset()
		return StepResult{}, ErrBankFull
	}

	_ = s.session.Confirm(id, now)
	return StepResult{Step: domain.StepConfirmed, ID: id, Msg: msgModelReady}, nil
}

// Register finalizes a confirmed enrollment: persists the model into
// the bank slot and appends the user record. On validation failure the
// session stays confirmed so the client can resubmit corrected input;
// a sensor or storage failure resets it.
func (s *EnrollService) Register(ctx context.Context, id int, name, role string) (domain.User, error) {
	now := s.now()

	candidate, ok := s.session.CandidateID(now)
	if !ok {
		return domain.User{}, ErrNoSession
	}
	// Guards a client racing two enrollment windows from different
	// page loads: only the id handed out at confirmation is accepted.
	if id != candidate {
		return domain.User{}, ErrSessionMismatch
	}

	if !domain.ValidSlot(id) {
		return domain.User{}, ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if !domain.ValidName(name) {
		return domain.User{}, ErrNameTooShort
	}
	if taken, err := s.dedup.NameTaken(ctx, name, 0); err != nil {
		return domain.User{}, err
	} else if taken {
		return domain.User{}, ErrDuplicateName
	}

	if err := s.sensor.StoreModel(id); err != nil {
		s.session.Reset()
		return domain.User{}, fmt.Errorf("store model: %w", err)
	}

	u := domain.User{ID: id, Name: name, Role: strings.TrimSpace(role)}
	if err := s.store.Users().Append(ctx, u); err != nil {
		// Keep store and bank consistent: the record never landed, so
		// take the template back out.
		if derr := s.sensor.DeleteModel(id); derr != nil {
			s.logger.Error("orphan template after failed append", "id", id, "error", derr)
		}
		s.session.Reset()
		return domain.User{}, fmt.Errorf("append user: %w", err)
	}

	s.session.Reset()
	s.logger.Info("user enrolled", "id", u.ID, "name", u.Name)
	return u, nil
}

// SessionStep exposes the effective session state (for tests and the
// status surface).
func (s *EnrollService) SessionStep() domain.EnrollStep {
	return s.session.Step(s.now())
}
