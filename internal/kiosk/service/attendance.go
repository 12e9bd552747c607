package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/clock"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

// Check-in kinds surfaced in the tipo field.
const (
	KindEntry     = "entrada"
	KindDuplicate = "duplicado"
)

// CheckResult is one recognized check-in.
type CheckResult struct {
	ID         int
	Name       string
	Confidence int
	Date       string
	Time       string
	Kind       string
}

// AttendanceService captures one sample per invocation and logs a
// check-in when it matches the bank. The endpoint is polled whether or
// not a finger is present, so "no finger" and "no match" are routine.
type AttendanceService struct {
	store  store.Store
	sensor sensor.Sensor
	clk    clock.Clock
	logger *slog.Logger

	// MinConfidence rejects matches scoring below it as not
	// recognized. Zero accepts any positive match.
	minConfidence int

	// DailyDedup suppresses a second check-in on the same date,
	// reporting it as KindDuplicate without appending.
	dailyDedup bool
}

func NewAttendanceService(st store.Store, sn sensor.Sensor, clk clock.Clock, minConfidence int, dailyDedup bool, logger *slog.Logger) *AttendanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceService{
		store:         st,
		sensor:        sn,
		clk:           clk,
		logger:        logger,
		minConfidence: minConfidence,
		dailyDedup:    dailyDedup,
	}
}

// Check runs one capture-match-append cycle.
func (s *AttendanceService) Check(ctx context.Context) (CheckResult, error) {
	if err := s.sensor.Capture(ctx); err != nil {
		return CheckResult{}, fmt.Errorf("capture: %w", err)
	}
	if err := s.sensor.Convert(sensor.Buffer1); err != nil {
		return CheckResult{}, fmt.Errorf("convert: %w", err)
	}

	m, err := s.sensor.Search(sensor.Buffer1)
	if err != nil {
		if errors.Is(err, sensor.ErrNoMatch) {
			return CheckResult{}, ErrNotRecognized
		}
		return CheckResult{}, fmt.Errorf("search: %w", err)
	}
	if s.minConfidence > 0 && m.Confidence < s.minConfidence {
		s.logger.Info("match below confidence threshold", "id", m.ID, "confidence", m.Confidence)
		return CheckResult{}, ErrNotRecognized
	}

	// History must keep resolving even after the user record is gone.
	name := domain.UnknownName
	if u, err := s.store.Users().GetByID(ctx, m.ID); err == nil {
		name = u.Name
	}

	now, _ := clock.Stamp(s.clk)
	event := domain.NewAttendanceEvent(m.ID, now)

	result := CheckResult{
		ID:         m.ID,
		Name:       name,
		Confidence: m.Confidence,
		Date:       event.Date,
		Time:       event.Time,
		Kind:       KindEntry,
	}

	if s.dailyDedup {
		seen, err := s.store.Attendance().HasEventOn(ctx, m.ID, event.Date)
		if err != nil {
			return CheckResult{}, fmt.Errorf("daily dedup: %w", err)
		}
		if seen {
			result.Kind = KindDuplicate
			return result, nil
		}
	}

	if err := s.store.Attendance().Append(ctx, event); err != nil {
		return CheckResult{}, fmt.Errorf("append event: %w", err)
	}

	s.logger.Info("attendance recorded", "id", m.ID, "name", name, "confidence", m.Confidence)
	return result, nil
}

// HistoryEntry is one attendance event joined with whatever identity
// still exists for it.
type HistoryEntry struct {
	ID   int
	Name string
	Role string
	Date string
	Time string
}

// History returns the most recent events, newest first, each resolved
// against the current user records. Deleted users keep their events and
// resolve to the unknown name.
func (s *AttendanceService) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	events, err := s.store.Attendance().Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	users, err := s.store.Users().All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	entries := make([]HistoryEntry, 0, len(events))
	for _, e := range events {
		entry := HistoryEntry{ID: e.UserID, Name: domain.UnknownName, Date: e.Date, Time: e.Time}
		if u, ok := byID[e.UserID]; ok {
			entry.Name = u.Name
			entry.Role = u.Role
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
