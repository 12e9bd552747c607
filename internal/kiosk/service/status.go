package service

import (
	"context"
	"time"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/clock"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

// SystemStatus is the health snapshot of each hardware subsystem.
type SystemStatus struct {
	Device   bool
	Sensor   bool
	RTC      bool
	Storage  bool
	DateTime string // set only when the RTC is valid
}

// StatusService probes the subsystems the kiosk depends on.
type StatusService struct {
	store  store.Store
	sensor sensor.Sensor
	clk    clock.Clock
}

func NewStatusService(st store.Store, sn sensor.Sensor, clk clock.Clock) *StatusService {
	return &StatusService{store: st, sensor: sn, clk: clk}
}

// Check never fails; unreachable subsystems simply report false.
func (s *StatusService) Check(ctx context.Context) SystemStatus {
	st := SystemStatus{Device: true}

	st.Sensor = s.sensor.Ping(ctx) == nil
	st.Storage = s.store.Ping(ctx) == nil

	if now, ok := s.clk.Now(); ok {
		st.RTC = true
		st.DateTime = now.Format(time.DateTime)
	}
	return st
}
