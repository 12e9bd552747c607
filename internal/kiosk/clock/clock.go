// Package clock wraps the real-time clock capability. The kiosk's RTC
// can lose power independently of the board, so every read reports
// whether the time is trustworthy; callers fall back to the host clock
// and surface rtc:false in system status.
package clock

import "time"

// Clock yields the current time and whether it came from a valid RTC.
type Clock interface {
	Now() (time.Time, bool)
}

// System reads the host wall clock. Always reported valid: boards
// deployed without a battery RTC sync time over the network at boot.
type System struct{}

func (System) Now() (time.Time, bool) { return time.Now(), true }

// Fixed always returns the same instant. Test helper.
type Fixed struct {
	T     time.Time
	Valid bool
}

func (f Fixed) Now() (time.Time, bool) { return f.T, f.Valid }

// Stamp returns the instant to record events at: the RTC value when
// valid, otherwise the host clock. ok mirrors RTC validity.
func Stamp(c Clock) (t time.Time, ok bool) {
	t, ok = c.Now()
	if !ok {
		t = time.Now()
	}
	return t, ok
}
