package domain

import "time"

// Date/time layouts used across the wire API and the attendance log.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// AttendanceEvent is one check-in. Events are append-only: deleting a
// user never removes their historical events.
type AttendanceEvent struct {
	UserID int    `json:"userId"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM:SS
}

// NewAttendanceEvent stamps an event for userID at t.
func NewAttendanceEvent(userID int, t time.Time) AttendanceEvent {
	return AttendanceEvent{
		UserID: userID,
		Date:   t.Format(DateLayout),
		Time:   t.Format(TimeLayout),
	}
}
