package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

type attendanceRepo struct {
	s *Store
}

func (r *attendanceRepo) Append(ctx context.Context, e domain.AttendanceEvent) error {
	line := fmt.Sprintf("%d,%s,%s", e.UserID, e.Date, e.Time)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.appendLine(attendanceFile, []byte(line))
}

func (r *attendanceRepo) Recent(ctx context.Context, limit int) ([]domain.AttendanceEvent, error) {
	events, err := r.all()
	if err != nil {
		return nil, err
	}

	// Newest first, bounded so arbitrarily long histories never blow
	// the device's working memory per request.
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

func (r *attendanceRepo) HasEventOn(ctx context.Context, userID int, date string) (bool, error) {
	events, err := r.all()
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if e.UserID == userID && e.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (r *attendanceRepo) all() ([]domain.AttendanceEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, err := os.Open(r.s.path(attendanceFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer f.Close()

	var events []domain.AttendanceEvent
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		e, ok := parseEvent(sc.Text())
		if !ok {
			r.s.logger.Warn("skipping unparseable attendance line", "line", sc.Text())
			continue
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return events, fmt.Errorf("scan %s: %w", attendanceFile, err)
	}
	return events, nil
}

// parseEvent decodes "userID,YYYY-MM-DD,HH:MM:SS". A torn trailing line
// fails one of the field checks and is dropped.
func parseEvent(line string) (domain.AttendanceEvent, bool) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 3 {
		return domain.AttendanceEvent{}, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil || id < 0 {
		return domain.AttendanceEvent{}, false
	}
	if len(parts[1]) != len(domain.DateLayout) || len(parts[2]) != len(domain.TimeLayout) {
		return domain.AttendanceEvent{}, false
	}
	return domain.AttendanceEvent{UserID: id, Date: parts[1], Time: parts[2]}, true
}
