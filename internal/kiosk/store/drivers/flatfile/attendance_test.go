package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
)

func TestAttendanceAppendAndRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)
	att := s.Attendance()

	for i := 1; i <= 5; i++ {
		e := domain.AttendanceEvent{UserID: i, Date: "2026-03-14", Time: fmt.Sprintf("08:0%d:00", i)}
		require.NoError(t, att.Append(ctx, e))
	}

	t.Run("newest first", func(t *testing.T) {
		events, err := att.Recent(ctx, 100)
		require.NoError(t, err)
		require.Len(t, events, 5)
		require.Equal(t, 5, events[0].UserID)
		require.Equal(t, 1, events[4].UserID)
	})

	t.Run("bounded to limit", func(t *testing.T) {
		events, err := att.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, 5, events[0].UserID)
		require.Equal(t, 4, events[1].UserID)
	})

	t.Run("absent log reads empty", func(t *testing.T) {
		empty := New(filepath.Join(t.TempDir(), "missing"), nil)
		events, err := empty.Attendance().Recent(ctx, 10)
		require.NoError(t, err)
		require.Empty(t, events)
	})
}

func TestAttendanceHasEventOn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)
	att := s.Attendance()

	require.NoError(t, att.Append(ctx, domain.AttendanceEvent{UserID: 7, Date: "2026-03-14", Time: "08:00:00"}))

	ok, err := att.HasEventOn(ctx, 7, "2026-03-14")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = att.HasEventOn(ctx, 7, "2026-03-15")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = att.HasEventOn(ctx, 8, "2026-03-14")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAttendanceTolerantParsing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, dir := newTestStore(t)
	att := s.Attendance()

	require.NoError(t, att.Append(ctx, domain.AttendanceEvent{UserID: 1, Date: "2026-03-14", Time: "08:00:00"}))

	// Garbage, a short line, and a torn trailing line.
	f, err := os.OpenFile(filepath.Join(dir, attendanceFile), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("nonsense\n2,2026-03\n3,2026-03-14,08:1")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	events, err := att.Recent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, 1, events[0].UserID)
}
