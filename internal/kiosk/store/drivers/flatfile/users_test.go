package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir, nil), dir
}

func TestUsersAppendAndScan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)
	users := s.Users()

	require.NoError(t, users.Append(ctx, domain.User{ID: 1, Name: "Ana", Role: "docente"}))
	require.NoError(t, users.Append(ctx, domain.User{ID: 2, Name: "Carlos", Role: "alumno"}))

	all, err := users.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Ana", all[0].Name)
	require.Equal(t, "Carlos", all[1].Name)
}

func TestUsersAbsentStoreReadsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(filepath.Join(t.TempDir(), "not-mounted"), nil)

	all, err := s.Users().All(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	next, err := s.Users().NextID(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, next)
}

func TestUsersNextID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)
	users := s.Users()

	next, err := users.NextID(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, next)

	for _, id := range []int{1, 3, 4} {
		require.NoError(t, users.Append(ctx, domain.User{ID: id, Name: "u", Role: ""}))
	}

	next, err = users.NextID(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, next, "max+1, gap-insensitive")
}

func TestUsersNameExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)
	users := s.Users()

	require.NoError(t, users.Append(ctx, domain.User{ID: 3, Name: "Carlos", Role: "alumno"}))

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		exists, err := users.NameExists(ctx, "  cArLoS ", 0)
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("excluded id does not match itself", func(t *testing.T) {
		exists, err := users.NameExists(ctx, "Carlos", 3)
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("unknown name", func(t *testing.T) {
		exists, err := users.NameExists(ctx, "Elena", 0)
		require.NoError(t, err)
		require.False(t, exists)
	})
}

func TestUsersUpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore(t)
	users := s.Users()

	require.NoError(t, users.Append(ctx, domain.User{ID: 1, Name: "Ana", Role: "docente"}))
	require.NoError(t, users.Append(ctx, domain.User{ID: 2, Name: "Carlos", Role: "alumno"}))

	t.Run("update substitutes in place", func(t *testing.T) {
		require.NoError(t, users.Update(ctx, domain.User{ID: 2, Name: "Carlos M", Role: "docente"}))
		u, err := users.GetByID(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, "Carlos M", u.Name)
		require.Equal(t, "docente", u.Role)
	})

	t.Run("update missing id", func(t *testing.T) {
		err := users.Update(ctx, domain.User{ID: 99, Name: "Nadie"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		removed, err := users.Delete(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "Ana", removed.Name)

		_, err = users.GetByID(ctx, 1)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete missing id", func(t *testing.T) {
		_, err := users.Delete(ctx, 42)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

// Editing one record must leave every other line byte-for-byte intact,
// in the original order.
func TestUsersRewriteRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, dir := newTestStore(t)
	users := s.Users()

	names := []string{"Ana", "Bruno", "Carla", "Diego", "Elena"}
	for i, n := range names {
		require.NoError(t, users.Append(ctx, domain.User{ID: i + 1, Name: n, Role: "alumno"}))
	}

	before, err := os.ReadFile(filepath.Join(dir, usersFile))
	require.NoError(t, err)
	beforeLines := strings.Split(strings.TrimRight(string(before), "\n"), "\n")

	require.NoError(t, users.Update(ctx, domain.User{ID: 3, Name: "Carla V", Role: "docente"}))

	after, err := os.ReadFile(filepath.Join(dir, usersFile))
	require.NoError(t, err)
	afterLines := strings.Split(strings.TrimRight(string(after), "\n"), "\n")

	require.Len(t, afterLines, len(beforeLines))
	for i := range beforeLines {
		if i == 2 {
			require.NotEqual(t, beforeLines[i], afterLines[i])
			continue
		}
		require.Equal(t, beforeLines[i], afterLines[i], "line %d must be untouched", i)
	}
}

func TestUsersTolerantParsing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, dir := newTestStore(t)
	users := s.Users()

	require.NoError(t, users.Append(ctx, domain.User{ID: 1, Name: "Ana", Role: "docente"}))
	require.NoError(t, users.Append(ctx, domain.User{ID: 2, Name: "Bruno", Role: "alumno"}))

	// Simulate an unclean shutdown: garbage line plus a torn trailing
	// record with no newline.
	f, err := os.OpenFile(filepath.Join(dir, usersFile), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("%%corrupt%%\n{\"id\":3,\"na")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	all, err := users.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2, "corruption must not lose prior records")
	require.Equal(t, "Ana", all[0].Name)
	require.Equal(t, "Bruno", all[1].Name)
}

func TestStorePing(t *testing.T) {
	t.Parallel()

	t.Run("writable dir", func(t *testing.T) {
		s, _ := newTestStore(t)
		require.NoError(t, s.Ping(context.Background()))
	})

	t.Run("creates missing dir on demand", func(t *testing.T) {
		s := New(filepath.Join(t.TempDir(), "sd", "data"), nil)
		require.NoError(t, s.Ping(context.Background()))
	})
}
