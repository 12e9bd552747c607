package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store/drivers/flatfile"
)

func newUserFixture(t *testing.T) (*UserService, *flatfile.Store, *sensor.Sim) {
	t.Helper()
	st := flatfile.New(t.TempDir(), nil)
	sim := sensor.NewSim(10)
	return NewUserService(st, sim, nil), st, sim
}

func seedUser(t *testing.T, st *flatfile.Store, sim *sensor.Sim, u domain.User, print string) {
	t.Helper()
	require.NoError(t, st.Users().Append(context.Background(), u))
	sim.Enroll(u.ID, print)
}

func TestUserEdit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newUserFixture(t)

	seedUser(t, st, sim, domain.User{ID: 3, Name: "Carlos", Role: "alumno"}, "h3")
	seedUser(t, st, sim, domain.User{ID: 4, Name: "Elena", Role: "docente"}, "h4")

	t.Run("resubmitting own name is not a duplicate", func(t *testing.T) {
		err := svc.Edit(ctx, domain.User{ID: 3, Name: "Carlos", Role: "docente"})
		require.NoError(t, err)

		u, err := st.Users().GetByID(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, "docente", u.Role)
	})

	t.Run("taking another user's name rejected", func(t *testing.T) {
		err := svc.Edit(ctx, domain.User{ID: 3, Name: " elena ", Role: "alumno"})
		require.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("short name rejected", func(t *testing.T) {
		err := svc.Edit(ctx, domain.User{ID: 3, Name: "Al", Role: ""})
		require.ErrorIs(t, err, ErrNameTooShort)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.Edit(ctx, domain.User{ID: 99, Name: "Nadie", Role: ""})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newUserFixture(t)

	seedUser(t, st, sim, domain.User{ID: 5, Name: "Diego", Role: "alumno"}, "h5")
	require.NoError(t, st.Attendance().Append(ctx, domain.AttendanceEvent{UserID: 5, Date: "2026-03-13", Time: "08:00:00"}))

	removed, err := svc.Delete(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "Diego", removed.Name)

	t.Run("record and template both gone", func(t *testing.T) {
		_, err := st.Users().GetByID(ctx, 5)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.False(t, sim.Has(5))
	})

	t.Run("attendance history retained", func(t *testing.T) {
		events, err := st.Attendance().Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, 5, events[0].UserID)
	})

	t.Run("missing template tolerated", func(t *testing.T) {
		require.NoError(t, st.Users().Append(ctx, domain.User{ID: 6, Name: "Flor", Role: ""}))
		// No sim.Enroll: half-deleted pair from an earlier crash.
		removed, err := svc.Delete(ctx, 6)
		require.NoError(t, err)
		require.Equal(t, "Flor", removed.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Delete(ctx, 42)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserNextIDAndNameExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newUserFixture(t)

	next, err := svc.NextID(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, next)

	seedUser(t, st, sim, domain.User{ID: 1, Name: "Ana", Role: ""}, "h1")
	seedUser(t, st, sim, domain.User{ID: 3, Name: "Bruno", Role: ""}, "h3")

	next, err = svc.NextID(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, next)

	exists, err := svc.NameExists(ctx, "  ANA ")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = svc.NameExists(ctx, "Carla")
	require.NoError(t, err)
	require.False(t, exists)
}

// After any sequence of enroll/edit/delete the store and the bank hold
// exactly the same ids.
func TestCrossStoreConsistency(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := flatfile.New(t.TempDir(), nil)
	sim := sensor.NewSim(10)
	users := NewUserService(st, sim, nil)
	enroll := NewEnrollService(st, sim, 0, nil)

	enrollOne := func(print, name string) int {
		sim.Press(print)
		sim.Press(print)
		_, err := enroll.Step(ctx)
		require.NoError(t, err)
		res, err := enroll.Step(ctx)
		require.NoError(t, err)
		_, err = enroll.Register(ctx, res.ID, name, "alumno")
		require.NoError(t, err)
		return res.ID
	}

	a := enrollOne("print-a", "Ana Maria")
	b := enrollOne("print-b", "Bruno Diaz")
	c := enrollOne("print-c", "Carla Ruiz")

	_, err := users.Delete(ctx, b)
	require.NoError(t, err)
	require.NoError(t, users.Edit(ctx, domain.User{ID: c, Name: "Carla V Ruiz", Role: "docente"}))

	all, err := st.Users().All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, u := range all {
		require.True(t, sim.Has(u.ID), "record %d must have a template", u.ID)
	}
	require.True(t, sim.Has(a))
	require.False(t, sim.Has(b))

	count, err := sim.TemplateCount()
	require.NoError(t, err)
	require.Equal(t, len(all), count, "no orphan templates")
}
