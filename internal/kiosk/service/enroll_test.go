package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store/drivers/flatfile"
)

func newEnrollFixture(t *testing.T) (*EnrollService, *flatfile.Store, *sensor.Sim) {
	t.Helper()
	st := flatfile.New(t.TempDir(), nil)
	sim := sensor.NewSim(10)
	return NewEnrollService(st, sim, 0, nil), st, sim
}

func TestEnrollHappyPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newEnrollFixture(t)

	// Poll with no finger: stays idle, prompts the client.
	res, err := svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.StepIdle, res.Step)
	require.NotEmpty(t, res.Msg)

	sim.Press("huella-nueva")
	res, err = svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.StepFirstCaptured, res.Step)

	// Poll between samples with no finger: state holds.
	res, err = svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.StepFirstCaptured, res.Step)

	sim.Press("huella-nueva")
	res, err = svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.StepConfirmed, res.Step)
	require.Equal(t, 1, res.ID)

	// Re-poll after confirmation reports the same pending slot.
	res, err = svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.StepConfirmed, res.Step)
	require.Equal(t, 1, res.ID)

	u, err := svc.Register(ctx, 1, "Elena", "docente")
	require.NoError(t, err)
	require.Equal(t, domain.User{ID: 1, Name: "Elena", Role: "docente"}, u)
	require.True(t, sim.Has(1), "template persisted to the bank")
	require.Equal(t, domain.StepIdle, svc.SessionStep())

	got, err := st.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Elena", got.Name)
}

func TestEnrollCandidateIDSkipsGaps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newEnrollFixture(t)

	for _, id := range []int{1, 3, 4} {
		require.NoError(t, st.Users().Append(ctx, domain.User{ID: id, Name: "x", Role: ""}))
	}

	sim.Press("p")
	sim.Press("p")
	_, err := svc.Step(ctx)
	require.NoError(t, err)
	res, err := svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, res.ID, "max+1 over {1,3,4}")
}

func TestEnrollDuplicateFirstSample(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newEnrollFixture(t)

	require.NoError(t, st.Users().Append(ctx, domain.User{ID: 7, Name: "Ana", Role: "docente"}))
	sim.Enroll(7, "huella-ana")

	sim.Press("huella-ana")
	_, err := svc.Step(ctx)

	var dup *DuplicateFingerError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, 7, dup.ID)
	require.Equal(t, "Ana", dup.Name)
	require.Equal(t, domain.StepIdle, svc.SessionStep())

	// The next poll behaves as a fresh idle session.
	sim.Press("huella-distinta")
	res, err := svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.StepFirstCaptured, res.Step)
}

func TestEnrollDuplicateSecondSample(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newEnrollFixture(t)

	sim.Press("huella-x")
	_, err := svc.Step(ctx)
	require.NoError(t, err)

	// The same print gets enrolled between the two samples; the
	// confirmed model now matches an existing template.
	require.NoError(t, st.Users().Append(ctx, domain.User{ID: 5, Name: "Bruno", Role: ""}))
	sim.Enroll(5, "huella-x")

	sim.Press("huella-x")
	_, err = svc.Step(ctx)

	var dup *DuplicateFingerError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, 5, dup.ID)
	require.Equal(t, "Bruno", dup.Name)
	require.Equal(t, domain.StepIdle, svc.SessionStep())
}

func TestEnrollSecondSampleMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, sim := newEnrollFixture(t)

	sim.Press("huella-a")
	_, err := svc.Step(ctx)
	require.NoError(t, err)

	sim.Press("huella-b")
	_, err = svc.Step(ctx)
	require.ErrorIs(t, err, sensor.ErrModelMismatch)
	require.Equal(t, domain.StepIdle, svc.SessionStep(), "failure resets the session")
}

func TestEnrollBankFull(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := flatfile.New(t.TempDir(), nil)
	sim := sensor.NewSim(1)
	sim.Enroll(1, "ocupada")
	svc := NewEnrollService(st, sim, 0, nil)

	sim.Press("nueva")
	_, err := svc.Step(ctx)
	require.ErrorIs(t, err, ErrBankFull)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, st, sim := newEnrollFixture(t)

	require.NoError(t, st.Users().Append(ctx, domain.User{ID: 3, Name: "Carlos", Role: "alumno"}))
	sim.Enroll(3, "huella-carlos")

	sim.Press("huella-nueva")
	sim.Press("huella-nueva")
	_, err := svc.Step(ctx)
	require.NoError(t, err)
	res, err := svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, res.ID)

	t.Run("no session before confirmation elsewhere", func(t *testing.T) {
		other := NewEnrollService(st, sim, 0, nil)
		_, err := other.Register(ctx, 4, "Elena", "")
		require.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("mismatched id rejected, session kept", func(t *testing.T) {
		_, err := svc.Register(ctx, 10, "Elena", "")
		require.ErrorIs(t, err, ErrSessionMismatch)
		require.Equal(t, domain.StepConfirmed, svc.SessionStep())

		all, err := st.Users().All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1, "no record created on rejection")
	})

	t.Run("short name rejected, session kept", func(t *testing.T) {
		_, err := svc.Register(ctx, 4, "Al", "")
		require.ErrorIs(t, err, ErrNameTooShort)
		require.Equal(t, domain.StepConfirmed, svc.SessionStep())
	})

	t.Run("duplicate name rejected, session kept", func(t *testing.T) {
		_, err := svc.Register(ctx, 4, "  carlos ", "")
		require.ErrorIs(t, err, ErrDuplicateName)
		require.Equal(t, domain.StepConfirmed, svc.SessionStep())
	})

	t.Run("corrected input succeeds on retry", func(t *testing.T) {
		u, err := svc.Register(ctx, 4, "Elena", "docente")
		require.NoError(t, err)
		require.Equal(t, 4, u.ID)
		require.Equal(t, domain.StepIdle, svc.SessionStep())
	})
}

func TestEnrollSessionExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := flatfile.New(t.TempDir(), nil)
	sim := sensor.NewSim(10)
	svc := NewEnrollService(st, sim, time.Minute, nil)

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	sim.Press("p")
	sim.Press("p")
	_, err := svc.Step(ctx)
	require.NoError(t, err)
	_, err = svc.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.StepConfirmed, svc.SessionStep())

	// Abandoned by the client; the slot frees itself.
	current = base.Add(5 * time.Minute)
	require.Equal(t, domain.StepIdle, svc.SessionStep())

	_, err = svc.Register(ctx, 1, "Elena", "")
	require.ErrorIs(t, err, ErrNoSession)
}
