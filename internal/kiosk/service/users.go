package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/sensor"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

// UserService covers the identity CRUD surface. Every mutation keeps
// the record store and the sensor's template bank consistent: an id
// exists in one if and only if it exists in the other.
type UserService struct {
	store  store.Store
	sensor sensor.Sensor
	dedup  *Dedup
	logger *slog.Logger
}

func NewUserService(st store.Store, sn sensor.Sensor, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		store:  st,
		sensor: sn,
		dedup:  &Dedup{Store: st, Sensor: sn},
		logger: logger,
	}
}

// List returns all enrolled users in store order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.Users().All(ctx)
}

// Edit rewrites the record for u.ID. Resubmitting the user's own
// unchanged name is not a duplicate.
func (s *UserService) Edit(ctx context.Context, u domain.User) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Role = strings.TrimSpace(u.Role)

	if !domain.ValidSlot(u.ID) {
		return ErrInvalidID
	}
	if !domain.ValidName(u.Name) {
		return ErrNameTooShort
	}
	if taken, err := s.dedup.NameTaken(ctx, u.Name, u.ID); err != nil {
		return err
	} else if taken {
		return ErrDuplicateName
	}

	if err := s.store.Users().Update(ctx, u); err != nil {
		return err
	}
	s.logger.Info("user updated", "id", u.ID, "name", u.Name)
	return nil
}

// Delete removes the user record and its template. Historical
// attendance events are retained by design; they resolve to the
// unknown name afterwards. The template goes first so a failed pair
// can be repaired by retrying the delete.
func (s *UserService) Delete(ctx context.Context, id int) (domain.User, error) {
	_, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.sensor.DeleteModel(id); err != nil {
		if !errors.Is(err, sensor.ErrNoTemplate) {
			return domain.User{}, fmt.Errorf("delete template: %w", err)
		}
		// Half-deleted pair from an earlier crash: finish the job.
		s.logger.Warn("no template for enrolled user", "id", id)
	}

	removed, err := s.store.Users().Delete(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	s.logger.Info("user deleted", "id", id, "name", removed.Name)
	return removed, nil
}

// NextID computes the slot the next enrollment will take: max(id)+1
// over the store, 1 when empty. Pure function of store contents, so
// there is no counter to persist or corrupt.
func (s *UserService) NextID(ctx context.Context) (int, error) {
	return s.store.Users().NextID(ctx)
}

// NameExists probes name uniqueness for the registration form.
func (s *UserService) NameExists(ctx context.Context, name string) (bool, error) {
	return s.dedup.NameTaken(ctx, name, 0)
}
