package flatfile

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/domain"
	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

type usersRepo struct {
	s *Store
}

func (r *usersRepo) Append(ctx context.Context, u domain.User) error {
	line, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.appendLine(usersFile, line)
}

func (r *usersRepo) All(ctx context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.scan()
}

// scan reads every parseable record in append order. Callers hold s.mu.
func (r *usersRepo) scan() ([]domain.User, error) {
	f, err := os.Open(r.s.path(usersFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // absent store reads as empty
		}
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer f.Close()

	var users []domain.User
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var u domain.User
		if err := json.Unmarshal(line, &u); err != nil {
			// Torn or corrupted line: drop it, keep the rest.
			r.s.logger.Warn("skipping unparseable user record", "error", err)
			continue
		}
		users = append(users, u)
	}
	if err := sc.Err(); err != nil {
		return users, fmt.Errorf("scan %s: %w", usersFile, err)
	}
	return users, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int) (domain.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) Update(ctx context.Context, u domain.User) error {
	return r.rewrite(ctx, u.ID, &u)
}

func (r *usersRepo) Delete(ctx context.Context, id int) (domain.User, error) {
	removed, err := r.find(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if err := r.rewrite(ctx, id, nil); err != nil {
		return domain.User{}, err
	}
	return removed, nil
}

func (r *usersRepo) find(ctx context.Context, id int) (domain.User, error) {
	return r.GetByID(ctx, id)
}

// rewrite replays every record, substituting the one matching id with
// replacement (or omitting it when replacement is nil), then atomically
// swaps the new file in.
func (r *usersRepo) rewrite(ctx context.Context, id int, replacement *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users, err := r.scan()
	if err != nil {
		return err
	}

	found := false
	lines := make([][]byte, 0, len(users))
	for _, u := range users {
		if u.ID == id {
			found = true
			if replacement == nil {
				continue
			}
			u = *replacement
		}
		line, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		lines = append(lines, line)
	}
	if !found {
		return store.ErrNotFound
	}
	return r.s.rewriteFile(usersFile, lines)
}

func (r *usersRepo) NextID(ctx context.Context) (int, error) {
	users, err := r.All(ctx)
	if err != nil {
		return 0, err
	}
	next := 1
	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next, nil
}

func (r *usersRepo) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	users, err := r.All(ctx)
	if err != nil {
		return false, err
	}
	want := domain.NormalizeName(name)
	for _, u := range users {
		if excludeID != 0 && u.ID == excludeID {
			continue
		}
		if domain.NormalizeName(u.Name) == want {
			return true, nil
		}
	}
	return false, nil
}
