// Package flatfile persists records as plain-text line-oriented files
// on the removable medium: users as one JSON object per line,
// attendance events as one delimited line per event. Both stay
// human-inspectable and survive a torn trailing line; a malformed line
// is skipped, never fatal to a scan.
package flatfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Yulio1919k/IoT-Biometric-Attendance/internal/kiosk/store"
)

const (
	usersFile      = "users.jsonl"
	attendanceFile = "attendance.log"
)

type Store struct {
	dir    string
	logger *slog.Logger

	// One writer at a time. The dispatcher already serializes
	// requests; this guards direct store use from tests and tooling.
	mu sync.Mutex
}

// New returns a store rooted at dir. The directory is not required to
// exist yet: an absent medium reads as an empty store, and write paths
// report store.ErrUnavailable if it cannot be created on demand.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) Users() store.Users           { return &usersRepo{s: s} }
func (s *Store) Attendance() store.Attendance { return &attendanceRepo{s: s} }

func (s *Store) Close() error { return nil }

// Ping probes that the medium is mounted and writable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	probe, err := os.CreateTemp(s.dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// appendLine appends one record line, creating the file if needed. The
// file is synced so a power cut right after a commit keeps the line.
func (s *Store) appendLine(name string, line []byte) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append %s: %w", name, err)
	}
	return f.Sync()
}

// rewriteFile writes all lines to a temp file in the same directory and
// renames it over the original. Readers see either the old or the new
// complete file, never a partial one.
func (s *Store) rewriteFile(name string, lines [][]byte) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	tmpName := tmp.Name()

	for _, line := range lines {
		if _, err := tmp.Write(append(line, '\n')); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
			return fmt.Errorf("rewrite %s: %w", name, err)
		}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("rewrite %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rewrite %s: %w", name, err)
	}
	return os.Rename(tmpName, s.path(name))
}
