package activeprofile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"tunedadm/internal/fileutil"
	"tunedadm/internal/logging"
)

const recordPerm = 0o644

// PersistenceError reports a record that could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot write profile into %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store reads and writes the active-profile record at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// New returns a store for the record at path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logging.NewComponentLogger(logger, "activeprofile")}
}

// Path returns the record location.
func (s *Store) Path() string {
	return s.path
}

// Read returns the recorded profile names in order. ok is false when the
// record is absent, unreadable, or lists no names.
func (s *Store) Read() (names []string, ok bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("active profile record unreadable", logging.String(logging.FieldPath, s.path), logging.Error(err))
		}
		return nil, false
	}
	names = Parse(string(data))
	return names, len(names) > 0
}

// Parse splits record content into profile names, dropping line terminators
// and blank lines.
func Parse(content string) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}

// Format renders names in record form.
func Format(names []string) string {
	return strings.Join(names, "\n")
}

// Write replaces the record with names. The previous record stays intact if
// the write fails.
func (s *Store) Write(names []string) error {
	if err := fileutil.WriteFileAtomic(s.path, []byte(Format(names)), recordPerm); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	s.logger.Debug("active profile record written", logging.String(logging.FieldPath, s.path), logging.Strings(logging.FieldProfiles, names))
	return nil
}

// Snapshot is the raw record state captured before a change.
type Snapshot struct {
	data   []byte
	exists bool
}

// Exists reports whether the record was present when captured.
func (s Snapshot) Exists() bool { return s.exists }

// Snapshot captures the current record so it can be put back with Restore.
func (s *Store) Snapshot() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("read active profile record: %w", err)
	}
	return Snapshot{data: data, exists: true}, nil
}

// Restore puts back a previously captured record, removing the file when the
// record did not exist at capture time.
func (s *Store) Restore(snap Snapshot) error {
	if !snap.exists {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &PersistenceError{Path: s.path, Err: err}
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(s.path, snap.data, recordPerm); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}
