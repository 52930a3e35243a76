package storage

import (
	"os"

	"github.com/gofrs/flock"

	"github.com/abatilo/taskmd/internal/checklist"
	taskerrors "github.com/abatilo/taskmd/internal/errors"
)

const fileMode = 0o644

// Store handles whole-file read-modify-write cycles on a task file.
type Store struct {
	path string
}

// NewStore creates a Store for the task file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Update runs one unguarded read-modify-write cycle. It is only safe when a
// single writer touches the file; concurrent callers may lose updates. Use
// UpdateLocked for multi-writer workflows.
func (s *Store) Update(fn func(*checklist.Document) error) error {
	return s.update(fn)
}

// UpdateLocked runs one read-modify-write cycle under an exclusive advisory
// lock on the task file itself. The lock is blocking with no timeout, held
// from before the read until after the write, and released on every exit
// path. Locking the task file (rather than a sidecar) keeps the protocol
// compatible with non-Go writers that flock the same file.
func (s *Store) UpdateLocked(fn func(*checklist.Document) error) error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return taskerrors.FileMissingError{Path: s.path}
	}

	fl := flock.New(s.path)
	if err := fl.Lock(); err != nil {
		return taskerrors.LockError{Path: s.path, Err: err}
	}
	defer func() {
		_ = fl.Unlock()
	}()

	return s.update(fn)
}

// update reads the file, applies fn to the decoded document, and truncates
// and rewrites the whole file. If fn fails the file is left untouched.
func (s *Store) update(fn func(*checklist.Document) error) error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return taskerrors.FileMissingError{Path: s.path}
	}
	if err != nil {
		return err
	}

	doc := checklist.Parse(data)
	if err := fn(doc); err != nil {
		return err
	}
	return os.WriteFile(s.path, doc.Bytes(), fileMode)
}
