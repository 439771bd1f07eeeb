package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/dnflock/dnflock/internal/core/domain"
)

// Store implements ports.LockStore on a single file in the state
// directory.
type Store struct {
	path string
}

// NewStore creates a lock store writing to the given state directory.
func NewStore(stateDir string) *Store {
	return &Store{path: filepath.Join(filepath.Clean(stateDir), domain.LockFileName)}
}

// Path returns the lock file path.
func (s *Store) Path() string {
	return s.path
}

// Write serializes the artifact to the lock file. The write goes through
// a temp file and rename so a crash never leaves a half-written lock.
func (s *Store) Write(artifact *domain.LockArtifact) error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".lock-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp lock file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(Serialize(artifact)); err != nil {
		tmp.Close()
		return zerr.Wrap(err, "failed to write lock file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close lock file")
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set lock file permissions")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.Wrap(err, "failed to replace lock file")
	}
	return nil
}

// Read loads and parses the stored artifact.
func (s *Store) Read() (*domain.LockArtifact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrLockNotFound
		}
		return nil, zerr.Wrap(err, "failed to read lock file")
	}
	return Parse(data)
}
