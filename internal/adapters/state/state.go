// Package state persists the captured and analyzed package name lists as
// plain newline-separated text files in the state directory.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/dnflock/dnflock/internal/core/domain"
)

// Store implements ports.ListStore on a state directory.
type Store struct {
	root string
	now  func() time.Time
}

// NewStore creates a list store rooted at the given state directory. The
// directory is created on first write, not here.
func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root), now: time.Now}
}

// Root returns the state directory path.
func (s *Store) Root() string {
	return s.root
}

// ReadDefaults returns the captured default set.
func (s *Store) ReadDefaults() (domain.PackageSet, error) {
	return s.readList(domain.DefaultsFileName, domain.ErrDefaultsNotCaptured)
}

// WriteDefaults captures the default set.
func (s *Store) WriteDefaults(defaults domain.PackageSet) error {
	return s.writeList(domain.DefaultsFileName, defaults)
}

// ReadManual returns the analyzed manual set.
func (s *Store) ReadManual() (domain.PackageSet, error) {
	return s.readList(domain.ManualFileName, domain.ErrManualListMissing)
}

// ReadAuto returns the analyzed auto-dependency set.
func (s *Store) ReadAuto() (domain.PackageSet, error) {
	return s.readList(domain.AutoFileName, domain.ErrManualListMissing)
}

// WriteClassification persists the manual and auto lists. Existing lists
// are moved into a timestamped backup directory first, so a bad analyze
// run can be undone by hand.
func (s *Store) WriteClassification(c domain.Classification) error {
	if err := s.backup(domain.ManualFileName, domain.AutoFileName); err != nil {
		return err
	}
	if err := s.writeList(domain.ManualFileName, c.Manual); err != nil {
		return err
	}
	return s.writeList(domain.AutoFileName, c.Auto)
}

func (s *Store) readList(name string, missing error) (domain.PackageSet, error) {
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, missing
		}
		return nil, zerr.Wrap(err, "failed to read "+name)
	}
	return domain.ParsePackageSet(string(data)), nil
}

func (s *Store) writeList(name string, set domain.PackageSet) error {
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}
	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, []byte(set.String()), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write "+name)
	}
	return nil
}

// backup moves the named files, if present, into backups/<timestamp>/.
func (s *Store) backup(names ...string) error {
	var present []string
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(s.root, name)); err == nil {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return nil
	}

	dir := filepath.Join(s.root, domain.BackupDirName, s.now().Format("20060102-150405"))
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create backup directory")
	}
	for _, name := range present {
		src := filepath.Join(s.root, name)
		dst := filepath.Join(dir, name)
		if err := os.Rename(src, dst); err != nil {
			return zerr.Wrap(err, fmt.Sprintf("failed to back up %s", name))
		}
	}
	return nil
}
