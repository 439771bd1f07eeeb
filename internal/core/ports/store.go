package ports

import "github.com/dnflock/dnflock/internal/core/domain"

// ListStore persists the captured and analyzed package name lists in the
// state directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ListStore interface {
	// ReadDefaults returns the captured default set, or
	// domain.ErrDefaultsNotCaptured when init has not run yet.
	ReadDefaults() (domain.PackageSet, error)

	// WriteDefaults captures the default set.
	WriteDefaults(defaults domain.PackageSet) error

	// ReadManual returns the analyzed manual set, or
	// domain.ErrManualListMissing when analyze has not run yet.
	ReadManual() (domain.PackageSet, error)

	// ReadAuto returns the analyzed auto-dependency set, or
	// domain.ErrManualListMissing when analyze has not run yet.
	ReadAuto() (domain.PackageSet, error)

	// WriteClassification persists the manual and auto lists, backing up
	// any previous lists first.
	WriteClassification(c domain.Classification) error

	// Root returns the state directory path.
	Root() string
}

// LockStore persists the lock artifact.
type LockStore interface {
	// Write serializes and stores the artifact.
	Write(artifact *domain.LockArtifact) error

	// Read loads and parses the stored artifact, or domain.ErrLockNotFound
	// when none exists.
	Read() (*domain.LockArtifact, error)

	// Path returns the lock file path.
	Path() string
}

// Archiver packs and unpacks the state directory for export and import.
// The archive byte format is a collaborator concern, not a core one.
type Archiver interface {
	Pack(srcDir, destFile string) error
	Unpack(srcFile, destDir string) error
}
