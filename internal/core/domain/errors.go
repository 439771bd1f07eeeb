package domain

import "go.trai.ch/zerr"

var (
	// ErrDefaultsNotCaptured is returned when classification is requested
	// before the default package set has been captured.
	ErrDefaultsNotCaptured = zerr.New("default package list not captured, run 'dnflock init' first")

	// ErrManualListMissing is returned when an operation needs the analyzed
	// manual list and none exists yet.
	ErrManualListMissing = zerr.New("manual package list missing, run 'dnflock analyze' first")

	// ErrLockNotFound is returned when verify, restore, or diff is requested
	// without an existing lock artifact.
	ErrLockNotFound = zerr.New("lock file not found, run 'dnflock lock' first")

	// ErrLockParse is returned when the lock artifact text cannot be parsed.
	ErrLockParse = zerr.New("malformed lock file")

	// ErrPackageNotFound is returned by metadata lookups for packages that
	// are not installed.
	ErrPackageNotFound = zerr.New("package not installed")

	// ErrUnsortedInput is returned when a set operation receives a
	// non-canonical (unsorted or duplicated) package set from external data.
	ErrUnsortedInput = zerr.New("package set is not sorted and deduplicated")

	// ErrInvalidPackageName is returned for names that cannot appear in
	// pipe-delimited lock records.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrMalformedLabel is returned when a name-version-release.arch label
	// cannot be split into its components.
	ErrMalformedLabel = zerr.New("malformed package label")

	// ErrArchiveMissingState is returned when an imported archive does not
	// contain the expected state files.
	ErrArchiveMissingState = zerr.New("archive does not contain dnflock state")

	// ErrDriftDetected is returned by verify when the live system no longer
	// matches the lock artifact. The report has already been printed when
	// this error surfaces.
	ErrDriftDetected = zerr.New("system state differs from lock file")
)
