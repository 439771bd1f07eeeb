package domain

import "time"

// Repository describes a configured package repository and whether it is
// currently enabled.
type Repository struct {
	Name    string
	Enabled bool
}

// Checksums carries the content hashes of the classification input name
// lists. They are an integrity signal for the inputs, not a validation of
// the enriched records.
type Checksums struct {
	ManualList string
	AutoList   string
}

// LockArtifact is the parsed form of the packages.lock file: a snapshot of
// classified packages with exact version, release, and repository metadata.
// It is created once per lock operation and consumed by verify, restore,
// and diff.
type LockArtifact struct {
	GeneratedAt  time.Time
	System       string
	Manual       []PackageRecord
	Auto         []PackageRecord
	Repositories []Repository
	Checksums    Checksums
}

// ManualNames returns the canonical name set of the locked manual records.
func (a *LockArtifact) ManualNames() PackageSet {
	names := make([]string, len(a.Manual))
	for i, r := range a.Manual {
		names[i] = r.Name
	}
	return NewPackageSet(names...)
}

// AutoNames returns the canonical name set of the locked auto records.
func (a *LockArtifact) AutoNames() PackageSet {
	names := make([]string, len(a.Auto))
	for i, r := range a.Auto {
		names[i] = r.Name
	}
	return NewPackageSet(names...)
}
