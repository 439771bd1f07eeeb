package verify

import (
	"context"

	"github.com/dnflock/dnflock/internal/core/domain"
	"github.com/dnflock/dnflock/internal/engine/pool"
)

// DiffReport compares the locked manual set with the current
// classification: packages added or removed since the lock, and packages
// present in both whose installed version moved.
type DiffReport struct {
	Added   domain.PackageSet
	Removed domain.PackageSet
	Changed []Mismatch
}

// Empty reports whether nothing changed since the lock.
func (r *DiffReport) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// Diff computes the lock-versus-current difference. Version comparison
// for surviving packages goes through the worker pool, one lookup per
// record; a failed lookup counts the package as removed.
func (v *Verifier) Diff(
	ctx context.Context,
	artifact *domain.LockArtifact,
	currentManual domain.PackageSet,
	opts pool.Options,
	tracker *pool.Tracker,
) *DiffReport {
	lockedNames := artifact.ManualNames()
	report := &DiffReport{
		Added:   domain.Difference(currentManual, lockedNames),
		Removed: domain.Difference(lockedNames, currentManual),
	}

	surviving := domain.Intersection(lockedNames, currentManual)
	records := make([]domain.PackageRecord, 0, len(surviving))
	for _, r := range artifact.Manual {
		if surviving.Contains(r.Name) {
			records = append(records, r)
		}
	}

	outcomes := pool.Run(ctx, records, opts,
		func(ctx context.Context, locked domain.PackageRecord) (domain.PackageRecord, error) {
			defer tracker.Advance(1)
			return v.query.Metadata(ctx, locked.Name)
		})

	for i, o := range outcomes {
		locked := records[i]
		switch {
		case o.Err != nil:
			report.Removed = domain.Union(report.Removed, domain.NewPackageSet(locked.Name))
		case o.Value.Version != locked.Version || o.Value.Release != locked.Release:
			report.Changed = append(report.Changed, Mismatch{
				Name:    locked.Name,
				Locked:  locked.EVR(),
				Current: o.Value.EVR(),
			})
		}
	}
	return report
}
