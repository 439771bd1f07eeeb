// Package verify checks a lock artifact against the live system state.
package verify

import (
	"context"
	"fmt"

	"github.com/dnflock/dnflock/internal/core/domain"
	"github.com/dnflock/dnflock/internal/core/ports"
	"github.com/dnflock/dnflock/internal/engine/pool"
)

// Mismatch records a package whose installed version differs from the
// locked one. Locked and Current are version-release strings.
type Mismatch struct {
	Name    string
	Locked  string
	Current string
}

// String renders the mismatch as shown in reports.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: locked=%s, current=%s", m.Name, m.Locked, m.Current)
}

// Report is the outcome of one verification pass. Missing entries are
// formatted name-version-release specs; Extra holds packages that are
// user-installed now but absent from the locked manual set. All lists are
// computed from the complete result set; truncation is a rendering
// concern.
type Report struct {
	Total             int
	OK                int
	Missing           []string
	Mismatched        []Mismatch
	Extra             domain.PackageSet
	IntegrityWarnings []string
}

// Clean reports whether the live state matches the lock exactly.
func (r *Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0 && len(r.Extra) == 0
}

// Verifier re-queries live package state against a parsed lock artifact.
type Verifier struct {
	query ports.QueryAdapter
}

// New creates a Verifier backed by the given query adapter.
func New(query ports.QueryAdapter) *Verifier {
	return &Verifier{query: query}
}

// Run verifies every locked manual record against the live system: one
// metadata lookup per record through the worker pool. A failed lookup
// means the package is missing; there are no retries, local queries are
// expected to fail fast. currentManual is the freshly classified manual
// set used to compute the extra list.
func (v *Verifier) Run(
	ctx context.Context,
	artifact *domain.LockArtifact,
	currentManual domain.PackageSet,
	opts pool.Options,
	tracker *pool.Tracker,
) *Report {
	outcomes := pool.Run(ctx, artifact.Manual, opts,
		func(ctx context.Context, locked domain.PackageRecord) (domain.PackageRecord, error) {
			defer tracker.Advance(1)
			return v.query.Metadata(ctx, locked.Name)
		})

	report := &Report{Total: len(artifact.Manual)}
	for i, o := range outcomes {
		locked := artifact.Manual[i]
		switch {
		case o.Err != nil:
			report.Missing = append(report.Missing, locked.Spec())
		case o.Value.Version != locked.Version || o.Value.Release != locked.Release:
			report.Mismatched = append(report.Mismatched, Mismatch{
				Name:    locked.Name,
				Locked:  locked.EVR(),
				Current: o.Value.EVR(),
			})
		default:
			report.OK++
		}
	}

	report.Extra = domain.Difference(currentManual, artifact.ManualNames())
	report.IntegrityWarnings = integrityWarnings(artifact)
	return report
}

// integrityWarnings recomputes the name-list checksums recorded at lock
// time. A mismatch means the artifact was edited after generation; it is
// surfaced as a warning, never a refusal to operate.
func integrityWarnings(artifact *domain.LockArtifact) []string {
	var warnings []string
	if got := artifact.ManualNames().Checksum(); got != artifact.Checksums.ManualList {
		warnings = append(warnings, fmt.Sprintf(
			"manual list checksum mismatch: recorded %s, computed %s",
			artifact.Checksums.ManualList, got))
	}
	if got := artifact.AutoNames().Checksum(); got != artifact.Checksums.AutoList {
		warnings = append(warnings, fmt.Sprintf(
			"auto list checksum mismatch: recorded %s, computed %s",
			artifact.Checksums.AutoList, got))
	}
	return warnings
}
