// Package gather implements the parallel metadata enrichment pass: it
// turns a package name set into a list of fully populated records by
// fanning lookups out over the chunked worker pool.
package gather

import (
	"context"
	"fmt"

	"github.com/dnflock/dnflock/internal/core/domain"
	"github.com/dnflock/dnflock/internal/core/ports"
	"github.com/dnflock/dnflock/internal/engine/pool"
)

// Gatherer enriches package name lists with per-package metadata.
type Gatherer struct {
	query  ports.QueryAdapter
	logger ports.Logger
}

// New creates a Gatherer backed by the given query adapter.
func New(query ports.QueryAdapter, logger ports.Logger) *Gatherer {
	return &Gatherer{query: query, logger: logger}
}

// Records looks up metadata and origin repository for every name, in
// parallel chunks, and returns the records in the input order of names.
// A failed metadata lookup skips the package (logged, never fatal); a
// failed repository lookup degrades to an empty repository field. The
// tracker advances once per name, including skipped ones.
func (g *Gatherer) Records(
	ctx context.Context,
	names domain.PackageSet,
	opts pool.Options,
	tracker *pool.Tracker,
) []domain.PackageRecord {
	outcomes := pool.Run(ctx, names, opts, func(ctx context.Context, name string) (domain.PackageRecord, error) {
		defer tracker.Advance(1)

		record, err := g.query.Metadata(ctx, name)
		if err != nil {
			return domain.PackageRecord{}, err
		}

		repo, err := g.query.Repository(ctx, name)
		if err != nil {
			// Degraded record: the package stays in the snapshot, its
			// origin is simply unknown.
			repo = ""
		}
		record.Repository = repo
		return record, nil
	})

	records := make([]domain.PackageRecord, 0, len(outcomes))
	skipped := 0
	for i, o := range outcomes {
		if o.Err != nil {
			skipped++
			g.logger.Warn(fmt.Sprintf("skipping %s: %v", names[i], o.Err))
			continue
		}
		records = append(records, o.Value)
	}
	if skipped > 0 {
		g.logger.Warn(fmt.Sprintf("%d of %d packages skipped during metadata gathering", skipped, len(names)))
	}
	return records
}
