package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/dnflock/dnflock/internal/adapters/lockfile"
	"github.com/dnflock/dnflock/internal/core/domain"
	"github.com/dnflock/dnflock/internal/engine/pool"
)

// defaultGroups are the comps groups whose members count as part of the
// base installation.
var defaultGroups = []string{"core", "minimal-environment"}

// Init captures the default package set: the union of the base group
// members, narrowed to what is actually installed. When no group
// metadata is available the whole installed set is taken as the
// baseline, which makes everything installed so far count as default.
func (a *App) Init(ctx context.Context) error {
	installed, err := a.query.ListInstalled(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to list installed packages")
	}

	groupUnion := domain.PackageSet{}
	for _, group := range defaultGroups {
		members, err := a.query.ListGroupPackages(ctx, group)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("group %s unavailable: %v", group, err))
			continue
		}
		groupUnion = domain.Union(groupUnion, members)
	}

	defaults := domain.Intersection(groupUnion, installed)
	if len(defaults) == 0 {
		a.logger.Warn("no group metadata available, treating all installed packages as default")
		defaults = installed
	}

	if err := a.lists.WriteDefaults(defaults); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Captured %d default packages to %s\n", len(defaults), a.lists.Root())
	return nil
}

// classify queries the live system and partitions it against the
// captured defaults. The two package manager queries run concurrently;
// classification waits for both.
func (a *App) classify(ctx context.Context) (domain.PackageSet, domain.Classification, error) {
	defaults, err := a.lists.ReadDefaults()
	if err != nil {
		return nil, domain.Classification{}, err
	}

	var installed, user domain.PackageSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		installed, err = a.query.ListInstalled(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = a.query.ListUserInstalled(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Classification{}, zerr.Wrap(err, "failed to query installed packages")
	}

	c, err := domain.Classify(installed, user, defaults)
	if err != nil {
		return nil, domain.Classification{}, err
	}
	return installed, c, nil
}

// Analyze classifies the live system and persists the manual and auto
// lists.
func (a *App) Analyze(ctx context.Context) error {
	installed, c, err := a.classify(ctx)
	if err != nil {
		return err
	}
	if err := a.lists.WriteClassification(c); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Analyzed %d installed packages: %d default, %d manual, %d auto\n",
		len(installed), len(c.Defaults), len(c.Manual), len(c.Auto))
	return nil
}

// Lock enriches the analyzed lists with live metadata and writes the
// lock artifact.
func (a *App) Lock(ctx context.Context) error {
	manual, err := a.lists.ReadManual()
	if err != nil {
		return err
	}
	auto, err := a.lists.ReadAuto()
	if err != nil {
		return err
	}

	tracker := pool.NewTracker(int64(len(manual)+len(auto)), a.progress("Gathering metadata..."))
	manualRecords := a.gatherer.Records(ctx, manual, a.poolOptions(), tracker)
	autoRecords := a.gatherer.Records(ctx, auto, a.poolOptions(), tracker)
	tracker.Finish()

	repos, err := a.query.ListRepositories(ctx)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("repository listing unavailable: %v", err))
		repos = nil
	}

	artifact := lockfile.Build(manualRecords, autoRecords, repos, systemLabel(), time.Now())
	if err := a.locks.Write(artifact); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Locked %d manual and %d auto packages to %s\n",
		len(artifact.Manual), len(artifact.Auto), a.locks.Path())
	return nil
}

// Verify checks the live system against the lock artifact and prints the
// report. Drift is signaled through ErrDriftDetected so the CLI can exit
// non-zero without re-printing anything.
func (a *App) Verify(ctx context.Context) error {
	artifact, err := a.locks.Read()
	if err != nil {
		return err
	}
	_, c, err := a.classify(ctx)
	if err != nil {
		return err
	}

	tracker := pool.NewTracker(int64(len(artifact.Manual)), a.progress("Verifying lock..."))
	report := a.verifier.Run(ctx, artifact, c.Manual, a.poolOptions(), tracker)
	tracker.Finish()

	a.reporter.Verify(report)
	if !report.Clean() {
		return domain.ErrDriftDetected
	}
	return nil
}

// Diff prints what changed between the lock artifact and the current
// classification.
func (a *App) Diff(ctx context.Context) error {
	artifact, err := a.locks.Read()
	if err != nil {
		return err
	}
	_, c, err := a.classify(ctx)
	if err != nil {
		return err
	}

	tracker := pool.NewTracker(int64(len(artifact.Manual)), a.progress("Comparing..."))
	report := a.verifier.Diff(ctx, artifact, c.Manual, a.poolOptions(), tracker)
	tracker.Finish()

	a.reporter.Diff(report)
	return nil
}

// Restore installs the locked manual packages that are missing from the
// live system, pinned to their locked version-release.
func (a *App) Restore(ctx context.Context, dryRun bool) error {
	artifact, err := a.locks.Read()
	if err != nil {
		return err
	}
	installed, err := a.query.ListInstalled(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to list installed packages")
	}

	var specs []string
	for _, r := range artifact.Manual {
		if !installed.Contains(r.Name) {
			specs = append(specs, r.Spec())
		}
	}
	if len(specs) == 0 {
		fmt.Fprintln(a.out, "All locked manual packages are installed.")
		return nil
	}

	if dryRun {
		fmt.Fprintf(a.out, "Would install %d packages:\n", len(specs))
		for _, s := range specs {
			fmt.Fprintf(a.out, "  %s\n", s)
		}
		return nil
	}

	if err := a.installer.Install(ctx, specs); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Installed %d packages from lock file.\n", len(specs))
	return nil
}

// Stats prints the classification summary, including the installed size
// of the manual set.
func (a *App) Stats(ctx context.Context) error {
	installed, c, err := a.classify(ctx)
	if err != nil {
		return err
	}

	tracker := pool.NewTracker(int64(len(c.Manual)), a.progress("Sizing manual packages..."))
	manualRecords := a.gatherer.Records(ctx, c.Manual, a.poolOptions(), tracker)
	tracker.Finish()

	a.reporter.Stats(domain.ComputeStats(installed, c, manualRecords))
	return nil
}

// Tree prints the analyzed manual set grouped by category.
func (a *App) Tree(_ context.Context) error {
	manual, err := a.lists.ReadManual()
	if err != nil {
		return err
	}
	auto, err := a.lists.ReadAuto()
	if err != nil {
		return err
	}
	a.reporter.Tree(manual, len(auto))
	return nil
}

// Export packs the state directory into a gzipped tarball.
func (a *App) Export(_ context.Context, destFile string) error {
	if err := a.archiver.Pack(a.lists.Root(), destFile); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported state to %s\n", destFile)
	return nil
}

// Import unpacks an exported state archive into the state directory.
func (a *App) Import(_ context.Context, srcFile string) error {
	if err := a.archiver.Unpack(srcFile, a.lists.Root()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported state from %s\n", srcFile)
	return nil
}
