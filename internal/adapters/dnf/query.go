package dnf

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/dnflock/dnflock/internal/core/domain"
)

const metadataFormat = "%{NAME}|%{VERSION}|%{RELEASE}|%{ARCH}|%{SIZE}|%{INSTALLTIME}\n"

// Query implements ports.QueryAdapter against rpm and dnf. Repository
// lookups go through a persistent cache because dnf repoquery is slow and
// the originating repository of an installed package never changes.
type Query struct {
	run   Runner
	cache *RepoCache
}

// NewQuery creates a query adapter. cache may be nil to disable
// repository caching.
func NewQuery(run Runner, cache *RepoCache) *Query {
	return &Query{run: run, cache: cache}
}

// ListInstalled returns the names of all installed packages.
func (q *Query) ListInstalled(ctx context.Context) (domain.PackageSet, error) {
	out, err := q.run.Run(ctx, "rpm", "-qa", "--qf", "%{NAME}\n")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list installed packages")
	}
	return domain.ParsePackageSet(string(out)), nil
}

// ListUserInstalled returns the names of packages the user explicitly
// requested, as recorded by the package manager's reason tracking.
func (q *Query) ListUserInstalled(ctx context.Context) (domain.PackageSet, error) {
	out, err := q.run.Run(ctx, "dnf", "repoquery", "--userinstalled", "--qf", "%{name}\n")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list user-installed packages")
	}
	return domain.ParsePackageSet(string(out)), nil
}

// Metadata returns the installed metadata for one package. rpm exits
// non-zero for unknown packages, which maps to ErrPackageNotFound.
func (q *Query) Metadata(ctx context.Context, name string) (domain.PackageRecord, error) {
	out, err := q.run.Run(ctx, "rpm", "-q", "--qf", metadataFormat, name)
	if err != nil {
		return domain.PackageRecord{}, zerr.With(domain.ErrPackageNotFound, "name", name)
	}
	return parseMetadata(out, name)
}

func parseMetadata(out []byte, name string) (domain.PackageRecord, error) {
	// rpm prints one line per matching package; multiple installed archs
	// share name and version, the first line wins.
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	fields := strings.Split(line, "|")
	if len(fields) != 6 {
		return domain.PackageRecord{}, zerr.With(zerr.New("unexpected rpm query output"), "name", name)
	}

	size, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		size = 0
	}
	installed, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		installed = 0
	}
	return domain.PackageRecord{
		Name:        fields[0],
		Version:     fields[1],
		Release:     fields[2],
		Arch:        fields[3],
		SizeBytes:   size,
		InstallTime: installed,
	}, nil
}

// Repository returns the originating repository of an installed package.
// Cache hits never touch dnf; misses are written back on success.
func (q *Query) Repository(ctx context.Context, name string) (string, error) {
	if q.cache != nil {
		if repo, ok := q.cache.Get(name); ok {
			return repo, nil
		}
	}

	out, err := q.run.Run(ctx, "dnf", "repoquery", "--installed", "--qf", "%{from_repo}\n", name)
	if err != nil {
		return "", zerr.Wrap(err, "failed to query package repository")
	}

	repo, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	if q.cache != nil && repo != "" {
		if err := q.cache.Put(name, repo); err != nil {
			return repo, err
		}
	}
	return repo, nil
}

// ListGroupPackages returns the mandatory and default members of a
// package group, parsed from dnf group info output.
func (q *Query) ListGroupPackages(ctx context.Context, groupID string) (domain.PackageSet, error) {
	out, err := q.run.Run(ctx, "dnf", "group", "info", groupID)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to query package group"), "group", groupID)
	}
	return parseGroupInfo(out), nil
}

// parseGroupInfo collects the indented package entries under the
// mandatory and default headings; optional packages are not part of a
// default installation.
func parseGroupInfo(out []byte) domain.PackageSet {
	var names []string
	collecting := false

	for _, line := range strings.Split(string(out), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasSuffix(trimmed, "Packages:"):
			collecting = strings.HasPrefix(trimmed, "Mandatory") || strings.HasPrefix(trimmed, "Default")
		case collecting && strings.HasPrefix(line, " ") && trimmed != "":
			names = append(names, trimmed)
		case trimmed == "":
			continue
		case !strings.HasPrefix(line, " "):
			collecting = false
		}
	}
	return domain.NewPackageSet(names...)
}

// ListRepositories returns all configured repositories and their enabled
// state, parsed from dnf repolist output.
func (q *Query) ListRepositories(ctx context.Context) ([]domain.Repository, error) {
	out, err := q.run.Run(ctx, "dnf", "repolist", "--all")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list repositories")
	}
	return parseRepoList(out), nil
}

func parseRepoList(out []byte) []domain.Repository {
	var repos []domain.Repository
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] == "repo" {
			continue
		}
		status := fields[len(fields)-1]
		if status != "enabled" && status != "disabled" {
			continue
		}
		repos = append(repos, domain.Repository{
			Name:    fields[0],
			Enabled: status == "enabled",
		})
	}
	return repos
}
