// Package ports defines the interfaces between the dnflock core and its
// collaborators: the package manager, the state directory, the lock file,
// and the terminal.
package ports

import (
	"context"

	"github.com/dnflock/dnflock/internal/core/domain"
)

// QueryAdapter abstracts the package manager's read-only query surface.
// All methods block on an external process invocation; implementations must
// honor the context.
//
//go:generate mockgen -source=query.go -destination=mocks/mock_query.go -package=mocks
type QueryAdapter interface {
	// ListInstalled returns the names of all installed packages.
	ListInstalled(ctx context.Context) (domain.PackageSet, error)

	// ListUserInstalled returns the names of packages the user explicitly
	// requested.
	ListUserInstalled(ctx context.Context) (domain.PackageSet, error)

	// Metadata returns the installed metadata for one package.
	// Returns domain.ErrPackageNotFound when the package is not installed.
	Metadata(ctx context.Context, name string) (domain.PackageRecord, error)

	// Repository returns the originating repository of an installed package,
	// or "" when it cannot be determined.
	Repository(ctx context.Context, name string) (string, error)

	// ListGroupPackages returns the mandatory and default members of a
	// package group. Used once, while capturing the defaults set.
	ListGroupPackages(ctx context.Context, groupID string) (domain.PackageSet, error)

	// ListRepositories returns all configured repositories.
	ListRepositories(ctx context.Context) ([]domain.Repository, error)
}

// Installer abstracts the package manager's install surface. Invoked only
// by the restore flow.
type Installer interface {
	// Install installs the given name-version-release specs.
	Install(ctx context.Context, specs []string) error
}
