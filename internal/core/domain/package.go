package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageRecord is the enriched per-package metadata produced by the
// gather pass. Repository may be empty when the originating repository
// could not be determined (removed or local repo).
type PackageRecord struct {
	Name        string
	Version     string
	Release     string
	Arch        string
	SizeBytes   int64
	InstallTime int64
	Repository  string
}

// EVR returns the version-release pair, e.g. "2.41.0-1.fc39".
func (r PackageRecord) EVR() string {
	return r.Version + "-" + r.Release
}

// Spec returns the install spec "name-version-release" understood by the
// package manager, e.g. "git-2.41.0-1.fc39".
func (r PackageRecord) Spec() string {
	return r.Name + "-" + r.Version + "-" + r.Release
}

// ValidateName rejects names that cannot be represented in the lock
// artifact's pipe-delimited records.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidPackageName
	}
	if strings.ContainsAny(name, "|\n") {
		return zerr.With(ErrInvalidPackageName, "name", name)
	}
	return nil
}

// ParseNVRA splits a full "name-version-release.arch" label into its
// components. The name itself may contain hyphens, so version and release
// are taken from the last two hyphen-separated fields and the architecture
// from the final dot-separated suffix.
func ParseNVRA(label string) (name, version, release, arch string, err error) {
	lastDot := strings.LastIndex(label, ".")
	if lastDot < 0 {
		return "", "", "", "", zerr.With(ErrMalformedLabel, "label", label)
	}
	arch = label[lastDot+1:]
	nvr := label[:lastDot]

	relSep := strings.LastIndex(nvr, "-")
	if relSep < 0 {
		return "", "", "", "", zerr.With(ErrMalformedLabel, "label", label)
	}
	release = nvr[relSep+1:]

	verSep := strings.LastIndex(nvr[:relSep], "-")
	if verSep < 0 {
		return "", "", "", "", zerr.With(ErrMalformedLabel, "label", label)
	}
	version = nvr[verSep+1 : relSep]
	name = nvr[:verSep]

	if name == "" || version == "" || release == "" || arch == "" {
		return "", "", "", "", zerr.With(ErrMalformedLabel, "label", label)
	}
	return name, version, release, arch, nil
}
