// Package lockfile serializes and parses the sectioned packages.lock
// format: header comments, then [MANUAL_PACKAGES], [AUTO_DEPENDENCIES],
// [REPOSITORIES], and [CHECKSUMS], each holding pipe-delimited records.
package lockfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/dnflock/dnflock/internal/core/domain"
)

const (
	sectionManual   = "[MANUAL_PACKAGES]"
	sectionAuto     = "[AUTO_DEPENDENCIES]"
	sectionRepos    = "[REPOSITORIES]"
	sectionChecksum = "[CHECKSUMS]"

	formatVersion = "1"
)

// Build assembles a lock artifact from the enriched records. Checksums
// cover the input name lists, so a later verify can detect hand edits to
// the package sections.
func Build(manual, auto []domain.PackageRecord, repos []domain.Repository, system string, now time.Time) *domain.LockArtifact {
	artifact := &domain.LockArtifact{
		GeneratedAt:  now.UTC().Truncate(time.Second),
		System:       system,
		Manual:       manual,
		Auto:         auto,
		Repositories: repos,
	}
	artifact.Checksums = domain.Checksums{
		ManualList: artifact.ManualNames().Checksum(),
		AutoList:   artifact.AutoNames().Checksum(),
	}
	return artifact
}

// Serialize renders the artifact as lock file text. Record order within a
// section follows the slice order of the artifact.
func Serialize(artifact *domain.LockArtifact) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# Generated: %s\n", artifact.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "# System: %s\n", artifact.System)
	fmt.Fprintf(&b, "# Format: %s\n", formatVersion)

	b.WriteString("\n" + sectionManual + "\n")
	for _, r := range artifact.Manual {
		b.WriteString(formatRecord(r))
	}

	b.WriteString("\n" + sectionAuto + "\n")
	for _, r := range artifact.Auto {
		b.WriteString(formatRecord(r))
	}

	b.WriteString("\n" + sectionRepos + "\n")
	for _, repo := range artifact.Repositories {
		fmt.Fprintf(&b, "%s|%s\n", repo.Name, enabledLabel(repo.Enabled))
	}

	b.WriteString("\n" + sectionChecksum + "\n")
	fmt.Fprintf(&b, "manual|%s\n", artifact.Checksums.ManualList)
	fmt.Fprintf(&b, "auto|%s\n", artifact.Checksums.AutoList)

	return []byte(b.String())
}

func formatRecord(r domain.PackageRecord) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d|%s\n",
		r.Name, r.Version, r.Release, r.Arch, r.SizeBytes, r.InstallTime, r.Repository)
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// Parse reads lock file text back into an artifact. Sections are located
// by scanning for their headers, never by fixed offsets, so reordered or
// absent sections parse as empty rather than corrupting neighbors.
// Unknown section headers are skipped for forward compatibility.
func Parse(data []byte) (*domain.LockArtifact, error) {
	artifact := &domain.LockArtifact{}
	section := ""

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if err := parseHeader(artifact, line); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(line, "[") {
			section = line
			continue
		}

		var err error
		switch section {
		case sectionManual:
			err = appendRecord(&artifact.Manual, line)
		case sectionAuto:
			err = appendRecord(&artifact.Auto, line)
		case sectionRepos:
			err = appendRepository(artifact, line)
		case sectionChecksum:
			err = setChecksum(artifact, line)
		case "":
			err = zerr.With(domain.ErrLockParse, "reason", "record before any section header")
		}
		if err != nil {
			return nil, zerr.With(err, "line", i+1)
		}
	}
	return artifact, nil
}

func parseHeader(artifact *domain.LockArtifact, line string) error {
	key, value, ok := strings.Cut(strings.TrimPrefix(line, "#"), ":")
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)

	switch strings.TrimSpace(key) {
	case "Generated":
		// Cut split at the first colon inside the timestamp.
		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(strings.TrimPrefix(line, "# Generated:")))
		if err != nil {
			return zerr.Wrap(domain.ErrLockParse, "invalid generation timestamp")
		}
		artifact.GeneratedAt = ts
	case "System":
		artifact.System = value
	}
	return nil
}

func appendRecord(dst *[]domain.PackageRecord, line string) error {
	fields := strings.Split(line, "|")
	if len(fields) != 7 {
		return zerr.With(domain.ErrLockParse, "reason", fmt.Sprintf("expected 7 fields, got %d", len(fields)))
	}
	size, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return zerr.With(domain.ErrLockParse, "reason", "invalid size field")
	}
	installed, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return zerr.With(domain.ErrLockParse, "reason", "invalid install time field")
	}
	if err := domain.ValidateName(fields[0]); err != nil {
		return err
	}
	*dst = append(*dst, domain.PackageRecord{
		Name:        fields[0],
		Version:     fields[1],
		Release:     fields[2],
		Arch:        fields[3],
		SizeBytes:   size,
		InstallTime: installed,
		Repository:  fields[6],
	})
	return nil
}

func appendRepository(artifact *domain.LockArtifact, line string) error {
	name, state, ok := strings.Cut(line, "|")
	if !ok {
		return zerr.With(domain.ErrLockParse, "reason", "repository line needs name|state")
	}
	artifact.Repositories = append(artifact.Repositories, domain.Repository{
		Name:    name,
		Enabled: state == "enabled",
	})
	return nil
}

func setChecksum(artifact *domain.LockArtifact, line string) error {
	list, sum, ok := strings.Cut(line, "|")
	if !ok {
		return zerr.With(domain.ErrLockParse, "reason", "checksum line needs list|digest")
	}
	switch list {
	case "manual":
		artifact.Checksums.ManualList = sum
	case "auto":
		artifact.Checksums.AutoList = sum
	default:
		return zerr.With(domain.ErrLockParse, "reason", "unknown checksum list "+list)
	}
	return nil
}
