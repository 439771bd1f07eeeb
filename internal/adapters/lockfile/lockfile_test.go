package lockfile_test

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnflock/dnflock/internal/adapters/lockfile"
	"github.com/dnflock/dnflock/internal/core/domain"
)

var (
	recGit = domain.PackageRecord{
		Name: "git", Version: "2.41.0", Release: "1.fc39", Arch: "x86_64",
		SizeBytes: 12345678, InstallTime: 1700000000, Repository: "fedora",
	}
	recVim = domain.PackageRecord{
		Name: "vim-enhanced", Version: "9.0.2120", Release: "1.fc39", Arch: "x86_64",
		SizeBytes: 4455667, InstallTime: 1700000100, Repository: "updates",
	}
	recPcre = domain.PackageRecord{
		Name: "pcre2", Version: "10.42", Release: "1.fc39.2", Arch: "x86_64",
		SizeBytes: 652012, InstallTime: 1699999000, Repository: "",
	}
)

func TestBuild_ChecksumsCoverNameLists(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	artifact := lockfile.Build(
		[]domain.PackageRecord{recGit, recVim},
		[]domain.PackageRecord{recPcre},
		nil, "fedora-39", now,
	)

	assert.Equal(t, now, artifact.GeneratedAt)
	assert.Equal(t, domain.NewPackageSet("git", "vim-enhanced").Checksum(), artifact.Checksums.ManualList)
	assert.Equal(t, domain.NewPackageSet("pcre2").Checksum(), artifact.Checksums.AutoList)
	assert.NotEqual(t, artifact.Checksums.ManualList, artifact.Checksums.AutoList)
}

func TestSerializeParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		manual []domain.PackageRecord
		auto   []domain.PackageRecord
		repos  []domain.Repository
	}{
		{name: "empty"},
		{
			name:   "single manual",
			manual: []domain.PackageRecord{recGit},
		},
		{
			name:   "full",
			manual: []domain.PackageRecord{recGit, recVim},
			auto:   []domain.PackageRecord{recPcre},
			repos: []domain.Repository{
				{Name: "fedora", Enabled: true},
				{Name: "updates-testing", Enabled: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := lockfile.Build(tt.manual, tt.auto, tt.repos,
				"fedora-39", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))

			parsed, err := lockfile.Parse(lockfile.Serialize(original))
			require.NoError(t, err)

			assert.Equal(t, original.GeneratedAt, parsed.GeneratedAt)
			assert.Equal(t, original.System, parsed.System)
			assert.Equal(t, original.Manual, parsed.Manual)
			assert.Equal(t, original.Auto, parsed.Auto)
			assert.Equal(t, original.Repositories, parsed.Repositories)
			assert.Equal(t, original.Checksums, parsed.Checksums)
		})
	}
}

func TestParse_SectionsLocatedByHeader(t *testing.T) {
	// Sections out of canonical order still parse into the right lists.
	input := "# Generated: 2024-01-15T10:30:00Z\n" +
		"# System: fedora-39\n" +
		"# Format: 1\n" +
		"[AUTO_DEPENDENCIES]\n" +
		"pcre2|10.42|1.fc39.2|x86_64|652012|1699999000|\n" +
		"[MANUAL_PACKAGES]\n" +
		"git|2.41.0|1.fc39|x86_64|12345678|1700000000|fedora\n"

	artifact, err := lockfile.Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, artifact.Manual, 1)
	require.Len(t, artifact.Auto, 1)
	assert.Equal(t, "git", artifact.Manual[0].Name)
	assert.Equal(t, "pcre2", artifact.Auto[0].Name)
	assert.Equal(t, "fedora-39", artifact.System)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "record before section",
			input: "git|2.41.0|1.fc39|x86_64|1|1|fedora\n",
		},
		{
			name:  "wrong field count",
			input: "[MANUAL_PACKAGES]\ngit|2.41.0|1.fc39\n",
		},
		{
			name:  "non-numeric size",
			input: "[MANUAL_PACKAGES]\ngit|2.41.0|1.fc39|x86_64|big|1|fedora\n",
		},
		{
			name:  "bad timestamp",
			input: "# Generated: yesterday\n[MANUAL_PACKAGES]\n",
		},
		{
			name:  "unknown checksum list",
			input: "[CHECKSUMS]\nextra|0011223344556677\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lockfile.Parse([]byte(tt.input))
			require.Error(t, err)
		})
	}
}

func TestParse_MissingSectionsAreEmpty(t *testing.T) {
	artifact, err := lockfile.Parse([]byte("# System: fedora-39\n[MANUAL_PACKAGES]\n"))
	require.NoError(t, err)
	assert.Empty(t, artifact.Manual)
	assert.Empty(t, artifact.Auto)
	assert.Empty(t, artifact.Repositories)
}

func TestSerialize_Golden(t *testing.T) {
	artifact := &domain.LockArtifact{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		System:      "fedora-39",
		Manual:      []domain.PackageRecord{recGit, recVim},
		Auto:        []domain.PackageRecord{recPcre},
		Repositories: []domain.Repository{
			{Name: "fedora", Enabled: true},
			{Name: "updates-testing", Enabled: false},
		},
		Checksums: domain.Checksums{
			ManualList: "00112233aabbccdd",
			AutoList:   "8899aabbccddeeff",
		},
	}

	g := goldie.New(t)
	g.Assert(t, "lockfile", lockfile.Serialize(artifact))
}
