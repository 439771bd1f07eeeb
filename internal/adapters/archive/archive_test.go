package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnflock/dnflock/internal/adapters/archive"
	"github.com/dnflock/dnflock/internal/adapters/state"
	"github.com/dnflock/dnflock/internal/core/domain"
)

func TestTarball_RoundTrip(t *testing.T) {
	src := t.TempDir()
	s := state.NewStore(src)
	require.NoError(t, s.WriteDefaults(domain.NewPackageSet("bash", "coreutils")))
	require.NoError(t, s.WriteClassification(domain.Classification{
		Manual: domain.NewPackageSet("git", "vim"),
		Auto:   domain.NewPackageSet("pcre2"),
	}))

	archiveFile := filepath.Join(t.TempDir(), "dnflock-export.tar.gz")
	a := archive.New()
	require.NoError(t, a.Pack(src, archiveFile))

	dest := filepath.Join(t.TempDir(), "restored")
	require.NoError(t, a.Unpack(archiveFile, dest))

	restored := state.NewStore(dest)
	manual, err := restored.ReadManual()
	require.NoError(t, err)
	assert.Equal(t, domain.NewPackageSet("git", "vim"), manual)

	defaults, err := restored.ReadDefaults()
	require.NoError(t, err)
	assert.Equal(t, domain.NewPackageSet("bash", "coreutils"), defaults)
}

func TestTarball_UnpackRejectsForeignArchive(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("hi\n"), 0o644))

	archiveFile := filepath.Join(t.TempDir(), "foreign.tar.gz")
	a := archive.New()
	require.NoError(t, a.Pack(src, archiveFile))

	err := a.Unpack(archiveFile, filepath.Join(t.TempDir(), "out"))
	require.ErrorIs(t, err, domain.ErrArchiveMissingState)
}

func TestTarball_UnpackRejectsNonGzip(t *testing.T) {
	bogus := filepath.Join(t.TempDir(), "bogus.tar.gz")
	require.NoError(t, os.WriteFile(bogus, []byte("plain text"), 0o644))

	err := archive.New().Unpack(bogus, t.TempDir())
	require.Error(t, err)
}
