package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnflock/dnflock/internal/adapters/config"
	"github.com/dnflock/dnflock/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, runtime.NumCPU(), cfg.Parallel)
	assert.Equal(t, 25, cfg.ChunkSize)
	assert.True(t, cfg.Progress)
	assert.Equal(t, domain.DefaultCachePath(cfg.StateDir), cfg.CacheDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvStateDir, dir)

	file := "parallel: 2\nchunkSize: 50\nprogress: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(file), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, 50, cfg.ChunkSize)
	assert.False(t, cfg.Progress)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvStateDir, dir)
	t.Setenv(config.EnvParallel, "8")
	t.Setenv(config.EnvProgress, "true")

	file := "parallel: 2\nprogress: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(file), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Parallel)
	assert.True(t, cfg.Progress)
}

func TestLoad_InvalidEnvValues(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	t.Setenv(config.EnvParallel, "many")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_ClampsNonPositiveValues(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	t.Setenv(config.EnvParallel, "0")
	t.Setenv(config.EnvChunkSize, "-3")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Parallel)
	assert.Equal(t, 1, cfg.ChunkSize)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvStateDir, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("::notyaml\n\t"), 0o644))

	_, err := config.Load()
	require.Error(t, err)
}

func TestConfig_RepoCachePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvStateDir, dir)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.CacheDir, domain.RepoCacheFileName), cfg.RepoCachePath())
}
