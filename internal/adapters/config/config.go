// Package config resolves the runtime configuration from an optional
// dnflock.yaml in the state directory plus DNFLOCK_* environment
// variables. Environment values win over file values.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/dnflock/dnflock/internal/core/domain"
)

// Environment variable names.
const (
	EnvStateDir  = "DNFLOCK_DIR"
	EnvCacheDir  = "DNFLOCK_CACHE_DIR"
	EnvParallel  = "DNFLOCK_PARALLEL"
	EnvChunkSize = "DNFLOCK_CHUNK_SIZE"
	EnvProgress  = "DNFLOCK_PROGRESS"
)

// FileName is the optional configuration file inside the state directory.
const FileName = "dnflock.yaml"

// Config is the resolved runtime configuration.
type Config struct {
	StateDir  string
	CacheDir  string
	Parallel  int
	ChunkSize int
	Progress  bool
}

// fileConfig mirrors the dnflock.yaml schema. Zero values mean "not set".
type fileConfig struct {
	StateDir  string `yaml:"stateDir"`
	CacheDir  string `yaml:"cacheDir"`
	Parallel  int    `yaml:"parallel"`
	ChunkSize int    `yaml:"chunkSize"`
	Progress  *bool  `yaml:"progress"`
}

// Load resolves the configuration. Precedence, low to high: built-in
// defaults, dnflock.yaml, environment. The state directory itself can
// only come from the default or DNFLOCK_DIR, since the file lives inside
// it.
func Load() (*Config, error) {
	cfg := &Config{
		StateDir:  domain.DefaultStatePath(),
		Parallel:  runtime.NumCPU(),
		ChunkSize: 25,
		Progress:  true,
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		cfg.StateDir = filepath.Clean(dir)
	}
	cfg.CacheDir = domain.DefaultCachePath(cfg.StateDir)

	if err := applyFile(cfg, filepath.Join(cfg.StateDir, FileName)); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 1
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read config file")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return zerr.Wrap(err, "failed to parse config file")
	}

	if fc.StateDir != "" {
		cfg.StateDir = filepath.Clean(fc.StateDir)
		cfg.CacheDir = domain.DefaultCachePath(cfg.StateDir)
	}
	if fc.CacheDir != "" {
		cfg.CacheDir = filepath.Clean(fc.CacheDir)
	}
	if fc.Parallel > 0 {
		cfg.Parallel = fc.Parallel
	}
	if fc.ChunkSize > 0 {
		cfg.ChunkSize = fc.ChunkSize
	}
	if fc.Progress != nil {
		cfg.Progress = *fc.Progress
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		cfg.CacheDir = filepath.Clean(dir)
	}
	if v := os.Getenv(EnvParallel); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.New("invalid "+EnvParallel), "value", v)
		}
		cfg.Parallel = n
	}
	if v := os.Getenv(EnvChunkSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(zerr.New("invalid "+EnvChunkSize), "value", v)
		}
		cfg.ChunkSize = n
	}
	if v := os.Getenv(EnvProgress); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return zerr.With(zerr.New("invalid "+EnvProgress), "value", v)
		}
		cfg.Progress = enabled
	}
	return nil
}

// RepoCachePath returns the repository cache file inside the cache dir.
func (c *Config) RepoCachePath() string {
	return filepath.Join(c.CacheDir, domain.RepoCacheFileName)
}
