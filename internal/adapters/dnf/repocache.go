package dnf

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"

	"github.com/dnflock/dnflock/internal/core/domain"
)

// RepoCache persists package-to-repository lookups as a flat JSON file.
// Repository origin is immutable for an installed package, so entries
// never expire.
type RepoCache struct {
	path  string
	mu    sync.RWMutex
	cache map[string]string
}

// NewRepoCache creates a cache backed by the file at the given path. A
// missing or empty file starts an empty cache.
func NewRepoCache(path string) (*RepoCache, error) {
	c := &RepoCache{
		path:  filepath.Clean(path),
		cache: make(map[string]string),
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *RepoCache) load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read repository cache")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &c.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal repository cache")
	}
	return nil
}

func (c *RepoCache) save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.cache, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal repository cache")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}
	if err := os.WriteFile(c.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write repository cache")
	}
	return nil
}

// Get returns the cached repository for a package.
func (c *RepoCache) Get(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	repo, ok := c.cache[name]
	return repo, ok
}

// Put stores one lookup and flushes the cache to disk.
func (c *RepoCache) Put(name, repo string) error {
	c.mu.Lock()
	c.cache[name] = repo
	c.mu.Unlock()
	return c.save()
}

// Len returns the number of cached entries.
func (c *RepoCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
