package domain

import (
	"os"
	"path/filepath"
)

const (
	// StateDirName is the default state directory under the user's home.
	StateDirName = ".dnflock"

	// CacheDirName is the name of the cache directory inside the state dir.
	CacheDirName = "cache"

	// BackupDirName is the name of the backup directory inside the state dir.
	BackupDirName = "backups"

	// DefaultsFileName holds the captured default package list.
	DefaultsFileName = "default-packages.txt"

	// ManualFileName holds the analyzed manual package list.
	ManualFileName = "manual-packages.txt"

	// AutoFileName holds the analyzed auto-dependency list.
	AutoFileName = "auto-packages.txt"

	// LockFileName is the lock artifact file.
	LockFileName = "packages.lock"

	// RepoCacheFileName caches per-package repository lookups.
	RepoCacheFileName = "repos.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the default root directory for dnflock state.
func DefaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return StateDirName
	}
	return filepath.Join(home, StateDirName)
}

// DefaultCachePath returns the default cache directory inside stateDir.
func DefaultCachePath(stateDir string) string {
	return filepath.Join(stateDir, CacheDirName)
}

// LockPath returns the lock artifact path inside stateDir.
func LockPath(stateDir string) string {
	return filepath.Join(stateDir, LockFileName)
}
