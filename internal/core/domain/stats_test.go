package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dnflock/dnflock/internal/core/domain"
)

func TestComputeStats(t *testing.T) {
	installed := domain.NewPackageSet("kernel", "bash", "git", "docker-ce", "zlib", "pcre2")
	c := domain.Classification{
		Defaults: domain.NewPackageSet("kernel", "bash"),
		Manual:   domain.NewPackageSet("git", "docker-ce"),
		Auto:     domain.NewPackageSet("zlib", "pcre2"),
	}
	records := []domain.PackageRecord{
		{Name: "git", SizeBytes: 1024},
		{Name: "docker-ce", SizeBytes: 4096},
	}

	s := domain.ComputeStats(installed, c, records)

	assert.Equal(t, 6, s.TotalInstalled)
	assert.Equal(t, 2, s.DefaultCount)
	assert.Equal(t, 2, s.ManualCount)
	assert.Equal(t, 2, s.AutoCount)
	assert.Equal(t, int64(5120), s.ManualSizeBytes)
	assert.Equal(t, 1, s.ByCategory[domain.CategoryDevelopment])
	assert.Equal(t, 1, s.ByCategory[domain.CategoryContainers])
}

func TestComputeStats_Empty(t *testing.T) {
	s := domain.ComputeStats(domain.PackageSet{}, domain.Classification{}, nil)

	assert.Zero(t, s.TotalInstalled)
	assert.Zero(t, s.ManualSizeBytes)
	assert.Empty(t, s.ByCategory)
}
