package domain

// Stats summarizes one classification for the stats report.
type Stats struct {
	TotalInstalled  int
	DefaultCount    int
	ManualCount     int
	AutoCount       int
	ManualSizeBytes int64
	ByCategory      map[Category]int
}

// ComputeStats derives counts from a classification. Category counts and
// the size total cover the manual set only; defaults and auto
// dependencies are noise in a "what did I install" breakdown.
func ComputeStats(installed PackageSet, c Classification, manualRecords []PackageRecord) Stats {
	byCategory := make(map[Category]int)
	for _, name := range c.Manual {
		byCategory[Categorize(name)]++
	}

	var size int64
	for _, r := range manualRecords {
		size += r.SizeBytes
	}

	return Stats{
		TotalInstalled:  len(installed),
		DefaultCount:    len(c.Defaults),
		ManualCount:     len(c.Manual),
		AutoCount:       len(c.Auto),
		ManualSizeBytes: size,
		ByCategory:      byCategory,
	}
}
