// Package domain holds the core types of dnflock: package sets, records,
// classification results, and the lock artifact.
package domain

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// PackageSet is an ordered, duplicate-free sequence of package names.
// All set operations require byte-lexicographic sort order and uniqueness;
// NewPackageSet establishes both, and operations assume them from there on.
type PackageSet []string

// NewPackageSet builds a canonical set from arbitrary names: sorted,
// deduplicated, with empty names dropped.
func NewPackageSet(names ...string) PackageSet {
	filtered := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			filtered = append(filtered, n)
		}
	}
	slices.Sort(filtered)
	return slices.Compact(filtered)
}

// Canonical reports whether the set is sorted and free of duplicates.
// Callers that accept externally produced sets use this as a checked
// precondition instead of silently computing wrong differences.
func (s PackageSet) Canonical() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// Contains reports whether name is in the set using binary search.
func (s PackageSet) Contains(name string) bool {
	_, found := slices.BinarySearch(s, name)
	return found
}

// Checksum returns the content hash of the newline-joined name list,
// rendered as 16 hex digits. Used as an integrity signal for the
// classification inputs recorded in the lock artifact.
func (s PackageSet) Checksum() string {
	h := xxhash.New()
	for _, name := range s {
		_, _ = h.WriteString(name)
		_, _ = h.WriteString("\n")
	}
	return formatHash(h.Sum64())
}

func formatHash(sum uint64) string {
	const hexDigits = "0123456789abcdef"
	var b [16]byte
	for i := 15; i >= 0; i-- {
		b[i] = hexDigits[sum&0xf]
		sum >>= 4
	}
	return string(b[:])
}

// Difference returns the elements of a that are not in b.
// Both inputs must be canonical; the scan is a single merge pass over
// two cursors, O(|a|+|b|), and never materializes a hash set.
func Difference(a, b PackageSet) PackageSet {
	out := make(PackageSet, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return out
}

// Intersection returns the elements present in both a and b.
// Both inputs must be canonical.
func Intersection(a, b PackageSet) PackageSet {
	out := make(PackageSet, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Union returns the sorted union of a and b.
func Union(a, b PackageSet) PackageSet {
	out := make(PackageSet, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// String renders the set as a newline-terminated name list, the on-disk
// format of the state directory files.
func (s PackageSet) String() string {
	if len(s) == 0 {
		return ""
	}
	return strings.Join(s, "\n") + "\n"
}

// ParsePackageSet reads a newline-separated name list and canonicalizes it.
func ParsePackageSet(text string) PackageSet {
	return NewPackageSet(strings.Split(text, "\n")...)
}
