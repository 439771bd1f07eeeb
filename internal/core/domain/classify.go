package domain

import "go.trai.ch/zerr"

// Classification partitions the installed package universe into three
// disjoint sets. Disjointness holds by construction: manual and auto are
// both derived by subtraction from the same inputs, never queried
// independently.
type Classification struct {
	Defaults PackageSet
	Manual   PackageSet
	Auto     PackageSet
}

// Classify derives the manual and auto-dependency partitions:
//
//	manual     = installedByUser − defaults
//	nonDefault = installedAll − defaults
//	auto       = nonDefault − manual
//
// which guarantees manual ∩ auto = ∅ and
// manual ∪ auto ∪ defaults ⊇ installedAll whenever defaults ⊆ installedAll.
// An empty defaults set is a precondition failure, not a signal that every
// package is manual.
func Classify(installedAll, installedByUser, defaults PackageSet) (Classification, error) {
	if len(defaults) == 0 {
		return Classification{}, ErrDefaultsNotCaptured
	}
	for name, set := range map[string]PackageSet{
		"installed": installedAll,
		"user":      installedByUser,
		"defaults":  defaults,
	} {
		if !set.Canonical() {
			return Classification{}, zerr.With(ErrUnsortedInput, "set", name)
		}
	}

	manual := Difference(installedByUser, defaults)
	nonDefault := Difference(installedAll, defaults)
	auto := Difference(nonDefault, manual)

	return Classification{
		Defaults: defaults,
		Manual:   manual,
		Auto:     auto,
	}, nil
}
