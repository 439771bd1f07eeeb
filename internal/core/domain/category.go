package domain

import "regexp"

// Category is a coarse name-prefix bucket used by the stats and tree
// reports. The patterns match on package name only; a package that matches
// no pattern falls into CategoryOther.
type Category string

const (
	CategoryDevelopment Category = "development"
	CategoryPython      Category = "python"
	CategoryContainers  Category = "containers"
	CategoryEditors     Category = "editors"
	CategoryMedia       Category = "media"
	CategoryOther       Category = "other"
)

// Categories lists the named buckets in report order.
var Categories = []Category{
	CategoryDevelopment,
	CategoryPython,
	CategoryContainers,
	CategoryEditors,
	CategoryMedia,
	CategoryOther,
}

var categoryPatterns = map[Category]*regexp.Regexp{
	CategoryDevelopment: regexp.MustCompile(`^(gcc|clang|make|cmake|git|nodejs|npm|yarn|cargo|rustc|go|java|maven|gradle)`),
	CategoryPython:      regexp.MustCompile(`^python`),
	CategoryContainers:  regexp.MustCompile(`^(docker|podman|buildah|skopeo|kubernetes|kubectl|helm)`),
	CategoryEditors:     regexp.MustCompile(`^(vim|emacs|neovim|code|atom|sublime)`),
	CategoryMedia:       regexp.MustCompile(`^(vlc|mpv|ffmpeg|gimp|inkscape|blender|obs)`),
}

// Categorize returns the first matching category for a package name,
// checking buckets in report order.
func Categorize(name string) Category {
	for _, c := range Categories {
		if c == CategoryOther {
			break
		}
		if categoryPatterns[c].MatchString(name) {
			return c
		}
	}
	return CategoryOther
}

// GroupByCategory buckets a package set, preserving each bucket's sorted
// name order.
func GroupByCategory(names PackageSet) map[Category]PackageSet {
	groups := make(map[Category]PackageSet)
	for _, name := range names {
		c := Categorize(name)
		groups[c] = append(groups[c], name)
	}
	return groups
}
