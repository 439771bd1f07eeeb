package app

import (
	"os"
	"strings"
)

const osReleasePath = "/etc/os-release"

// systemLabel identifies the distribution the lock was taken on, e.g.
// "fedora-39". It is informational only; verify never matches on it.
func systemLabel() string {
	data, err := os.ReadFile(osReleasePath)
	if err != nil {
		return "linux"
	}
	return parseOSRelease(string(data))
}

func parseOSRelease(content string) string {
	var id, version string
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "ID":
			id = value
		case "VERSION_ID":
			version = value
		}
	}
	if id == "" {
		return "linux"
	}
	if version == "" {
		return id
	}
	return id + "-" + version
}
