package hostinfo

import (
	"os"
	"strings"
)

// DefaultOSReleasePaths is the os-release search order from os-release(5).
var DefaultOSReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

var readFile = os.ReadFile

// OSRelease holds the os-release fields used for variant matching.
// Empty values mean unknown.
type OSRelease struct {
	ID        string
	IDLike    []string
	VersionID string
}

// ParseOSRelease extracts ID, ID_LIKE, and VERSION_ID from os-release content.
// Lines without '=' and unknown keys are ignored; it never fails.
func ParseOSRelease(content string) OSRelease {
	var info OSRelease
	// Lines have no length limit.
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := parseLine(strings.TrimSuffix(line, "\r"))
		if !ok {
			continue
		}
		switch key {
		case "id":
			info.ID = value
		case "id_like":
			info.IDLike = splitIDLike(value)
		case "version_id":
			info.VersionID = value
		}
	}
	return info
}

// parseLine splits one os-release line on the first '='.
// The key is trimmed and lower-cased; the value only loses surrounding double quotes.
func parseLine(line string) (string, string, bool) {
	if line == "" {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(key)), strings.Trim(value, `"`), true
}

func splitIDLike(value string) []string {
	fields := strings.Fields(value)
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		lowered := strings.ToLower(field)
		if lowered == "" {
			continue
		}
		out = append(out, lowered)
	}
	return out
}

// ReadOSRelease parses the os-release file at path.
// Any read failure yields an all-empty OSRelease.
func ReadOSRelease(path string) OSRelease {
	info, _ := readOSRelease(path)
	return info
}

// ReadFirstOSRelease parses the first readable file among paths and returns it with the path used.
// When paths is empty the default search order is used. When nothing is readable the result is
// all-empty and the returned path is "".
func ReadFirstOSRelease(paths ...string) (OSRelease, string) {
	if len(paths) == 0 {
		paths = DefaultOSReleasePaths
	}
	for _, path := range paths {
		if info, ok := readOSRelease(path); ok {
			return info, path
		}
	}
	return OSRelease{}, ""
}

func readOSRelease(path string) (OSRelease, bool) {
	data, err := readFile(path)
	if err != nil {
		return OSRelease{}, false
	}
	return ParseOSRelease(string(data)), true
}
