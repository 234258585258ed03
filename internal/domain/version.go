package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BumpLevel selects which component of a semantic version to increment.
type BumpLevel string

// Available bump levels.
const (
	BumpPatch BumpLevel = "patch"
	BumpMinor BumpLevel = "minor"
	BumpMajor BumpLevel = "major"
)

// ParseBumpLevel validates a user-supplied bump level.
func ParseBumpLevel(value string) (BumpLevel, error) {
	switch BumpLevel(strings.ToLower(strings.TrimSpace(value))) {
	case BumpPatch:
		return BumpPatch, nil
	case BumpMinor:
		return BumpMinor, nil
	case BumpMajor:
		return BumpMajor, nil
	}

	return "", fmt.Errorf("unknown bump level %q (expected patch, minor or major)", value)
}

// BumpVersion increments one component of a MAJOR.MINOR.PATCH version. A
// leading "v" is preserved.
func BumpVersion(version string, level BumpLevel) (string, error) {
	prefix := ""
	rest := version

	if strings.HasPrefix(rest, "v") {
		prefix = "v"
		rest = rest[1:]
	}

	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid version %q (expected MAJOR.MINOR.PATCH)", version)
	}

	numbers := make([]int, 3)

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid version %q (expected MAJOR.MINOR.PATCH)", version)
		}

		numbers[i] = n
	}

	switch level {
	case BumpMajor:
		numbers[0]++
		numbers[1] = 0
		numbers[2] = 0
	case BumpMinor:
		numbers[1]++
		numbers[2] = 0
	case BumpPatch:
		numbers[2]++
	default:
		return "", fmt.Errorf("unknown bump level %q", level)
	}

	return fmt.Sprintf("%s%d.%d.%d", prefix, numbers[0], numbers[1], numbers[2]), nil
}
