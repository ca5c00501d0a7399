package pipeline

import (
	"errors"
	"strings"
)

// Errors returned when a path-prefix specification cannot be parsed.
var (
	// ErrPathNoLeadingSlash is returned when a path specification does not
	// start with "/".
	ErrPathNoLeadingSlash = errors.New("pipeline: path must start with /")

	// ErrPathEmpty is returned when a path specification contains no
	// segments after parsing.
	ErrPathEmpty = errors.New("pipeline: path must contain at least one segment")
)

// ParsePath parses a path-prefix specification into its non-empty segments.
// The specification must start with "/"; consecutive slashes collapse.
// A specification that yields zero segments (such as "/") is rejected.
func ParsePath(path string) ([]string, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, ErrPathNoLeadingSlash
	}
	segments := SplitPath(path)
	if len(segments) == 0 {
		return nil, ErrPathEmpty
	}
	return segments, nil
}

// SplitPath splits a request path into its non-empty segments. Unlike
// ParsePath it accepts any string: a leading slash is not required, since a
// path fork may already have stripped it along with a matched prefix.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// segmentsHavePrefix reports whether input starts with prefix, comparing
// segment by segment. An equal-length match counts as a prefix match.
func segmentsHavePrefix(input, prefix []string) bool {
	if len(prefix) > len(input) {
		return false
	}
	for i, segment := range prefix {
		if input[i] != segment {
			return false
		}
	}
	return true
}
