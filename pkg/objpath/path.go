// Package objpath provides the structured object location type shared by
// every provider dialect.
//
// A Path is a `/`-delimited sequence of non-empty segments with no leading
// or trailing delimiter in canonical form. Provider keys arrive as raw
// strings; Parse is the single entry point for turning them into a Path and
// is strict about malformed input so translation layers can fail fast.
package objpath

import (
	"strconv"
	"strings"
)

// Delimiter separates path segments.
const Delimiter = "/"

// Path is a parsed object location.
//
// The zero value is the root path (no segments). Path values are immutable
// and safe to share across goroutines.
type Path struct {
	raw string
}

// Parse converts a raw provider key or prefix into a Path.
//
// Leading and trailing delimiters are stripped. Returns a *ParseError if
// any remaining segment is empty or is "." or "..".
func Parse(raw string) (Path, error) {
	trimmed := strings.Trim(raw, Delimiter)
	if trimmed == "" {
		return Path{}, nil
	}

	for _, segment := range strings.Split(trimmed, Delimiter) {
		if err := validateSegment(raw, segment); err != nil {
			return Path{}, err
		}
	}

	return Path{raw: trimmed}, nil
}

// validateSegment rejects segments that would make a path ambiguous or
// allow directory traversal when mapped onto hierarchical stores.
func validateSegment(raw, segment string) error {
	switch segment {
	case "":
		return &ParseError{Raw: raw, Reason: "empty segment"}
	case ".", "..":
		return &ParseError{Raw: raw, Reason: "relative segment " + segment}
	}
	return nil
}

// String returns the canonical form: segments joined by the delimiter with
// no leading or trailing delimiter.
func (p Path) String() string {
	return p.raw
}

// Parts returns the path segments in order. The root path has no parts.
func (p Path) Parts() []string {
	if p.raw == "" {
		return nil
	}
	return strings.Split(p.raw, Delimiter)
}

// Child returns the path extended by one segment.
//
// The segment is not validated; use Parse when the segment originates from
// untrusted input.
func (p Path) Child(segment string) Path {
	if p.raw == "" {
		return Path{raw: segment}
	}
	return Path{raw: p.raw + Delimiter + segment}
}

// ParseError indicates a raw key or prefix string could not be parsed into
// a structured path. It carries the offending input for diagnostics.
type ParseError struct {
	// Raw is the input string that failed to parse.
	Raw string

	// Reason describes why parsing failed.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "objpath: cannot parse " + strconv.Quote(e.Raw) + ": " + e.Reason
}
