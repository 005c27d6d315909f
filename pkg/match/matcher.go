// Package match filters translated listing results with glob patterns.
//
// Patterns use doublestar syntax (`**` crosses path segments), matched
// against the canonical string form of an object's location.
package match

import (
	"errors"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/3leaps/gostratus/pkg/object"
)

// Matcher evaluates include/exclude patterns against object paths.
//
// A path matches if it matches at least one include pattern and no exclude
// pattern. The Matcher is safe for concurrent use after creation.
type Matcher struct {
	includes []string
	excludes []string
}

// Config configures a Matcher.
type Config struct {
	// Includes are glob patterns paths must match (at least one).
	// Empty means match everything.
	Includes []string

	// Excludes are glob patterns paths must not match (any).
	Excludes []string
}

// ErrInvalidPattern is returned when a pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// PatternError wraps pattern-related errors with context.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return "pattern " + e.Pattern + ": " + e.Err.Error()
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// New creates a Matcher from the given configuration.
//
// Returns a *PatternError if any pattern cannot be compiled.
func New(cfg Config) (*Matcher, error) {
	includes := cfg.Includes
	if len(includes) == 0 {
		includes = []string{"**"}
	}

	for _, raw := range includes {
		if !doublestar.ValidatePattern(raw) {
			return nil, &PatternError{Pattern: raw, Err: ErrInvalidPattern}
		}
	}
	for _, raw := range cfg.Excludes {
		if !doublestar.ValidatePattern(raw) {
			return nil, &PatternError{Pattern: raw, Err: ErrInvalidPattern}
		}
	}

	return &Matcher{
		includes: includes,
		excludes: cfg.Excludes,
	}, nil
}

// Match returns true if the path matches the include/exclude patterns.
func (m *Matcher) Match(path string) bool {
	matched := false
	for _, inc := range m.includes {
		if matchPattern(inc, path) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	for _, exc := range m.excludes {
		if matchPattern(exc, path) {
			return false
		}
	}
	return true
}

// FilterResult returns a copy of the result containing only the objects
// whose location matches. Common prefixes pass through unfiltered since
// patterns describe objects, not groupings.
func (m *Matcher) FilterResult(result *object.ListResult) *object.ListResult {
	objects := make([]object.Meta, 0, len(result.Objects))
	for _, obj := range result.Objects {
		if m.Match(obj.Location.String()) {
			objects = append(objects, obj)
		}
	}
	return &object.ListResult{
		Objects:        objects,
		CommonPrefixes: result.CommonPrefixes,
	}
}

// matchPattern matches a path against a doublestar pattern.
func matchPattern(pattern, path string) bool {
	matched, err := doublestar.Match(pattern, path)
	if err != nil {
		// Pattern was validated at construction time, so this shouldn't happen
		return false
	}
	return matched
}
