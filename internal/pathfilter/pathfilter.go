// Package pathfilter decides which paths under the watch root are ignored.
package pathfilter

import (
	"errors"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned when an ignore pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid ignore pattern")

// PathFilter matches slash-separated relative paths against ignore globs.
type PathFilter struct {
	patterns []string
	globs    []glob.Glob
}

// New compiles the given ignore patterns. A nil or empty list ignores nothing.
func New(patterns []string) (*PathFilter, error) {
	pf := &PathFilter{
		patterns: make([]string, 0, len(patterns)),
		globs:    make([]glob.Glob, 0, len(patterns)),
	}

	for _, pattern := range patterns {
		// Normalize pattern path separators (Windows compatibility)
		normalized := strings.ReplaceAll(pattern, "\\", "/")
		g, err := glob.Compile(normalized, '/')
		if err != nil {
			return nil, errors.Join(ErrInvalidPattern, err)
		}
		pf.patterns = append(pf.patterns, normalized)
		pf.globs = append(pf.globs, g)
	}

	return pf, nil
}

// Patterns returns the normalized ignore patterns.
func (pf *PathFilter) Patterns() []string {
	if pf == nil {
		return nil
	}
	return append([]string(nil), pf.patterns...)
}

// IsIgnored reports whether rel, a path relative to the watch root, matches
// any ignore pattern. The full path, the path with a trailing slash (so
// "dir/**" covers dir itself) and the base name are all tried.
func (pf *PathFilter) IsIgnored(rel string) bool {
	if pf == nil || len(pf.globs) == 0 {
		return false
	}

	normalized := strings.Trim(strings.ReplaceAll(rel, "\\", "/"), "/")
	if normalized == "" || normalized == "." {
		return false
	}
	base := path.Base(normalized)

	for _, g := range pf.globs {
		if g.Match(normalized) || g.Match(normalized+"/") || g.Match(base) {
			return true
		}
	}
	return false
}
