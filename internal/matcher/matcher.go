// Package matcher evaluates file and folder names against configured rules.
package matcher

import (
	"strings"

	"github.com/taigrr/foldercat/internal/types"
)

// Match returns every rule in rules that fires for name, in the order
// exact name, extensions, prefixes, suffixes. Directories skip the
// extension checks and compare suffixes against the whole name.
func Match(name string, rules types.Rules, isDir bool) []types.Match {
	var matches []types.Match

	for _, n := range rules.Names {
		if name == n {
			matches = append(matches, types.Match{Category: types.CategoryName, Value: n})
		}
	}

	if !isDir {
		for _, ext := range rules.Extensions {
			if strings.HasSuffix(name, ext) {
				matches = append(matches, types.Match{Category: types.CategoryExtension, Value: ext})
			}
		}
	}

	for _, prefix := range rules.Prefixes {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, types.Match{Category: types.CategoryPrefix, Value: prefix})
		}
	}

	s := name
	if !isDir {
		s = Stem(name)
	}
	for _, suffix := range rules.Suffixes {
		if strings.HasSuffix(s, suffix) {
			matches = append(matches, types.Match{Category: types.CategorySuffix, Value: suffix})
		}
	}

	return matches
}

// Describe is Match rendered as human-readable descriptions.
func Describe(name string, rules types.Rules, isDir bool) []string {
	matches := Match(name, rules, isDir)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.String()
	}
	return out
}

// Stem returns name without its final extension. Leading dots do not start
// an extension, so ".bashrc" is its own stem.
func Stem(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	if strings.TrimLeft(name[:i], ".") == "" {
		return name
	}
	return name[:i]
}
