// Package types defines the data structures shared across foldercat.
package types

import "fmt"

// MatchCategory identifies which kind of rule produced a match.
type MatchCategory string

const (
	CategoryName      MatchCategory = "name"
	CategoryExtension MatchCategory = "extension"
	CategoryPrefix    MatchCategory = "prefix"
	CategorySuffix    MatchCategory = "suffix"
)

type (
	// Rules is one configured set of name patterns. The order of each slice
	// is the order matches are reported in.
	Rules struct {
		Names      []string `json:"names,omitempty" yaml:"names,omitempty" koanf:"names"`
		Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" koanf:"extensions"`
		Prefixes   []string `json:"prefixes,omitempty" yaml:"prefixes,omitempty" koanf:"prefixes"`
		Suffixes   []string `json:"suffixes,omitempty" yaml:"suffixes,omitempty" koanf:"suffixes"`
	}

	// Match records a single rule that fired for a name.
	Match struct {
		Category MatchCategory `json:"category"`
		Value    string        `json:"value"`
	}
)

// IsEmpty reports whether no category holds any value.
func (r Rules) IsEmpty() bool {
	return len(r.Names) == 0 && len(r.Extensions) == 0 && len(r.Prefixes) == 0 && len(r.Suffixes) == 0
}

func (m Match) String() string {
	switch m.Category {
	case CategoryName:
		return fmt.Sprintf("name matched: %s", m.Value)
	case CategoryExtension:
		return fmt.Sprintf("extension matched: %s", m.Value)
	case CategoryPrefix:
		return fmt.Sprintf("prefix matched: %s", m.Value)
	case CategorySuffix:
		return fmt.Sprintf("suffix matched: %s", m.Value)
	}
	return fmt.Sprintf("%s matched: %s", m.Category, m.Value)
}
