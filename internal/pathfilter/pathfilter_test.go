package pathfilter

import (
	"errors"
	"strings"
	"testing"
)

func mustNew(t *testing.T, patterns ...string) *PathFilter {
	t.Helper()
	filter, err := New(patterns)
	if err != nil {
		t.Fatalf("New(%q) error = %v", patterns, err)
	}
	return filter
}

func TestPathFilter_NoPatternsIgnoresNothing(t *testing.T) {
	filter := mustNew(t)

	tests := []string{
		".git/config",
		"node_modules/package/index.js",
		".DS_Store",
		"notes/test.md",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if filter.IsIgnored(path) {
				t.Errorf("IsIgnored(%q) = true, want false", path)
			}
		})
	}
}

func TestPathFilter_NilFilter(t *testing.T) {
	var filter *PathFilter
	if filter.IsIgnored("anything") {
		t.Error("IsIgnored on nil filter = true, want false")
	}
	if got := filter.Patterns(); got != nil {
		t.Errorf("Patterns() = %v, want nil", got)
	}
}

func TestPathFilter_DoubleAsterisk(t *testing.T) {
	filter := mustNew(t, "archive/**")

	tests := []struct {
		path string
		want bool
	}{
		{"archive", true},
		{"archive/old.md", true},
		{"archive/2024/jan/note.md", true},
		{"other/archive/note.md", false},
		{"archives/note.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_SingleAsterisk(t *testing.T) {
	filter := mustNew(t, "temp*/**")

	tests := []struct {
		path string
		want bool
	}{
		{"temp/file.md", true},
		{"temp1/file.md", true},
		{"temporary/file.md", true},
		{"atemp/file.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_BaseName(t *testing.T) {
	filter := mustNew(t, ".DS_Store", "*.swp", "node_modules")

	tests := []struct {
		path string
		want bool
	}{
		{".DS_Store", true},
		{"deep/nested/.DS_Store", true},
		{"notes/.todo.md.swp", true},
		{"node_modules", true},
		{"web/node_modules", true},
		{"notes/todo.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_SpecialCharacters(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"dots", "backup.2024/**", "backup.2024/notes.md", true},
		{"dot is literal", "backup.2024/**", "backup_2024/notes.md", false},
		{"parentheses", "(archive)/**", "(archive)/old.md", true},
		{"parentheses literal", "(archive)/**", "archive/old.md", false},
		{"plus", "C++/**", "C++/notes.md", true},
		{"dollar", "$HOME/**", "$HOME/notes.md", true},
		{"backslash pattern", "build\\**", "build/out.o", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := mustNew(t, tt.pattern)
			if got := filter.IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) with %q = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPathFilter_InvalidPattern(t *testing.T) {
	_, err := New([]string{"[unclosed"})
	if err == nil {
		t.Fatal("New() error = nil, want error")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("New() error = %v, want ErrInvalidPattern", err)
	}
}

func TestPathFilter_EdgeCases(t *testing.T) {
	filter := mustNew(t, "**/cache/**")

	t.Run("empty path", func(t *testing.T) {
		if filter.IsIgnored("") {
			t.Error(`IsIgnored("") = true, want false`)
		}
	})

	t.Run("root", func(t *testing.T) {
		if filter.IsIgnored(".") {
			t.Error(`IsIgnored(".") = true, want false`)
		}
	})

	t.Run("windows separators", func(t *testing.T) {
		if !filter.IsIgnored("app\\cache\\entry") {
			t.Error(`IsIgnored("app\\cache\\entry") = false, want true`)
		}
	})

	t.Run("very long paths", func(t *testing.T) {
		var longPath strings.Builder
		for range 100 {
			longPath.WriteString("a/")
		}
		longPath.WriteString("note.md")

		if filter.IsIgnored(longPath.String()) {
			t.Error("IsIgnored(longPath) = true, want false")
		}
	})

	t.Run("unicode characters", func(t *testing.T) {
		if !filter.IsIgnored("日本語/cache/🎉.md") {
			t.Error(`IsIgnored("日本語/cache/🎉.md") = false, want true`)
		}
	})

	t.Run("patterns are copied", func(t *testing.T) {
		got := filter.Patterns()
		got[0] = "changed"
		if filter.Patterns()[0] != "**/cache/**" {
			t.Errorf("Patterns()[0] = %q, want %q", filter.Patterns()[0], "**/cache/**")
		}
	})
}
