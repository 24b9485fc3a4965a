package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{"nested under git", ".git/config", []string{".git/*"}, true},
		{"deeply nested under git", ".git/objects/ab/cdef", []string{".git/*"}, true},
		{"bare git directory", ".git", []string{".git/*"}, false},
		{"bin with prefix", "tools/bin/run", []string{"*bin/*"}, true},
		{"bin at root", "bin/run", []string{"*bin/*"}, true},
		{"star crosses separators", "docs/guide/README.md", []string{"*.md"}, true},
		{"no case folding", "README.MD", []string{"*.md"}, false},
		{"question mark", "a.txt", []string{"?.txt"}, true},
		{"question mark single char", "ab.txt", []string{"?.txt"}, false},
		{"question mark matches separator", "a/b", []string{"a?b"}, true},
		{"character class", "file1.go", []string{"file[0-9].go"}, true},
		{"character class miss", "filex.go", []string{"file[0-9].go"}, false},
		{"negated class", "filex.go", []string{"file[!0-9].go"}, true},
		{"negated class miss", "file1.go", []string{"file[!0-9].go"}, false},
		{"bracket member", "]", []string{"[]]"}, true},
		{"unterminated bracket is literal", "a[b", []string{"a[b"}, true},
		{"dot is literal", "axb", []string{"a.b"}, false},
		{"regex metacharacters are literal", "+(x)|y", []string{"+(x)|y"}, true},
		{"env files", "config/.env.local", []string{"*.env*"}, true},
		{"no implicit prefix match", "foo/bar", []string{"foo"}, false},
		{"whole string anchor", "xrepod.md", []string{"repod.md"}, false},
		{"union of patterns", "main.rs", []string{"*.py", "*.rs"}, true},
		{"no patterns", "anything", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.path, tt.patterns))
		})
	}
}

func TestMatcherInvalidPatternFallsBackToLiteral(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := NewMatcher([]string{"[z-a]"}, zap.New(core))

	assert.True(t, m.MatchesPath("[z-a]"))
	assert.False(t, m.MatchesPath("z"))
	assert.Equal(t, 1, logs.FilterMessage("Invalid ignore pattern, matching it literally").Len())
}

func TestMatcherNormalizesSeparators(t *testing.T) {
	m := NewMatcher([]string{"vendor/*"}, nil)
	assert.True(t, m.MatchesPath("vendor/lib/a.go"))
	assert.Equal(t, []string{"vendor/*"}, m.Patterns())
}

func TestMatchesPathWithPattern(t *testing.T) {
	m := NewMatcher([]string{"*.py", "*.md", "docs/*"}, nil)

	matched, pattern := m.MatchesPathWithPattern("docs/intro.md")
	require.True(t, matched)
	require.NotNil(t, pattern)
	assert.Equal(t, "*.md", pattern.Line)

	matched, pattern = m.MatchesPathWithPattern("main.go")
	assert.False(t, matched)
	assert.Nil(t, pattern)
}

func TestBuiltinPatterns(t *testing.T) {
	m := NewMatcher(BuiltinIgnorePatterns(), nil)

	ignored := []string{
		".rpdignore", "repod.md", ".git/HEAD", ".gitignore", ".github/workflows/ci.yml",
		"pkg/mod.pyc", "__pycache__/x.cpython-312.pyc", "dist/app.whl", "a.tar.gz",
		".env", "img/logo.png", "photo.jpeg", "target/bin/app", "Cargo.lock",
		".venv/lib/site.py", ".DS_Store", ".idea/workspace.xml", "debug.log",
		"node_modules/left-pad/index.js",
	}
	for _, path := range ignored {
		assert.True(t, m.MatchesPath(path), path)
	}

	kept := []string{"README.md", "main.go", ".git", "src/lib.rs", "docs/repod.md"}
	for _, path := range kept {
		assert.False(t, m.MatchesPath(path), path)
	}
}

func TestBuiltinIgnorePatternsReturnsCopy(t *testing.T) {
	patterns := BuiltinIgnorePatterns()
	patterns[0] = "changed"
	assert.Equal(t, ".rpdignore", BuiltinIgnorePatterns()[0])
}
