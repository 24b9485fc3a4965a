// File: pkg/dump/matcher.go
package dump

import (
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

// IgnoreParser defines the interface for matching paths against ignore patterns.
type IgnoreParser interface {
	MatchesPath(path string) bool
}

var _ IgnoreParser = (*Matcher)(nil)

// IgnorePattern is a single compiled glob.
type IgnorePattern struct {
	Pattern *regexp.Regexp // Compiled form; nil when the glob could not be compiled.
	Line    string         // Glob as written.
}

func (p *IgnorePattern) matches(path string) bool {
	if p.Pattern == nil {
		return path == p.Line
	}
	return p.Pattern.MatchString(path)
}

// Matcher holds an ordered set of flat glob patterns. A path is ignored when
// any pattern matches; there is no precedence and no negation.
type Matcher struct {
	patterns []*IgnorePattern
	logger   *zap.Logger
}

// NewMatcher compiles the given globs. Globs that do not translate to a valid
// expression fall back to exact string comparison.
func NewMatcher(patterns []string, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{
		patterns: make([]*IgnorePattern, 0, len(patterns)),
		logger:   logger,
	}
	for _, line := range patterns {
		m.patterns = append(m.patterns, compilePattern(line, logger))
	}
	return m
}

func compilePattern(line string, logger *zap.Logger) *IgnorePattern {
	compiled, err := regexp.Compile(translateGlob(line))
	if err != nil {
		logger.Warn("Invalid ignore pattern, matching it literally",
			zap.String("pattern", line),
			zap.Error(err))
		return &IgnorePattern{Line: line}
	}
	return &IgnorePattern{Pattern: compiled, Line: line}
}

// Patterns returns the globs in load order.
func (m *Matcher) Patterns() []string {
	lines := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		lines[i] = p.Line
	}
	return lines
}

// MatchesPath reports whether the relative path matches any pattern.
// Host separators are converted to '/' before matching.
func (m *Matcher) MatchesPath(path string) bool {
	matched, _ := m.MatchesPathWithPattern(path)
	return matched
}

// MatchesPathWithPattern is MatchesPath that also returns the first pattern that matched.
func (m *Matcher) MatchesPathWithPattern(path string) (bool, *IgnorePattern) {
	normalizedPath := normalizePath(path)
	for _, pattern := range m.patterns {
		if pattern.matches(normalizedPath) {
			return true, pattern
		}
	}
	return false, nil
}

// Matches reports whether relativePath matches at least one of patterns.
func Matches(relativePath string, patterns []string) bool {
	return NewMatcher(patterns, nil).MatchesPath(relativePath)
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}
