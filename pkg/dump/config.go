// File: pkg/dump/config.go
package dump

import (
	"fmt"
	"path/filepath"
)

// Config holds the run parameters of a single dump. Build it with NewConfig
// and treat it as read-only afterwards.
type Config struct {
	RepoPath        string // Root of the repository to dump.
	OutputPath      string // Destination markdown file, truncated on open.
	IgnoreFile      string // Optional ignore file; empty means built-in patterns only.
	PreambleFile    string // Optional preamble file; empty means DefaultPreamble.
	IncludeTree     bool   // Write the "Repository Structure" section.
	Encoding        string // Encoding label used to decode repository files.
	DefaultPreamble string // Preamble used when PreambleFile is empty or unreadable.
	SkipBinary      bool   // Skip files that look binary instead of emitting them.
}

// Option customizes a Config under construction.
type Option func(*Config)

// WithOutput sets the output file path.
func WithOutput(path string) Option {
	return func(c *Config) { c.OutputPath = path }
}

// WithIgnoreFile sets the user ignore file.
func WithIgnoreFile(path string) Option {
	return func(c *Config) { c.IgnoreFile = path }
}

// WithPreambleFile sets the preamble file.
func WithPreambleFile(path string) Option {
	return func(c *Config) { c.PreambleFile = path }
}

// WithTree toggles the repository structure section.
func WithTree(include bool) Option {
	return func(c *Config) { c.IncludeTree = include }
}

// WithEncoding sets the encoding used to decode repository files.
func WithEncoding(name string) Option {
	return func(c *Config) { c.Encoding = name }
}

// WithDefaultPreamble replaces the fallback preamble text.
func WithDefaultPreamble(text string) Option {
	return func(c *Config) { c.DefaultPreamble = text }
}

// WithSkipBinary toggles skipping of binary-looking files.
func WithSkipBinary(skip bool) Option {
	return func(c *Config) { c.SkipBinary = skip }
}

// NewConfig returns a Config for repoPath with defaults applied, then opts.
// The encoding is validated here so that a bad label fails before any I/O.
func NewConfig(repoPath string, opts ...Option) (Config, error) {
	if repoPath == "" {
		repoPath = "."
	}
	cfg := Config{
		RepoPath:        repoPath,
		OutputPath:      DefaultOutputFile,
		IncludeTree:     true,
		Encoding:        DefaultEncoding,
		DefaultPreamble: DefaultPreamble,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	absRepo, err := filepath.Abs(cfg.RepoPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve repository path: %w", err)
	}
	cfg.RepoPath = absRepo

	if _, err := LookupDecoder(cfg.Encoding); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
