// File: pkg/dump/ignore.go
package dump

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadIgnorePatterns returns the built-in patterns followed by the patterns read
// from ignoreFile. A missing or unreadable ignore file is logged and leaves
// only the built-ins; it never fails the run.
func LoadIgnorePatterns(ignoreFile string, decoder *Decoder, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}
	patterns := BuiltinIgnorePatterns()
	if ignoreFile == "" {
		logger.Debug("No ignore file configured, using built-in patterns only")
		return patterns
	}

	userPatterns, err := readIgnoreFile(ignoreFile, decoder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Ignore file not found", zap.String("file", ignoreFile))
		} else {
			logger.Error("Error reading ignore file", zap.String("file", ignoreFile), zap.Error(err))
		}
		return patterns
	}

	logger.Debug("Loaded ignore file",
		zap.String("file", ignoreFile),
		zap.Int("userPatterns", len(userPatterns)),
		zap.Int("totalPatterns", len(patterns)+len(userPatterns)))
	return append(patterns, userPatterns...)
}

// readIgnoreFile reads one glob per line, skipping blank lines and '#' comments.
func readIgnoreFile(path string, decoder *Decoder) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseIgnoreLines(decoder.Decode(content)), nil
}

// ParseIgnoreLines extracts patterns from the text of an ignore file.
func ParseIgnoreLines(text string) []string {
	var patterns []string
	for _, line := range strings.Split(text, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		patterns = append(patterns, trimmedLine)
	}
	return patterns
}
