// Package dump serializes a repository's structure and file contents into a
// single markdown document.
//
// The document is produced in one pass: preamble, optional tree, then one
// fenced block per file that is not matched by an ignore pattern. Ignore
// patterns are flat shell globs matched against the whole slash-separated
// path relative to the repository root.
package dump

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Section headings of the output document.
const (
	structureHeading = "## Repository Structure\n\n"
	contentsHeading  = "## File Contents\n\n"
)

// Dump writes the document described by cfg. Failures to list the repository,
// open the output, or write to it are returned; per-file failures are logged
// and the file is skipped. The output file is closed on every path.
func Dump(ctx context.Context, cfg Config, logger *zap.Logger) (summary Summary, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting dump",
		zap.String("repository", cfg.RepoPath),
		zap.String("output", cfg.OutputPath))

	decoder, err := LookupDecoder(cfg.Encoding)
	if err != nil {
		return summary, err
	}

	matcher := NewMatcher(LoadIgnorePatterns(cfg.IgnoreFile, decoder, logger), logger)
	logger.Debug("Compiled ignore patterns", zap.Strings("patterns", matcher.Patterns()))

	walkRoot := resolveRoot(cfg.RepoPath)
	files, err := CollectFiles(walkRoot, logger)
	if err != nil {
		return summary, err
	}

	doc, err := createDocument(cfg.OutputPath, logger)
	if err != nil {
		return summary, err
	}
	defer func() {
		err = multierr.Append(err, doc.Close())
		summary.BytesWritten = doc.Written()
	}()
	outputInfo, statErr := doc.Stat()
	if statErr != nil {
		logger.Debug("Cannot stat output file", zap.String("file", cfg.OutputPath), zap.Error(statErr))
	}

	doc.WriteString(readPreamble(cfg, decoder, logger) + "\n\n")
	if cfg.IncludeTree {
		doc.WriteString(structureHeading)
		doc.WriteString("```\n" + RenderTree(cfg.RepoPath, matcher, logger) + "\n```\n\n")
	}
	doc.WriteString(contentsHeading)
	if err := doc.Err(); err != nil {
		return summary, err
	}

	summary.OutputPath = cfg.OutputPath
	for _, filePath := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("Dump cancelled", zap.Int("filesWritten", summary.FilesWritten))
			return summary, err
		}

		relPath := relativeSlashPath(walkRoot, filePath)
		if isSameFile(outputInfo, filePath) {
			logger.Debug("Skipping output file", zap.String("path", relPath))
			summary.FilesSkipped++
			continue
		}

		result := SerializeFile(filePath, relPath, decoder, matcher, cfg.SkipBinary, logger)
		if result.Skipped() {
			logSkip(logger, relPath, result)
			summary.FilesSkipped++
			continue
		}

		doc.WriteString(result.Entry.Heading())
		doc.WriteString(result.Entry.Block())
		if err := doc.Err(); err != nil {
			return summary, err
		}
		summary.FilesWritten++
	}

	logger.Info("Repository contents written",
		zap.String("output", cfg.OutputPath),
		zap.Int("filesWritten", summary.FilesWritten),
		zap.Int("filesSkipped", summary.FilesSkipped),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}

// readPreamble returns the trimmed preamble file, or the default preamble when
// none is configured or it cannot be read.
func readPreamble(cfg Config, decoder *Decoder, logger *zap.Logger) string {
	if cfg.PreambleFile == "" {
		return cfg.DefaultPreamble
	}
	content, err := os.ReadFile(cfg.PreambleFile)
	if err != nil {
		logger.Error("Error reading preamble file", zap.String("file", cfg.PreambleFile), zap.Error(err))
		return cfg.DefaultPreamble
	}
	return strings.TrimSpace(decoder.Decode(content))
}

func logSkip(logger *zap.Logger, relPath string, result FileResult) {
	switch result.Reason {
	case SkipIgnored:
		logger.Debug("File matches ignore pattern", zap.String("path", relPath))
	case SkipBinary:
		logger.Warn("Skipping binary file", zap.String("path", relPath))
	default:
		logger.Warn("Error processing file", zap.String("path", relPath), zap.Error(result.Err))
	}
}

// isSameFile reports whether path refers to the output file being written.
func isSameFile(outputInfo os.FileInfo, path string) bool {
	if outputInfo == nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && os.SameFile(outputInfo, info)
}
