// File: pkg/dump/traversal.go
package dump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrRepoNotDirectory is returned when the repository path is not a directory.
var ErrRepoNotDirectory = errors.New("repository path is not a directory")

// CollectFiles walks parentDir and returns every regular file beneath it in
// lexical order. Ignore rules are not applied here; the serializer filters each
// file by its relative path. Symlinks to regular files are included, symlinked
// directories are not followed.
//
// An inaccessible root is an error. Unreadable nested directories are logged
// and skipped.
func CollectFiles(parentDir string, logger *zap.Logger) ([]string, error) {
	info, err := os.Stat(parentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to access repository %s: %w", parentDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRepoNotDirectory, parentDir)
	}

	var files []string
	logger.Debug("Starting file traversal", zap.String("parentDir", parentDir))

	err = filepath.WalkDir(parentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == parentDir {
				return err
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if isRegularFile(path, d) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.String("parentDir", parentDir), zap.Error(err))
		return nil, fmt.Errorf("failed to list repository %s: %w", parentDir, err)
	}

	logger.Debug("Completed file traversal", zap.Int("files", len(files)))
	return files, nil
}

// isRegularFile reports whether the entry is a regular file, following symlinks.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	return err == nil && target.Mode().IsRegular()
}

// resolveRoot follows a symlinked repository root so that the walk descends into it.
func resolveRoot(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

// relativeSlashPath returns path relative to root with forward slashes.
func relativeSlashPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return normalizePath(rel)
}
