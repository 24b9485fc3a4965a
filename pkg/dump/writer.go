// File: pkg/dump/writer.go
package dump

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// documentWriter is the single sink of a dump. Writes go through a buffer and
// the first write error sticks; later writes become no-ops.
type documentWriter struct {
	path    string
	file    *os.File
	writer  *bufio.Writer
	written int64
	err     error
	logger  *zap.Logger
}

// createDocument opens path for writing, truncating any existing content.
func createDocument(path string, logger *zap.Logger) (*documentWriter, error) {
	outFile, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &documentWriter{
		path:   path,
		file:   outFile,
		writer: bufio.NewWriter(outFile),
		logger: logger,
	}, nil
}

// WriteString appends s to the document.
func (w *documentWriter) WriteString(s string) {
	if w.err != nil {
		return
	}
	n, err := w.writer.WriteString(s)
	w.written += int64(n)
	if err != nil {
		w.logger.Error("Failed to write to output file", zap.String("file", w.path), zap.Error(err))
		w.err = fmt.Errorf("failed to write output: %w", err)
	}
}

// Err returns the first write error, if any.
func (w *documentWriter) Err() error {
	return w.err
}

// Written returns the number of bytes accepted so far.
func (w *documentWriter) Written() int64 {
	return w.written
}

// Stat describes the underlying output file.
func (w *documentWriter) Stat() (os.FileInfo, error) {
	return w.file.Stat()
}

// Close flushes buffered data and releases the file handle. It is safe to call
// on every exit path; flush and close errors are merged.
func (w *documentWriter) Close() error {
	var err error
	if w.err == nil {
		if flushErr := w.writer.Flush(); flushErr != nil {
			w.logger.Error("Failed to flush output file", zap.String("file", w.path), zap.Error(flushErr))
			err = multierr.Append(err, fmt.Errorf("failed to flush output: %w", flushErr))
		}
	}
	if closeErr := w.file.Close(); closeErr != nil {
		w.logger.Error("Failed to close output file", zap.String("file", w.path), zap.Error(closeErr))
		err = multierr.Append(err, fmt.Errorf("failed to close output: %w", closeErr))
	}
	return err
}
