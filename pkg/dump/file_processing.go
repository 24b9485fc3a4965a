package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// SerializeFile turns one file into a FileEntry. The result is skipped when
// ignore matches relativePath, when the file cannot be read, or, with skipBinary,
// when the content looks binary. The whole file is read at once; undecodable
// bytes never cause a skip.
func SerializeFile(filePath, relativePath string, decoder *Decoder, ignore IgnoreParser, skipBinary bool, logger *zap.Logger) FileResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ignore != nil && ignore.MatchesPath(relativePath) {
		return FileResult{Reason: SkipIgnored}
	}
	if skipBinary && hasBinaryExtension(filePath) {
		return FileResult{Reason: SkipBinary}
	}

	logger.Debug("Reading file content", zap.String("filePath", filePath))
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return FileResult{
			Reason: SkipUnreadable,
			Err:    fmt.Errorf("error reading file %s: %w", relativePath, err),
		}
	}
	if skipBinary && looksBinary(fileBytes) {
		return FileResult{Reason: SkipBinary}
	}

	return FileResult{
		Entry: FileEntry{
			RelativePath: relativePath,
			Language:     LanguageFor(filePath),
			Content:      decoder.Decode(fileBytes),
		},
	}
}

// LanguageFor returns the fence tag for a file, or "" when its suffix is unmapped.
func LanguageFor(filePath string) string {
	return extToLang[strings.ToLower(fileSuffix(filepath.Base(filePath)))]
}

// fileSuffix returns the final extension of name. A leading dot (".bashrc") or
// a trailing dot ("notes.") does not start an extension.
func fileSuffix(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}
