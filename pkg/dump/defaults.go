// File: pkg/dump/defaults.go
package dump

// Default file names used when the caller does not override them.
const (
	DefaultOutputFile = "repod.md"
	DefaultIgnoreFile = ".rpdignore"
	DefaultEncoding   = "utf-8"
)

// DefaultPreamble is written at the top of the document when no preamble file is readable.
const DefaultPreamble = `# Repository Content Dump

This document contains a dump of a repository's contents. The structure is as follows:

1. Repository Structure (tree format)
2. File Contents (each file with its path and content)`

// builtinIgnorePatterns are always active. User patterns are appended after them.
var builtinIgnorePatterns = []string{
	".rpdignore",
	"repod.md",
	".git/*",
	".gitignore",
	".github/*",
	".tox/*",
	"*.pyc",
	"__pycache__/*",
	".mypy_cache/*",
	".ruff_cache/*",
	"*.whl",
	"*.tar",
	"*.tar.gz",
	"*.env*",
	"*.png",
	"*.jpeg",
	"*.jpg",
	"*bin/*",
	"*.lock",
	".venv/*",
	".DS_Store",
	"Thumbs.db",
	".idea/*",
	".vscode/*",
	"*.log",
	"node_modules/*",
}

// BuiltinIgnorePatterns returns a copy of the built-in ignore patterns.
func BuiltinIgnorePatterns() []string {
	patterns := make([]string, len(builtinIgnorePatterns))
	copy(patterns, builtinIgnorePatterns)
	return patterns
}

// extToLang maps a lower-cased file suffix to the fence tag used in the output.
var extToLang = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".java":  "java",
	".cpp":   "cpp",
	".c":     "c",
	".h":     "c",
	".hpp":   "cpp",
	".rs":    "rust",
	".go":    "go",
	".rb":    "ruby",
	".php":   "php",
	".cs":    "csharp",
	".swift": "swift",
	".kt":    "kotlin",
	".md":    "markdown",
	".yml":   "yaml",
	".yaml":  "yaml",
	".json":  "json",
	".xml":   "xml",
	".html":  "html",
	".css":   "css",
	".scss":  "scss",
	".sql":   "sql",
	".sh":    "bash",
	".bat":   "batch",
	".ps1":   "powershell",
}

// BinaryExtensions lists extensions treated as binary when binary skipping is enabled.
var BinaryExtensions = map[string]bool{
	".exe":   true,
	".dll":   true,
	".so":    true,
	".dylib": true,
	".a":     true,
	".o":     true,
	".obj":   true,
	".class": true,
	".jar":   true,
	".zip":   true,
	".gz":    true,
	".tgz":   true,
	".bz2":   true,
	".xz":    true,
	".7z":    true,
	".rar":   true,
	".pdf":   true,
	".gif":   true,
	".bmp":   true,
	".ico":   true,
	".webp":  true,
	".mp3":   true,
	".mp4":   true,
	".wav":   true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".db":    true,
}
