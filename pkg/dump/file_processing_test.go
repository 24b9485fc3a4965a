package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLanguageFor(t *testing.T) {
	tests := map[string]string{
		"main.go":        "go",
		"script.PY":      "python",
		"src/lib.rs":     "rust",
		"include/a.h":    "c",
		"include/a.hpp":  "cpp",
		"deploy.yml":     "yaml",
		"run.ps1":        "powershell",
		"build.sh":       "bash",
		"notes.txt":      "",
		"Makefile":       "",
		".bashrc":        "",
		"trailing.":      "",
		"archive.tar.gz": "",
		"docs/README.md": "markdown",
	}
	for path, want := range tests {
		assert.Equal(t, want, LanguageFor(path), path)
	}
}

func TestFileSuffix(t *testing.T) {
	assert.Equal(t, ".gz", fileSuffix("a.tar.gz"))
	assert.Equal(t, "", fileSuffix(".env"))
	assert.Equal(t, ".local", fileSuffix(".env.local"))
	assert.Equal(t, "", fileSuffix("name."))
	assert.Equal(t, "", fileSuffix("plain"))
}

func TestSerializeFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"pkg/main.go": "package main\n"})

	result := SerializeFile(filepath.Join(root, "pkg", "main.go"), "pkg/main.go", utf8Decoder(t), nil, false, zap.NewNop())

	require.False(t, result.Skipped())
	assert.Equal(t, FileEntry{RelativePath: "pkg/main.go", Language: "go", Content: "package main\n"}, result.Entry)
	assert.Equal(t, "### pkg/main.go\n\n", result.Entry.Heading())
	assert.Equal(t, "```go\npackage main\n\n```\n\n", result.Entry.Block())
}

func TestSerializeFileUntaggedBlock(t *testing.T) {
	entry := FileEntry{RelativePath: "LICENSE", Content: "MIT"}
	assert.Equal(t, "```\nMIT\n```\n\n", entry.Block())
}

func TestSerializeFileIgnored(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"README.md": "hi"})
	matcher := NewMatcher([]string{"*.md"}, nil)

	result := SerializeFile(filepath.Join(root, "README.md"), "README.md", utf8Decoder(t), matcher, false, zap.NewNop())

	assert.True(t, result.Skipped())
	assert.Equal(t, SkipIgnored, result.Reason)
	assert.NoError(t, result.Err)
}

func TestSerializeFileUnreadable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "vanished.txt")

	result := SerializeFile(missing, "vanished.txt", utf8Decoder(t), nil, false, zap.NewNop())

	assert.Equal(t, SkipUnreadable, result.Reason)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, os.ErrNotExist)
}

func TestSerializeFileInvalidBytes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"data.txt": "ok\xff\xfeend"})

	result := SerializeFile(filepath.Join(root, "data.txt"), "data.txt", utf8Decoder(t), nil, false, zap.NewNop())

	require.False(t, result.Skipped())
	assert.Equal(t, "okend", result.Entry.Content)
}

func TestSerializeFileBinary(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"blob.dat":  "ELF\x00\x01\x02",
		"tool.exe":  "MZ",
		"plain.txt": "just text",
	})
	decoder := utf8Decoder(t)

	skipped := SerializeFile(filepath.Join(root, "blob.dat"), "blob.dat", decoder, nil, true, zap.NewNop())
	assert.Equal(t, SkipBinary, skipped.Reason)

	skipped = SerializeFile(filepath.Join(root, "tool.exe"), "tool.exe", decoder, nil, true, zap.NewNop())
	assert.Equal(t, SkipBinary, skipped.Reason)

	kept := SerializeFile(filepath.Join(root, "plain.txt"), "plain.txt", decoder, nil, true, zap.NewNop())
	assert.False(t, kept.Skipped())

	emitted := SerializeFile(filepath.Join(root, "blob.dat"), "blob.dat", decoder, nil, false, zap.NewNop())
	require.False(t, emitted.Skipped())
	assert.Equal(t, "ELF\x00\x01\x02", emitted.Entry.Content)
}

func TestSkipReasonString(t *testing.T) {
	assert.Equal(t, "none", SkipNone.String())
	assert.Equal(t, "ignored", SkipIgnored.String())
	assert.Equal(t, "unreadable", SkipUnreadable.String())
	assert.Equal(t, "binary", SkipBinary.String())
	assert.Equal(t, "SkipReason(42)", SkipReason(42).String())
}
