package dump

import "fmt"

// SkipReason explains why a file produced no entry.
type SkipReason int

const (
	SkipNone       SkipReason = iota // Not skipped.
	SkipIgnored                      // Relative path matched an ignore pattern.
	SkipUnreadable                   // The file could not be opened or read.
	SkipBinary                       // The file looked binary and binary skipping is enabled.
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipIgnored:
		return "ignored"
	case SkipUnreadable:
		return "unreadable"
	case SkipBinary:
		return "binary"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// FileEntry is one serialized file of the "File Contents" section.
type FileEntry struct {
	RelativePath string // Slash-separated path relative to the repository root.
	Language     string // Fence tag, empty when the extension is unknown.
	Content      string // Decoded file content.
}

// Heading returns the markdown heading line for the entry.
func (e FileEntry) Heading() string {
	return fmt.Sprintf("### %s\n\n", e.RelativePath)
}

// Block returns the fenced code block holding the content.
func (e FileEntry) Block() string {
	return fmt.Sprintf("```%s\n%s\n```\n\n", e.Language, e.Content)
}

// FileResult is either an Entry or a skip with its reason.
type FileResult struct {
	Entry  FileEntry
	Reason SkipReason
	Err    error // Set for SkipUnreadable.
}

// Skipped reports whether the result carries no entry.
func (r FileResult) Skipped() bool {
	return r.Reason != SkipNone
}

// Summary describes a finished dump.
type Summary struct {
	OutputPath   string // Path the document was written to.
	FilesWritten int    // Number of file entries emitted.
	FilesSkipped int    // Number of enumerated files that produced no entry.
	BytesWritten int64  // Size of the document.
}
