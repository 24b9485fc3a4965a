// File: pkg/dump/binary.go
package dump

import (
	"bytes"
	"path/filepath"
	"strings"
)

// sniffLen is how many leading bytes are inspected by looksBinary.
const sniffLen = 512

// looksBinary checks the leading bytes of content for null bytes or
// a high ratio of non-printable characters.
func looksBinary(content []byte) bool {
	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if len(head) == 0 {
		return false
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range head {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	// More than 30% non-printable is treated as binary.
	return float64(nonPrintable)/float64(len(head)) > 0.3
}

// isPrintable reports whether b is printable ASCII, common whitespace, or part of a multi-byte sequence.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}

// hasBinaryExtension checks the file against BinaryExtensions.
func hasBinaryExtension(path string) bool {
	return BinaryExtensions[strings.ToLower(filepath.Ext(path))]
}
