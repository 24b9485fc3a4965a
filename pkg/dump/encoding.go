// File: pkg/dump/encoding.go
package dump

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown text encoding")

type decodeMode int

const (
	decodeUTF8 decodeMode = iota
	decodeASCII
	decodeCharset
)

// asciiLabels are the names that select 7-bit ASCII. Both the IANA and the web
// tables either lack ASCII or alias it to windows-1252, so it is handled here.
var asciiLabels = map[string]bool{
	"ascii":          true,
	"us-ascii":       true,
	"646":            true,
	"ansi-x3.4-1968": true,
	"iso646-us":      true,
	"iso-ir-6":       true,
	"cp367":          true,
	"ibm367":         true,
	"csascii":        true,
}

// labelAliases maps common spellings that no registry lists to IANA names.
var labelAliases = map[string]string{
	"latin-1":   "iso-8859-1",
	"iso8859-1": "iso-8859-1",
	"utf8":      "utf-8",
	"u8":        "utf-8",
}

// Decoder turns raw file bytes into UTF-8 text without ever failing on malformed input.
type Decoder struct {
	name string
	mode decodeMode
	enc  encoding.Encoding
}

// LookupDecoder resolves an encoding label such as "utf-8", "latin1" or "shift_jis".
// Labels are looked up in the IANA registry first, so "latin1" is ISO-8859-1;
// the WHATWG table is only consulted for names IANA does not know.
func LookupDecoder(name string) (*Decoder, error) {
	label := normalizeLabel(name)
	if label == "" {
		label = DefaultEncoding
	}
	if asciiLabels[label] {
		return &Decoder{name: "us-ascii", mode: decodeASCII}, nil
	}
	if alias, ok := labelAliases[label]; ok {
		label = alias
	}

	enc, canonical, err := lookupCharset(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical == "utf-8" {
		return &Decoder{name: canonical, mode: decodeUTF8}, nil
	}
	return &Decoder{name: canonical, mode: decodeCharset, enc: enc}, nil
}

func normalizeLabel(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// lookupCharset finds label in the IANA index, then in the WHATWG index.
func lookupCharset(label string) (encoding.Encoding, string, error) {
	// Underscores were folded to dashes; "shift_jis" and friends need them back.
	for _, candidate := range []string{label, strings.ReplaceAll(label, "-", "_")} {
		if enc, err := ianaindex.IANA.Encoding(candidate); err == nil && enc != nil {
			canonical, nameErr := ianaindex.IANA.Name(enc)
			if nameErr != nil {
				canonical = candidate
			}
			return enc, strings.ToLower(canonical), nil
		}
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", err
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = label
	}
	return enc, canonical, nil
}

// Name returns the canonical name of the encoding.
func (d *Decoder) Name() string {
	return d.name
}

// Decode converts data to UTF-8. For UTF-8 and ASCII input, invalid bytes are
// dropped; other encodings substitute U+FFFD for bytes they cannot map.
func (d *Decoder) Decode(data []byte) string {
	if d == nil || d.mode == decodeUTF8 {
		return strings.ToValidUTF8(string(data), "")
	}
	if d.mode == decodeASCII {
		return dropNonASCII(data)
	}
	decoded, _, err := transform.Bytes(d.enc.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(decoded), "")
	}
	return string(decoded)
}

func dropNonASCII(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if c < 0x80 {
			b.WriteByte(c)
		}
	}
	return b.String()
}
