// File: pkg/dump/patterns.go
package dump

import (
	"regexp"
	"strings"
)

// translateGlob converts a flat shell glob into an anchored regular expression.
// The whole path is treated as a single string: '*' and '?' also match '/'.
func translateGlob(pattern string) string {
	var re strings.Builder
	re.WriteString(`(?s)\A`)

	runes := []rune(pattern)
	n := len(runes)
	for i := 0; i < n; {
		c := runes[i]
		i++
		switch c {
		case '*':
			// Consecutive stars are equivalent to one.
			for i < n && runes[i] == '*' {
				i++
			}
			re.WriteString(`.*`)
		case '?':
			re.WriteString(`.`)
		case '[':
			class, next, ok := translateClass(runes, i)
			if !ok {
				re.WriteString(`\[`)
				continue
			}
			re.WriteString(class)
			i = next
		default:
			re.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	re.WriteString(`\z`)
	return re.String()
}

// translateClass translates a bracket expression whose body starts at runes[start].
// It reports false when the bracket is never closed, in which case '[' is literal.
func translateClass(runes []rune, start int) (string, int, bool) {
	n := len(runes)
	j := start
	if j < n && runes[j] == '!' {
		j++
	}
	// A ']' directly after '[' or '[!' is a member, not the terminator.
	if j < n && runes[j] == ']' {
		j++
	}
	for j < n && runes[j] != ']' {
		j++
	}
	if j >= n {
		return "", start, false
	}

	body := runes[start:j]
	var class strings.Builder
	class.WriteByte('[')
	if len(body) > 0 && body[0] == '!' {
		class.WriteByte('^')
		body = body[1:]
	}
	for _, r := range body {
		class.WriteString(escapeClassRune(r))
	}
	class.WriteByte(']')
	return class.String(), j + 1, true
}

// escapeClassRune escapes ASCII punctuation inside a character class, keeping '-' for ranges.
func escapeClassRune(r rune) string {
	if r == '-' {
		return "-"
	}
	if r < 0x80 && isASCIIPunct(byte(r)) {
		return `\` + string(r)
	}
	return string(r)
}

func isASCIIPunct(b byte) bool {
	return (b >= '!' && b <= '/') || (b >= ':' && b <= '@') || (b >= '[' && b <= '`') || (b >= '{' && b <= '~')
}
