package admonition

import (
	"strings"
	"unicode/utf8"
)

const indent = "    "

// Normalize turns a captured block body into body lines.
//
// Blank lines are kept as empty strings. A line starting with four spaces
// loses them; any other line loses its first character, which is assumed to
// be a tab. Lines indented some other way are therefore cut by one character.
// Trailing empty lines are dropped.
func Normalize(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))

	for _, ln := range raw {
		switch {
		case ln == "":
			lines = append(lines, "")
		case strings.HasPrefix(ln, indent):
			lines = append(lines, ln[len(indent):])
		default:
			_, size := utf8.DecodeRuneInString(ln)
			lines = append(lines, ln[size:])
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
