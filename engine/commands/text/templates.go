// Package text formats help text for idlmeta commands.
package text

import (
	"strings"
)

// Indentation is the indentation applied to each example line.
const Indentation = `  `

// LongDesc trims the surrounding whitespace of a long description written as an indented raw
// string literal.
func LongDesc(s string) string {
	return strings.TrimSpace(s)
}

// Examples trims an examples block and re-indents every line with Indentation.
func Examples(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Indentation + strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}
