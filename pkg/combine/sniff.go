// File: pkg/combine/sniff.go
package combine

import (
	"strings"
	"unicode/utf8"
)

const (
	sniffLines      = 10  // Leading lines inspected for minified content.
	maxSniffLineLen = 500 // Characters; any longer line marks the file as generated.
)

// looksMinified reports whether any of the first lines of content is too
// long to be hand-written source.
func looksMinified(content string) bool {
	for i := 0; i < sniffLines; i++ {
		line, rest, found := strings.Cut(content, "\n")
		if utf8.RuneCountInString(line) > maxSniffLineLen {
			return true
		}
		if !found {
			break
		}
		content = rest
	}
	return false
}

// newlineNormalizer folds Windows and classic Mac line endings into '\n'.
var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeNewlines converts every line ending in s to '\n'.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return newlineNormalizer.Replace(s)
}
