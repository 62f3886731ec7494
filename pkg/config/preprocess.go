package config

import (
	"regexp"
	"strings"
)

// commentPattern matches string/char literals (captured so they survive) or
// a comment to strip: // to end of line, or /* ... */ possibly multi-line.
var commentPattern = regexp.MustCompile(`("(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*')|//.*|/\*[\s\S]*?\*/`)

// removeComments strips // and /* */ comments while leaving string and
// char literals untouched.
func removeComments(s string) string {
	return commentPattern.ReplaceAllStringFunc(s, func(m string) string {
		if len(m) > 0 && (m[0] == '"' || m[0] == '\'') {
			return m
		}
		return ""
	})
}

// fixLineEndings normalizes CRLF to LF.
func fixLineEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// stripLine trims leading and trailing spaces and tabs.
func stripLine(s string) string {
	return strings.Trim(s, " \t")
}

// preprocess applies the standard pipeline shared by all three dialects:
// normalize line endings, strip comments, then trim each line.
func preprocess(text string) []string {
	text = removeComments(fixLineEndings(text))
	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		lines = append(lines, stripLine(l))
	}
	return lines
}

// splitToFirstWhitespace splits s at its first run of whitespace, returning
// (before, after) with after further trimmed.
func splitToFirstWhitespace(s string) (string, string) {
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimLeft(s[idx:], " \t")
}

// splitToAfter returns the substring of s after the first occurrence of sep,
// trimmed of leading whitespace. Used for "Key: value" lines.
func splitToAfter(s, sep string) string {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return ""
	}
	return strings.TrimLeft(s[idx+len(sep):], " \t")
}

// scanToBefore returns the substring of s before the first occurrence of sep.
func scanToBefore(s, sep string) string {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return s
	}
	return s[:idx]
}
