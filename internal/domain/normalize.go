package domain

import (
	"strings"
)

// NormalizeText prepares text for case-insensitive matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses every run of whitespace (spaces, tabs, newlines) into one space
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// NormalizeDepartmentRef maps the spellings callers use for "no department"
// ("", "none", "null", "all", "general") to "". Anything else is returned trimmed.
func NormalizeDepartmentRef(ref string) string {
	ref = strings.TrimSpace(ref)
	switch strings.ToLower(ref) {
	case "", "none", "null", "all", "general":
		return ""
	}
	return ref
}
