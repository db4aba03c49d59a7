package stringutils

import "strings"

// Indent prefixes every line of s with prefix.
func Indent(s string, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// TrimTrailingSlash removes every trailing slash of s.
func TrimTrailingSlash(s string) string {
	return strings.TrimRight(s, "/")
}
