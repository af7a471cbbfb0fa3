package util

import "unicode/utf8"

// Truncate cuts s to at most n characters, appending marker only when it cut.
func Truncate(s string, n int, marker string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + marker
}
