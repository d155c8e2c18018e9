package text

import (
	"strings"
	"unicode"
)

// CleanName trims a participant name and collapses inner whitespace runs.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ContainsName reports whether names holds name, ignoring case and spacing.
func ContainsName(names []string, name string) bool {
	want := strings.ToLower(CleanName(name))
	for _, v := range names {
		if strings.ToLower(CleanName(v)) == want {
			return true
		}
	}
	return false
}

// SanitizeDigits keeps only the decimal digits of s.
func SanitizeDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
