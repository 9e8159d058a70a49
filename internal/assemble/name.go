package assemble

import (
	"strings"
	"unicode"
)

// SplitFullName splits a combined name field on whitespace: the first token
// becomes the first name, the remainder joined by single spaces becomes the
// last name.
func SplitFullName(fullName string) (firstName, lastName string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// resolveName prefers separate first/last fields when the last name is
// non-empty, and otherwise falls back to splitting the first-name field.
func resolveName(first, last string) (string, string) {
	if strings.TrimSpace(last) != "" {
		return strings.TrimSpace(first), strings.TrimSpace(last)
	}
	return SplitFullName(first)
}

// TitleCase capitalizes the first letter of each word and lowercases the
// rest, matching what the CRM webhook expects for human-readable names.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
