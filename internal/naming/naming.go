package naming

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Compiled once at package init and never mutated afterwards.
var (
	unsafeChars     = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	underscoreRuns  = regexp.MustCompile(`_+`)
	fallbackNameLen = 10
)

// SafeName normalizes an arbitrary service name into a token safe for use
// as a path segment: every character outside [a-zA-Z0-9_-] becomes '_',
// consecutive underscores collapse to one, leading/trailing underscores are
// trimmed, and the result is lowercased.
//
// Example: "My Service! 2.0" -> "my_service_2_0"
//
// SafeName is total: empty input, or input with no safe characters at all,
// yields "". Callers must treat an empty result as "no safe name" and fall
// back to FallbackName.
func SafeName(name string) string {
	s := unsafeChars.ReplaceAllString(name, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}

// FallbackName generates a short unique identifier for a source with no
// usable name: the first 10 characters of a random UUID.
func FallbackName() string {
	return uuid.NewString()[:fallbackNameLen]
}

// DisplayName converts a normalized token back into a human-readable title.
// Separators become spaces and each word is title-cased.
// Example: "user_service" -> "User Service"
func DisplayName(name string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Use golang.org/x/text/cases for proper Unicode title casing
	return cases.Title(language.English).String(s)
}
