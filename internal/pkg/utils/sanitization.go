package utils

import (
	"livwise-service/internal/pkg/constvars"
	"regexp"
	"strings"
)

var (
	unsafeObjectKeyChars = regexp.MustCompile(constvars.RegexUnsafeObjectKey)
	repeatedUnderscores  = regexp.MustCompile(`_{2,}`)
	timestampSeparators  = regexp.MustCompile(`[:.]`)
)

// SanitizeObjectName makes a string safe for use as an object-store key
// segment: anything outside [A-Za-z0-9._-] becomes an underscore, runs of
// underscores collapse, and the result is lower-cased.
func SanitizeObjectName(name string) string {
	safe := unsafeObjectKeyChars.ReplaceAllString(name, "_")
	safe = repeatedUnderscores.ReplaceAllString(safe, "_")
	return strings.ToLower(safe)
}

// SanitizeTimestamp strips colons and dots from an ISO-8601 timestamp so it
// can be embedded in an object key.
func SanitizeTimestamp(timestamp string) string {
	return timestampSeparators.ReplaceAllString(timestamp, "-")
}
