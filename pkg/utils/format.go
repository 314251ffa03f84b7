package utils

import (
	"regexp"
	"strings"
)

var camelBoundaryPattern = regexp.MustCompile(`([A-Z])`)

// FormatKey turns a camelCase form key into a display label,
// e.g. "numberOfDays" -> "Number Of Days".
func FormatKey(key string) string {
	spaced := camelBoundaryPattern.ReplaceAllString(key, " ${1}")
	spaced = strings.TrimSpace(spaced)
	if spaced == "" {
		return ""
	}
	return strings.ToUpper(spaced[:1]) + spaced[1:]
}

// GetFirstWord returns the first whitespace-delimited word of the input.
func GetFirstWord(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
