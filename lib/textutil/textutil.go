package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName produces a lowercased, whitespace-free key used when
// matching user-supplied names against catalog names.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// CleanModelName trims a model display name. Some catalog entries prefix
// sub-models with a hyphen ("- Accord Crosstour"), the hyphen and any
// whitespace after it are dropped.
func CleanModelName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "-") {
		name = strings.TrimSpace(name[1:])
	}
	return name
}

// CollapseSpaces trims the string and squashes any inner run of
// whitespace into a single space.
func CollapseSpaces(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}
