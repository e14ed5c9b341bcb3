// Package normalizers provides named string normalizers used to canonicalize
// profile and university text before matching.
package normalizers

import (
	"regexp"
	"strings"
	"unicode"
)

// Normalizer is a function that normalizes a string value
type Normalizer func(string) string

// registry holds all registered normalizers
var registry = make(map[string]Normalizer)

func init() {
	Register("lowercase", Lowercase)
	Register("trim", Trim)
	Register("collapse_whitespace", CollapseWhitespace)
	Register("remove_punctuation", RemovePunctuation)
	Register("ncountry", NormalizeCountry)
	Register("nfield", NormalizeFieldOfStudy)
}

// Register adds a normalizer to the registry
func Register(name string, fn Normalizer) {
	registry[name] = fn
}

// Get retrieves a normalizer by name
func Get(name string) (Normalizer, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Apply applies a named normalizer to a value. Unknown names return the value
// unchanged.
func Apply(value, normalizer string) string {
	fn, ok := registry[normalizer]
	if !ok {
		return value
	}
	return fn(value)
}

// ApplyChain applies multiple normalizers in sequence
func ApplyChain(value string, normalizers ...string) string {
	result := value
	for _, name := range normalizers {
		result = Apply(result, name)
	}
	return result
}

// Built-in normalizers

var whitespaceRe = regexp.MustCompile(`\s+`)

// Lowercase converts string to lowercase
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// Trim removes leading and trailing whitespace
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces whitespace runs with a single space
func CollapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(s, " ")
}

// RemovePunctuation removes all punctuation characters
func RemovePunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsPunct(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCountry lowercases and collapses a country name for containment
// matching. Trailing punctuation from "Country, City" splits is stripped.
func NormalizeCountry(s string) string {
	s = ApplyChain(s, "trim", "lowercase")
	s = strings.Trim(s, ".,")
	return ApplyChain(s, "collapse_whitespace", "trim")
}

// NormalizeFieldOfStudy lowercases, trims and strips punctuation from a field
// of study label
func NormalizeFieldOfStudy(s string) string {
	return ApplyChain(s, "trim", "lowercase", "remove_punctuation", "collapse_whitespace")
}
