// Package canonical converts raw, loosely-typed profile and university
// records into the normalized representations the match evaluator consumes.
// Every parser here is fail-soft: unparseable input degrades to a zero or a
// named default, never an error.
package canonical

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var integerRe = regexp.MustCompile(`\d+`)
var groupedDigitsRe = regexp.MustCompile(`(\d),(\d)`)

// parseOrZero parses a numeric string, returning 0 for anything unparseable.
func parseOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseMoney parses a currency display string ("$45,000", "€60k") into a
// plain number. All characters except digits and the decimal point are
// stripped before parsing; a "k" anywhere in the original string multiplies
// the result by 1000. Currency conversion is deliberately ignored.
func parseMoney(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}

	if containsK(s) {
		v *= 1000
	}
	return v
}

// parseRate parses a percentage display string ("12%", "4.5"). The second
// return reports whether the string held a parseable number at all.
func parseRate(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseBudget parses a budget constraint string. Ranges like "20k-40k" yield
// the upper bound (the effective ceiling). A "+" or the word "flexible" marks
// the budget as non-binding.
func parseBudget(s string) (maxAnnual float64, flexible bool) {
	// "30,000" must read as one integer, not a 30 and a 000
	plain := s
	for groupedDigitsRe.MatchString(plain) {
		plain = groupedDigitsRe.ReplaceAllString(plain, "$1$2")
	}

	for _, part := range integerRe.FindAllString(plain, -1) {
		if v, err := strconv.ParseFloat(part, 64); err == nil && v > maxAnnual {
			maxAnnual = v
		}
	}

	if containsK(s) {
		maxAnnual *= 1000
	}

	flexible = strings.Contains(s, "+") || strings.Contains(strings.ToLower(s), "flexible")
	return maxAnnual, flexible
}

// parseCountryList decodes a JSON-encoded string array, returning an empty
// list on malformed input.
func parseCountryList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var countries []string
	if err := json.Unmarshal([]byte(raw), &countries); err != nil {
		return nil
	}
	return countries
}

func containsK(s string) bool {
	return strings.ContainsAny(s, "kK")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
