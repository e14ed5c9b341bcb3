package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("registered names resolve", func(t *testing.T) {
		for _, name := range []string{"lowercase", "trim", "collapse_whitespace", "remove_punctuation", "ncountry", "nfield"} {
			_, ok := Get(name)
			require.True(t, ok, "normalizer %q not registered", name)
		}
	})

	t.Run("unknown name does not resolve", func(t *testing.T) {
		_, ok := Get("nope")
		assert.False(t, ok)
	})
}

func TestApply(t *testing.T) {
	t.Run("known normalizer", func(t *testing.T) {
		assert.Equal(t, "canada", Apply("CANADA", "lowercase"))
	})

	t.Run("unknown normalizer returns input unchanged", func(t *testing.T) {
		assert.Equal(t, "CANADA", Apply("CANADA", "nope"))
	})
}

func TestApplyChain(t *testing.T) {
	assert.Equal(t, "new zealand", ApplyChain("  New   Zealand  ", "trim", "lowercase", "collapse_whitespace"))
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed case", "United States", "united states"},
		{"surrounding whitespace", "  Canada ", "canada"},
		{"collapses inner whitespace", "United   Kingdom", "united kingdom"},
		{"strips trailing comma", "Germany,", "germany"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCountry(tt.input))
		})
	}
}

func TestNormalizeFieldOfStudy(t *testing.T) {
	assert.Equal(t, "computer science", NormalizeFieldOfStudy("Computer Science."))
	assert.Equal(t, "economics", NormalizeFieldOfStudy("  Economics  "))
	assert.Equal(t, "", NormalizeFieldOfStudy("  .  "))
}
